package components

import "github.com/detroitcommercial/microsite/internal/behavior"

// stylesheet is the whole visual theme. Hover states are driven by the
// data-hovered attribute the client sets, with :hover as a no-script fallback.
const stylesheet = `
* { box-sizing: border-box; }
html { scroll-behavior: smooth; }
body { margin: 0; }
.page {
    width: 100%;
    overflow-x: hidden;
    min-height: 100vh;
    display: flex;
    flex-direction: column;
    background: linear-gradient(135deg, #1f2937, #111827);
    color: #fff;
    font-family: Arial, sans-serif;
}
.ambient-audio { display: none; }

.nav {
    position: fixed;
    top: 0;
    left: 0;
    width: 100%;
    background-color: rgba(0, 0, 0, 0.7);
    backdrop-filter: blur(10px);
    padding: 1rem 0;
    z-index: 1000;
    animation: nav-drop 0.8s ease-out both;
}
.nav-inner {
    max-width: 1200px;
    margin: 0 auto;
    padding: 0 2rem;
    display: flex;
    justify-content: space-between;
    align-items: center;
}
.nav-title { font-size: 1.75rem; font-weight: 700; letter-spacing: 1px; margin: 0; }
.nav-list { list-style: none; display: flex; gap: 1.5rem; margin: 0; padding: 0; }
.nav-item {
    cursor: pointer;
    transition: color 0.3s;
    color: ` + behavior.NavColor + `;
    background: none;
    border: none;
    font: inherit;
    padding: 0;
}
.nav-item[data-hovered="true"], .nav-item:hover, .nav-item:focus-visible { color: ` + behavior.NavHoverColor + `; }

.hero {
    position: relative;
    width: 100%;
    padding-top: 56.25%;
    overflow: hidden;
    animation: fade-in 1s ease-out both;
}
.hero-video { position: absolute; top: 0; left: 0; width: 100%; height: 100%; object-fit: cover; }
.hero-overlay { position: absolute; inset: 0; background: linear-gradient(to top, rgba(0,0,0,0.7), transparent); }
.hero-text { position: absolute; bottom: 2rem; left: 2rem; }
.hero-title { font-size: 2.5rem; margin: 0; line-height: 1.2; animation: rise-in 1s ease-out 1s both; }
.hero-button {
    display: inline-block;
    margin-top: 1rem;
    padding: 0.75rem 1.5rem;
    background-color: #10B981;
    color: #000;
    font-weight: 600;
    border: none;
    border-radius: 9999px;
    cursor: pointer;
    text-decoration: none;
    box-shadow: 0 4px 12px rgba(0,0,0,0.3);
    transition: transform 0.2s, background 0.3s;
}
.hero-button:hover { transform: scale(1.05); }

.gallery { flex: 1; padding: 4rem 2rem; }
.gallery-title { font-size: 2rem; text-align: center; margin-bottom: 2rem; }
.gallery-grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(280px, 1fr)); gap: 2rem; }
.gallery-item { position: relative; overflow: hidden; border-radius: 1rem; box-shadow: 0 8px 24px rgba(0,0,0,0.3); }
.gallery-image { width: 100%; height: 200px; object-fit: cover; display: block; }
.gallery-overlay {
    position: absolute;
    inset: 0;
    background-color: rgba(0,0,0,0.6);
    opacity: 0;
    display: flex;
    align-items: center;
    justify-content: center;
    padding: 1rem;
    transition: opacity 0.3s;
}
.gallery-overlay[data-hovered="true"], .gallery-overlay:hover { opacity: 1; }

.features { background-color: #111827; padding: 4rem 2rem; animation: fade-in 1s ease-out 0.5s both; }
.features-container { max-width: 800px; margin: 0 auto; text-align: center; }
.features-title { font-size: 2rem; margin-bottom: 1.5rem; }
.video-row { display: flex; flex-direction: column; gap: 2rem; margin-bottom: 3rem; }
.video-item { display: flex; align-items: center; gap: 1rem; color: #10B981; }
.video-desc { flex: 0 0 200px; text-align: left; font-size: 1.1rem; }
.video-embed { width: 100%; max-width: 560px; height: 315px; border: none; }
.claims { display: grid; grid-template-columns: 1fr 1fr; gap: 1.5rem; list-style: none; padding: 0; }
.claim { display: flex; align-items: center; gap: 0.5rem; font-size: 1.1rem; }

.footer { text-align: center; padding: 2rem 0; color: #9CA3AF; background-color: #1F2937; }
.footer a { color: #10B981; text-decoration: none; }

@keyframes nav-drop { from { transform: translateY(-100px); } to { transform: translateY(0); } }
@keyframes fade-in { from { opacity: 0; } to { opacity: 1; } }
@keyframes rise-in { from { transform: translateY(50px); opacity: 0; } to { transform: translateY(0); opacity: 1; } }

@media (prefers-reduced-motion: reduce) {
    html { scroll-behavior: auto; }
    .nav, .hero, .hero-title, .features { animation: none; }
}
`
