package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/detroitcommercial/microsite/internal/content"
)

const (
	WasmExecPath = "/static/wasm_exec.js"
	WasmAppPath  = "/static/app.wasm"
)

type PageConfig struct {
	Title       string
	Description string
	// Nonce is applied to every inline <style> and <script>. Empty for
	// static exports, which are served without a CSP.
	Nonce string
	// Interactive loads the WebAssembly client that drives audio,
	// navigation, hover and the call to action.
	Interactive bool
}

func Layout(config PageConfig, children ...g.Node) g.Node {
	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				g.If(config.Description != "", Meta(Name("description"), Content(config.Description))),
				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				Meta(g.Attr("property", "og:type"), Content("website")),
				StyleEl(nonce(config.Nonce), g.Raw(stylesheet)),
			),
			Body(
				g.Group(children),
				g.If(config.Interactive, clientScripts(config.Nonce)),
			),
		),
	})
}

func clientScripts(n string) g.Node {
	return g.Group([]g.Node{
		Script(nonce(n), Src(WasmExecPath)),
		Script(nonce(n), g.Raw(`
(function() {
    if (!("WebAssembly" in window) || typeof Go === "undefined") { return; }
    var go = new Go();
    WebAssembly.instantiateStreaming(fetch("`+WasmAppPath+`"), go.importObject)
        .then(function(result) { go.run(result.instance); })
        .catch(function(err) { console.warn("interactive client unavailable", err); });
})();
`)),
	})
}

func nonce(n string) g.Node {
	if n == "" {
		return nil
	}
	return g.Attr("nonce", n)
}

// Landing composes the full page. Year is the footer's copyright year and is
// passed in so that rendering stays deterministic.
func Landing(page *content.Page, config PageConfig, year int) g.Node {
	if config.Title == "" {
		config.Title = page.Title
	}
	if config.Description == "" {
		config.Description = page.Description
	}

	return Layout(config,
		Div(
			Class("page"),
			AmbientAudio(page),
			NavBar(page),
			HeroSection(page),
			GallerySection(page),
			FeaturesSection(page),
			PageFooter(page, year),
		),
	)
}
