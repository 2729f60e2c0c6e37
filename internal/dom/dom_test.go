//go:build js && wasm

package dom

import (
	"io"
	"log/slog"
	"strings"
	"syscall/js"
	"testing"
	"time"

	"github.com/detroitcommercial/microsite/internal/behavior"
	"github.com/detroitcommercial/microsite/internal/components"
	"github.com/detroitcommercial/microsite/internal/content"
)

func evalJS(src string) js.Value {
	return js.Global().Call("eval", "("+src+")")
}

// fakeElements is an EventTarget with an attribute map, enough for the
// bindings without a real DOM.
const fakeElements = `function() {
	function el(attrs, text) {
		var e = new EventTarget();
		e.attrs = attrs;
		e.textContent = text || "";
		e.scrolls = [];
		e.getAttribute = function(n) { return n in attrs ? attrs[n] : null; };
		e.setAttribute = function(n, v) { attrs[n] = String(v); };
		e.scrollIntoView = function(opts) { e.scrolls.push(opts); };
		return e;
	}
	function list(a) { return { length: a.length, item: function(i) { return a[i]; } }; }
	var nav = [
		el({"data-nav-index": "0", "data-scroll-target": "features", "data-hovered": "false"}, "Features"),
		el({"data-nav-index": "1", "data-scroll-target": "gallery", "data-hovered": "false"}, "Gallery"),
		el({"data-nav-index": "2", "data-scroll-target": "contact", "data-hovered": "false"}, "Contact"),
	];
	var gallery = [0, 1, 2].map(function(i) {
		return el({"data-gallery-index": String(i), "data-hovered": "false"});
	});
	var sections = { features: el({}), gallery: el({}), contact: el({}) };
	var cta = el({ href: "https://rivian.com" });
	return {
		nav: nav, gallery: gallery, sections: sections, cta: cta,
		querySelectorAll: function(sel) {
			if (sel === "[data-nav-index]") { return list(nav); }
			if (sel === "[data-gallery-index]") { return list(gallery); }
			return list([]);
		},
		getElementById: function(id) {
			if (id === "hero-cta") { return cta; }
			return sections[id] || null;
		},
	};
}()`

func newFakeDoc() (Doc, js.Value) {
	v := evalJS(fakeElements)
	return Doc{v: v}, v
}

func dispatch(target js.Value, event string) js.Value {
	ev := js.Global().Get("Event").New(event, map[string]any{"cancelable": true})
	target.Call("dispatchEvent", ev)
	return ev
}

func playDone(t *testing.T, m Media) error {
	t.Helper()
	result := make(chan error, 1)
	m.Play(func(err error) { result <- err })
	select {
	case err := <-result:
		return err
	case <-time.After(2 * time.Second):
		t.Fatal("play result never delivered")
		return nil
	}
}

func TestMedia_PlayRejected(t *testing.T) {
	el := evalJS(`{ play: function() { return Promise.reject(new Error("NotAllowedError")); } }`)

	err := playDone(t, Media{el: el})

	if err == nil || !strings.Contains(err.Error(), "NotAllowedError") {
		t.Errorf("expected rejection to surface as an error, got %v", err)
	}
}

func TestMedia_PlayResolved(t *testing.T) {
	el := evalJS(`{ play: function() { return Promise.resolve(); } }`)

	if err := playDone(t, Media{el: el}); err != nil {
		t.Errorf("expected nil error, got %v", err)
	}
}

func TestMedia_PlayWithoutPromise(t *testing.T) {
	el := evalJS(`{ play: function() { return undefined; } }`)

	if err := playDone(t, Media{el: el}); err != nil {
		t.Errorf("expected nil error, got %v", err)
	}
}

func TestMedia_Pause(t *testing.T) {
	el := evalJS(`{ paused: 0, pause: function() { this.paused++; } }`)

	Media{el: el}.Pause()

	if got := el.Get("paused").Int(); got != 1 {
		t.Errorf("expected one pause call, got %d", got)
	}
}

func TestListen_RemoveStopsDelivery(t *testing.T) {
	target := js.Global().Get("EventTarget").New()
	calls := 0
	remove := listen(target, "click", func(js.Value) { calls++ })

	dispatch(target, "click")
	remove()
	remove()
	dispatch(target, "click")

	if calls != 1 {
		t.Errorf("expected one delivery before removal, got %d", calls)
	}
}

func TestDoc_ScrollIntoViewIsSmooth(t *testing.T) {
	doc, v := newFakeDoc()

	doc.ScrollIntoView(content.SectionGallery)
	doc.ScrollIntoView("missing")

	scrolls := v.Get("sections").Get("gallery").Get("scrolls")
	if scrolls.Length() != 1 {
		t.Fatalf("expected one scroll, got %d", scrolls.Length())
	}
	if got := scrolls.Index(0).Get("behavior").String(); got != "smooth" {
		t.Errorf("expected smooth scrolling, got %q", got)
	}
}

func TestWin_OpenUsesNoopener(t *testing.T) {
	v := evalJS(`{ opened: [], open: function(u, t, f) { this.opened.push([u, t, f].join(" ")); } }`)

	Win{v: v}.Open("https://rivian.com", "_blank")

	if got := v.Get("opened").Index(0).String(); got != "https://rivian.com _blank noopener" {
		t.Errorf("unexpected open call %q", got)
	}
}

func TestConsole_PicksMethodFromLevel(t *testing.T) {
	console := evalJS(`{
		lines: [],
		log: function(l) { this.lines.push("log " + l); },
		warn: function(l) { this.lines.push("warn " + l); },
		error: function(l) { this.lines.push("error " + l); },
	}`)
	logger := slog.New(slog.NewTextHandler(&consoleWriter{console: console}, nil))

	logger.Info("ready")
	logger.Warn("autoplay blocked")
	logger.Error("broken")

	lines := console.Get("lines")
	for i, prefix := range []string{"log ", "warn ", "error "} {
		if got := lines.Index(i).String(); !strings.HasPrefix(got, prefix) {
			t.Errorf("line %d: expected %q prefix, got %q", i, prefix, got)
		}
	}
}

func TestReadContent(t *testing.T) {
	doc, _ := newFakeDoc()

	page := ReadContent(doc)

	if len(page.Nav) != 3 || page.Nav[1].Label != "Gallery" || page.Nav[1].Target != content.SectionGallery {
		t.Errorf("unexpected nav %+v", page.Nav)
	}
	if len(page.Gallery) != 3 {
		t.Errorf("expected 3 gallery items, got %d", len(page.Gallery))
	}
	if page.CTAURL != "https://rivian.com" {
		t.Errorf("expected CTA URL from href, got %q", page.CTAURL)
	}
}

type silentMedia struct{}

func (silentMedia) Play(done func(error)) { done(nil) }
func (silentMedia) Pause()                {}

type noClicks struct{}

func (noClicks) OnClick(func()) func() { return func() {} }

type recordingOpener struct {
	opened []string
}

func (o *recordingOpener) Open(url, target string) {
	o.opened = append(o.opened, url+" "+target)
}

func bindFake(t *testing.T) (js.Value, *recordingOpener) {
	t.Helper()
	doc, v := newFakeDoc()
	opener := &recordingOpener{}
	page := behavior.NewPage(ReadContent(doc), behavior.Host{
		Audio:  silentMedia{},
		Clicks: noClicks{},
		Scroll: doc,
		Opener: opener,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	Bind(doc, page)
	return v, opener
}

func TestBind_HoverReflectsIntoAttribute(t *testing.T) {
	v, _ := bindFake(t)
	tile := v.Get("gallery").Index(1)

	dispatch(tile, "mouseenter")
	if got := tile.Call("getAttribute", components.HoveredAttr).String(); got != "true" {
		t.Errorf("expected hovered after mouseenter, got %q", got)
	}
	if got := v.Get("gallery").Index(0).Call("getAttribute", components.HoveredAttr).String(); got != "false" {
		t.Errorf("expected sibling untouched, got %q", got)
	}

	dispatch(tile, "mouseleave")
	if got := tile.Call("getAttribute", components.HoveredAttr).String(); got != "false" {
		t.Errorf("expected not hovered after mouseleave, got %q", got)
	}
}

func TestBind_NavClickScrollsToSection(t *testing.T) {
	v, _ := bindFake(t)

	dispatch(v.Get("nav").Index(2), "click")

	if got := v.Get("sections").Get("contact").Get("scrolls").Length(); got != 1 {
		t.Errorf("expected contact to scroll once, got %d", got)
	}
	if got := v.Get("sections").Get("features").Get("scrolls").Length(); got != 0 {
		t.Errorf("expected no other section to scroll, got %d", got)
	}
}

func TestBind_CTAClickAndSpace(t *testing.T) {
	v, opener := bindFake(t)
	cta := v.Get("cta")

	if ev := dispatch(cta, "click"); !ev.Get("defaultPrevented").Bool() {
		t.Error("expected the link navigation to be replaced")
	}

	space := js.Global().Get("Event").New("keydown", map[string]any{"cancelable": true})
	space.Set("key", " ")
	cta.Call("dispatchEvent", space)
	if !space.Get("defaultPrevented").Bool() {
		t.Error("expected Space to be consumed")
	}

	enter := js.Global().Get("Event").New("keydown", map[string]any{"cancelable": true})
	enter.Set("key", "Enter")
	cta.Call("dispatchEvent", enter)
	if enter.Get("defaultPrevented").Bool() {
		t.Error("expected Enter to be left to the link")
	}

	if len(opener.opened) != 2 {
		t.Errorf("expected click and Space to open one context each, got %v", opener.opened)
	}
}
