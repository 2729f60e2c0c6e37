//go:build js && wasm

// Package dom adapts browser objects to the interfaces in internal/behavior.
package dom

import (
	"errors"
	"sync"
	"syscall/js"
)

type Element struct {
	v js.Value
}

func (e Element) Attr(name string) string {
	v := e.v.Call("getAttribute", name)
	if v.IsNull() || v.IsUndefined() {
		return ""
	}
	return v.String()
}

func (e Element) SetAttr(name, value string) {
	e.v.Call("setAttribute", name, value)
}

// On registers fn for event and returns a function that removes it again.
func (e Element) On(event string, fn func(ev js.Value)) (remove func()) {
	return listen(e.v, event, fn)
}

func listen(target js.Value, event string, fn func(ev js.Value)) func() {
	cb := js.FuncOf(func(_ js.Value, args []js.Value) any {
		ev := js.Undefined()
		if len(args) > 0 {
			ev = args[0]
		}
		fn(ev)
		return nil
	})
	target.Call("addEventListener", event, cb)

	var once sync.Once
	return func() {
		once.Do(func() {
			target.Call("removeEventListener", event, cb)
			cb.Release()
		})
	}
}

type Doc struct {
	v js.Value
}

func Document() Doc {
	return Doc{v: js.Global().Get("document")}
}

func (d Doc) ByID(id string) (Element, bool) {
	v := d.v.Call("getElementById", id)
	if v.IsNull() || v.IsUndefined() {
		return Element{}, false
	}
	return Element{v: v}, true
}

func (d Doc) QueryAll(selector string) []Element {
	list := d.v.Call("querySelectorAll", selector)
	n := list.Get("length").Int()
	out := make([]Element, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, Element{v: list.Call("item", i)})
	}
	return out
}

// ScrollIntoView smooth-scrolls the section with the given id.
func (d Doc) ScrollIntoView(sectionID string) {
	el, ok := d.ByID(sectionID)
	if !ok {
		return
	}
	el.v.Call("scrollIntoView", map[string]any{"behavior": "smooth"})
}

type Win struct {
	v js.Value
}

func Window() Win {
	return Win{v: js.Global()}
}

func (w Win) OnClick(fn func()) func() {
	return listen(w.v, "click", func(js.Value) { fn() })
}

func (w Win) On(event string, fn func(ev js.Value)) func() {
	return listen(w.v, event, fn)
}

func (w Win) Open(url, target string) {
	w.v.Call("open", url, target, "noopener")
}

// Media wraps an HTMLMediaElement.
type Media struct {
	el js.Value
}

func NewMedia(e Element) Media {
	return Media{el: e.v}
}

func (m Media) Play(done func(error)) {
	p := m.el.Call("play")
	// Browsers without promise-returning play() never reject.
	if p.IsUndefined() || p.IsNull() {
		done(nil)
		return
	}

	var onOK, onErr js.Func
	release := func() {
		onOK.Release()
		onErr.Release()
	}
	onOK = js.FuncOf(func(js.Value, []js.Value) any {
		release()
		done(nil)
		return nil
	})
	onErr = js.FuncOf(func(_ js.Value, args []js.Value) any {
		release()
		msg := "play() rejected"
		if len(args) > 0 && !args[0].IsUndefined() && !args[0].IsNull() {
			msg = args[0].Call("toString").String()
		}
		done(errors.New(msg))
		return nil
	})
	p.Call("then", onOK, onErr)
}

func (m Media) Pause() {
	m.el.Call("pause")
}
