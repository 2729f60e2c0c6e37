//go:build js && wasm

// Command microsite-wasm is the browser client of the landing page. It binds
// the server-rendered markup to the behavior state machines.
package main

import (
	"log/slog"
	"syscall/js"

	"github.com/detroitcommercial/microsite/internal/behavior"
	"github.com/detroitcommercial/microsite/internal/components"
	"github.com/detroitcommercial/microsite/internal/dom"
)

type silentMedia struct{}

func (silentMedia) Play(done func(error)) { done(nil) }
func (silentMedia) Pause()                {}

func main() {
	logger := slog.New(slog.NewTextHandler(dom.Console(), nil))

	doc := dom.Document()
	win := dom.Window()

	var media behavior.Media = silentMedia{}
	if el, ok := doc.ByID(components.AudioID); ok {
		media = dom.NewMedia(el)
	} else {
		logger.Warn("ambient audio element missing", "id", components.AudioID)
	}

	page := behavior.NewPage(dom.ReadContent(doc), behavior.Host{
		Audio:  media,
		Clicks: win,
		Scroll: doc,
		Opener: win,
	}, logger)
	dom.Bind(doc, page)

	page.Mount()

	win.On("pagehide", func(js.Value) { page.Unmount() })
	win.On("pageshow", func(ev js.Value) {
		if ev.Get("persisted").Bool() {
			page.Mount()
		}
	})

	select {}
}
