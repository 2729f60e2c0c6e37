package behavior

import (
	"log/slog"

	"github.com/detroitcommercial/microsite/internal/content"
)

// Opener opens a URL in a browsing context such as "_blank".
type Opener interface {
	Open(url, target string)
}

type CTA struct {
	url    string
	opener Opener
}

func NewCTA(url string, opener Opener) *CTA {
	return &CTA{url: url, opener: opener}
}

// Click opens one new browsing context per call.
func (c *CTA) Click() {
	c.opener.Open(c.url, "_blank")
}

// KeyDown handles keyboard activation of the button-styled link. Enter
// already produces a click on a link, so only Space is handled here. It
// reports whether the key was consumed.
func (c *CTA) KeyDown(key string) bool {
	switch key {
	case " ", "Spacebar":
		c.Click()
		return true
	}
	return false
}

// Host is everything the page needs from its environment.
type Host struct {
	Audio  Media
	Clicks ClickTarget
	Scroll Scroller
	Opener Opener
}

// Page wires all interactive parts of the landing page to one host.
type Page struct {
	Audio   *AudioController
	Nav     *Navigator
	Gallery *HoverSet
	CTA     *CTA
}

func NewPage(page *content.Page, host Host, logger *slog.Logger) *Page {
	return &Page{
		Audio:   NewAudioController(host.Audio, host.Clicks, logger),
		Nav:     NewNavigator(page.Nav, host.Scroll),
		Gallery: NewHoverSet(len(page.Gallery)),
		CTA:     NewCTA(page.CTAURL, host.Opener),
	}
}

func (p *Page) Mount() {
	p.Audio.Mount()
}

func (p *Page) Unmount() {
	p.Audio.Unmount()
}
