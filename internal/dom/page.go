//go:build js && wasm

package dom

import (
	"strconv"
	"syscall/js"

	"github.com/detroitcommercial/microsite/internal/behavior"
	"github.com/detroitcommercial/microsite/internal/components"
	"github.com/detroitcommercial/microsite/internal/content"
)

// ReadContent recovers the interactive parts of the page from the markup the
// server rendered, so the client never needs a second request.
func ReadContent(d Doc) *content.Page {
	page := &content.Page{}
	for _, el := range d.QueryAll("[" + components.NavIndexAttr + "]") {
		page.Nav = append(page.Nav, content.NavItem{
			Label:  el.v.Get("textContent").String(),
			Target: el.Attr("data-scroll-target"),
		})
	}
	for range d.QueryAll("[" + components.GalleryIndexAttr + "]") {
		page.Gallery = append(page.Gallery, content.GalleryImage{})
	}
	if cta, ok := d.ByID(components.CTAID); ok {
		page.CTAURL = cta.Attr("href")
	}
	return page
}

// Bind connects DOM events to the page state and reflects state changes
// back as data-hovered attributes.
func Bind(d Doc, page *behavior.Page) {
	bindHover(d, components.NavIndexAttr, page.Nav.Hover())
	bindHover(d, components.GalleryIndexAttr, page.Gallery)

	for _, el := range d.QueryAll("[" + components.NavIndexAttr + "]") {
		index, err := strconv.Atoi(el.Attr(components.NavIndexAttr))
		if err != nil {
			continue
		}
		// Buttons also fire click for Enter and Space.
		el.On("click", func(js.Value) {
			_ = page.Nav.Activate(index)
		})
	}

	if cta, ok := d.ByID(components.CTAID); ok {
		cta.On("click", func(ev js.Value) {
			ev.Call("preventDefault")
			page.CTA.Click()
		})
		// Links ignore Space; the page also scrolls unless it is prevented.
		cta.On("keydown", func(ev js.Value) {
			if page.CTA.KeyDown(ev.Get("key").String()) {
				ev.Call("preventDefault")
			}
		})
	}
}

func bindHover(d Doc, indexAttr string, set *behavior.HoverSet) {
	elements := make(map[int]Element)
	for _, el := range d.QueryAll("[" + indexAttr + "]") {
		index, err := strconv.Atoi(el.Attr(indexAttr))
		if err != nil {
			continue
		}
		elements[index] = el
		el.On("mouseenter", func(js.Value) { set.Enter(index) })
		el.On("mouseleave", func(js.Value) { set.Leave(index) })
	}
	set.OnChange(func(index int, hovered bool) {
		if el, ok := elements[index]; ok {
			el.SetAttr(components.HoveredAttr, strconv.FormatBool(hovered))
		}
	})
}
