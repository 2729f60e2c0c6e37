package behavior

import (
	"fmt"

	"github.com/detroitcommercial/microsite/internal/content"
)

const (
	NavColor      = "#CBD5E1"
	NavHoverColor = "#10B981"
)

// Scroller brings a page section into view with smooth easing.
type Scroller interface {
	ScrollIntoView(sectionID string)
}

type Navigator struct {
	items    []content.NavItem
	scroller Scroller
	hover    *HoverSet
}

func NewNavigator(items []content.NavItem, scroller Scroller) *Navigator {
	return &Navigator{
		items:    items,
		scroller: scroller,
		hover:    NewHoverSet(len(items)),
	}
}

// Activate scrolls to the section of the item at index. It is shared by
// click and keyboard activation.
func (n *Navigator) Activate(index int) error {
	if index < 0 || index >= len(n.items) {
		return fmt.Errorf("nav item %d out of range", index)
	}
	n.scroller.ScrollIntoView(n.items[index].Target)
	return nil
}

// Navigate activates the item with the given label.
func (n *Navigator) Navigate(label string) error {
	for i, item := range n.items {
		if item.Label == label {
			return n.Activate(i)
		}
	}
	return fmt.Errorf("no nav item labelled %q", label)
}

func (n *Navigator) Hover() *HoverSet {
	return n.hover
}

func (n *Navigator) Color(index int) string {
	if n.hover.Hovered(index) {
		return NavHoverColor
	}
	return NavColor
}
