package behavior

import "sync"

// HoverSet tracks an independent hovered/not-hovered flag per item.
type HoverSet struct {
	mu        sync.Mutex
	hovered   []bool
	listeners []func(index int, hovered bool)
}

func NewHoverSet(n int) *HoverSet {
	return &HoverSet{hovered: make([]bool, n)}
}

func (h *HoverSet) Len() int {
	return len(h.hovered)
}

// OnChange registers fn to run after an item's flag flips.
func (h *HoverSet) OnChange(fn func(index int, hovered bool)) {
	h.mu.Lock()
	h.listeners = append(h.listeners, fn)
	h.mu.Unlock()
}

func (h *HoverSet) Enter(index int) { h.set(index, true) }

func (h *HoverSet) Leave(index int) { h.set(index, false) }

func (h *HoverSet) set(index int, hovered bool) {
	h.mu.Lock()
	if index < 0 || index >= len(h.hovered) || h.hovered[index] == hovered {
		h.mu.Unlock()
		return
	}
	h.hovered[index] = hovered
	listeners := append([]func(int, bool){}, h.listeners...)
	h.mu.Unlock()

	for _, fn := range listeners {
		fn(index, hovered)
	}
}

func (h *HoverSet) Hovered(index int) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if index < 0 || index >= len(h.hovered) {
		return false
	}
	return h.hovered[index]
}

// Opacity is the caption overlay opacity for a gallery item.
func (h *HoverSet) Opacity(index int) float64 {
	if h.Hovered(index) {
		return 1
	}
	return 0
}
