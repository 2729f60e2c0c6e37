// Package behavior holds the interactive logic of the landing page as plain
// Go state machines. The host environment (the browser, via internal/dom, or
// a fake in tests) is reached only through the small interfaces below.
package behavior

import (
	"log/slog"
	"sync"
)

// Media is a playable element. Play reports its outcome asynchronously
// because browsers resolve play() requests as promises.
type Media interface {
	Play(done func(error))
	Pause()
}

// ClickTarget accepts page-wide click listeners. The returned function
// deregisters the listener.
type ClickTarget interface {
	OnClick(fn func()) (remove func())
}

// AudioController plays the ambient soundtrack. When the browser blocks
// autoplay it arms a single click listener that retries once and then
// removes itself.
type AudioController struct {
	media  Media
	target ClickTarget
	logger *slog.Logger

	mu         sync.Mutex
	mounted    bool
	generation uint64
	remove     func()
}

func NewAudioController(media Media, target ClickTarget, logger *slog.Logger) *AudioController {
	if logger == nil {
		logger = slog.Default()
	}
	return &AudioController{media: media, target: target, logger: logger}
}

// Mount attempts autoplay. Calling it again while mounted does nothing.
func (c *AudioController) Mount() {
	c.mu.Lock()
	if c.mounted {
		c.mu.Unlock()
		return
	}
	c.mounted = true
	c.generation++
	gen := c.generation
	c.mu.Unlock()

	c.media.Play(func(err error) {
		if err != nil {
			c.autoplayBlocked(gen, err)
		}
	})
}

func (c *AudioController) autoplayBlocked(gen uint64, err error) {
	c.logger.Warn("autoplay blocked, will play on user interaction", "error", err)

	c.mu.Lock()
	defer c.mu.Unlock()
	// A result from an earlier mount, or one arriving after unmount, must
	// not arm anything.
	if !c.mounted || c.generation != gen || c.remove != nil {
		return
	}
	c.remove = c.target.OnClick(c.resume)
}

func (c *AudioController) resume() {
	c.mu.Lock()
	remove := c.remove
	c.remove = nil
	c.mu.Unlock()

	if remove == nil {
		return
	}
	remove()

	c.media.Play(func(err error) {
		if err != nil {
			c.logger.Warn("audio resume failed", "error", err)
		}
	})
}

// Armed reports whether a resume listener is currently registered.
func (c *AudioController) Armed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remove != nil
}

// Unmount releases the resume listener, if any, and pauses playback.
func (c *AudioController) Unmount() {
	c.mu.Lock()
	if !c.mounted {
		c.mu.Unlock()
		return
	}
	c.mounted = false
	remove := c.remove
	c.remove = nil
	c.mu.Unlock()

	if remove != nil {
		remove()
	}
	c.media.Pause()
}
