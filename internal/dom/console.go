//go:build js && wasm

package dom

import (
	"io"
	"strings"
	"syscall/js"
)

type consoleWriter struct {
	console js.Value
}

// Console returns a writer that forwards each write to the browser console,
// picking console.warn or console.error from the slog level in the line.
func Console() io.Writer {
	return &consoleWriter{console: js.Global().Get("console")}
}

func (c *consoleWriter) Write(p []byte) (int, error) {
	line := strings.TrimRight(string(p), "\n")
	method := "log"
	switch {
	case strings.Contains(line, "level=ERROR"):
		method = "error"
	case strings.Contains(line, "level=WARN"):
		method = "warn"
	}
	c.console.Call(method, line)
	return len(p), nil
}
