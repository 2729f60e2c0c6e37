package httputil

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
)

type ErrorBody struct {
	Error string `json:"error"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode json response", "error", err)
	}
}

func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, ErrorBody{Error: message})
}

// Renderer is anything that writes itself as HTML, such as a gomponents node.
type Renderer interface {
	Render(w io.Writer) error
}

// WriteHTML renders into a buffer first so that a failing render turns into
// a clean 500 instead of a truncated page.
func WriteHTML(w http.ResponseWriter, status int, page Renderer) {
	var buf bytes.Buffer
	if err := page.Render(&buf); err != nil {
		slog.Error("failed to render page", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
