package server

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

type staticCountry string

func (c staticCountry) Country(string) string { return string(c) }

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(previous) })
	return &buf
}

func TestRequestLogger_LogsRequest(t *testing.T) {
	buf := captureLogs(t)

	r := chi.NewRouter()
	r.Use(requestLogger(staticCountry("US")))
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	r.ServeHTTP(httptest.NewRecorder(), req)

	output := buf.String()
	for _, field := range []string{
		"method=GET",
		"path=/",
		"status=200",
		"remote_addr=",
		"duration_ms=",
		"browser=Chrome",
		"bot=false",
		"country=US",
	} {
		if !strings.Contains(output, field) {
			t.Errorf("expected log to contain %q, got: %s", field, output)
		}
	}
}

func TestRequestLogger_FlagsBots(t *testing.T) {
	buf := captureLogs(t)

	handler := requestLogger(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if !strings.Contains(buf.String(), "bot=true") {
		t.Errorf("expected crawler to be flagged, got: %s", buf.String())
	}
	if strings.Contains(buf.String(), "country=") {
		t.Errorf("expected no country without a resolver, got: %s", buf.String())
	}
}

func TestRequestLogger_SkipsHealthCheck(t *testing.T) {
	buf := captureLogs(t)

	handler := requestLogger(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/health", nil))

	if buf.String() != "" {
		t.Errorf("expected no log output for /api/health, got: %s", buf.String())
	}
}

func TestRequestLogger_LogsNon200Status(t *testing.T) {
	buf := captureLogs(t)

	handler := requestLogger(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/images/missing.jpg", nil))

	if !strings.Contains(buf.String(), "status=404") {
		t.Errorf("expected log to contain status=404, got: %s", buf.String())
	}
}
