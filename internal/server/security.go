package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/detroitcommercial/microsite/internal/httputil"
)

type SecurityConfig struct {
	BaseURL         string
	StorageEndpoint string
	// FrameSources returns the origins allowed in <iframe>, i.e. the video
	// embed provider. It is called per request so that content reloads
	// take effect.
	FrameSources func() []string
}

func securityHeaders(cfg SecurityConfig) func(http.Handler) http.Handler {
	strictTransport := strings.HasPrefix(cfg.BaseURL, "https://")
	storageSuffix := ""
	if cfg.StorageEndpoint != "" {
		storageSuffix = " " + cfg.StorageEndpoint
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			nonce, err := httputil.GenerateNonce()
			if err != nil {
				slog.Error("failed to generate CSP nonce", "error", err)
				http.Error(w, "internal server error", http.StatusInternalServerError)
				return
			}
			ctx := httputil.ContextWithNonce(r.Context(), nonce)

			frameSrc := "'none'"
			if cfg.FrameSources != nil {
				if sources := cfg.FrameSources(); len(sources) > 0 {
					frameSrc = strings.Join(sources, " ")
				}
			}

			w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
			w.Header().Set("X-Content-Type-Options", "nosniff")
			w.Header().Set("X-Frame-Options", "SAMEORIGIN")
			w.Header().Set("Permissions-Policy", "camera=(), microphone=(), geolocation=()")

			// 'wasm-unsafe-eval' lets the interactive client compile; it
			// does not re-enable eval() for scripts.
			csp := fmt.Sprintf(
				"default-src 'self'; img-src 'self' data:%s; media-src 'self'%s; script-src 'self' 'nonce-%s' 'wasm-unsafe-eval'; style-src 'self' 'nonce-%s'; frame-src %s; connect-src 'self'; frame-ancestors 'self';",
				storageSuffix, storageSuffix, nonce, nonce, frameSrc,
			)
			w.Header().Set("Content-Security-Policy", csp)
			if strictTransport {
				w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// originOf reduces a URL to scheme://host for use as a CSP source.
func originOf(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host
}
