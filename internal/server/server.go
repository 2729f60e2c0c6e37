package server

import (
	"context"
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/detroitcommercial/microsite/internal/components"
	"github.com/detroitcommercial/microsite/internal/content"
	"github.com/detroitcommercial/microsite/internal/httputil"
	"github.com/detroitcommercial/microsite/internal/ratelimit"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type Config struct {
	Content *content.Store
	// AssetsFS holds images/, video/ and audio/. Ignored for requests that
	// Storage can presign.
	AssetsFS fs.FS
	// StaticFS holds app.wasm and wasm_exec.js for the interactive client.
	StaticFS        fs.FS
	Storage         AssetStorage
	StoragePinger   Pinger
	StorageEndpoint string
	GeoIP           CountryResolver
	BaseURL         string
	// Now is the clock used for the footer year. Defaults to time.Now.
	Now func() time.Time
	// Context bounds background work such as rate limiter cleanup.
	Context context.Context
}

type Server struct {
	router      chi.Router
	content     *content.Store
	pinger      Pinger
	assets      *assetServer
	staticFS    fs.FS
	interactive bool
	now         func() time.Time
	ctx         context.Context
}

func New(cfg Config) *Server {
	if cfg.Content == nil {
		cfg.Content = content.StaticStore(content.Default())
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Context == nil {
		cfg.Context = context.Background()
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(cfg.GeoIP))

	store := cfg.Content
	r.Use(securityHeaders(SecurityConfig{
		BaseURL:         cfg.BaseURL,
		StorageEndpoint: cfg.StorageEndpoint,
		FrameSources:    func() []string { return frameSources(store.Page()) },
	}))

	s := &Server{
		router:   r,
		content:  cfg.Content,
		pinger:   cfg.StoragePinger,
		assets:   newAssetServer(cfg.AssetsFS, cfg.Storage),
		staticFS: cfg.StaticFS,
		now:      cfg.Now,
		ctx:      cfg.Context,
	}
	if cfg.StaticFS != nil {
		if _, err := fs.Stat(cfg.StaticFS, "app.wasm"); err == nil {
			s.interactive = true
		}
	}
	s.routes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Get("/", s.handleLanding)
	s.router.Get("/api/health", s.handleHealth)

	apiLimiter := ratelimit.NewLimiter(s.ctx, 2, 10)
	s.router.With(apiLimiter.Middleware).Get("/api/content", s.handleContent)

	for _, dir := range []string{"images", "video", "audio"} {
		s.router.Get("/"+dir+"/*", s.assets.ServeHTTP)
	}

	if s.staticFS != nil {
		s.router.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(s.staticFS))))
	}
}

func (s *Server) handleLanding(w http.ResponseWriter, r *http.Request) {
	page := components.Landing(s.content.Page(), components.PageConfig{
		Nonce:       httputil.NonceFromContext(r.Context()),
		Interactive: s.interactive,
	}, s.now().Year())

	w.Header().Set("Cache-Control", "no-cache")
	httputil.WriteHTML(w, http.StatusOK, page)
}

type contentResponse struct {
	*content.Page
	EmbedURLs []string `json:"embedUrls"`
	Copyright string   `json:"copyright"`
}

func (s *Server) handleContent(w http.ResponseWriter, r *http.Request) {
	page := s.content.Page()
	embeds := make([]string, 0, len(page.FeatureVideos))
	for _, v := range page.FeatureVideos {
		embeds = append(embeds, page.EmbedURL(v))
	}
	httputil.WriteJSON(w, http.StatusOK, contentResponse{
		Page:      page,
		EmbedURLs: embeds,
		Copyright: content.CopyrightLine(page.Brand, s.now().Year()),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.pinger != nil {
		if err := s.pinger.Ping(r.Context()); err != nil {
			httputil.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "unhealthy",
				"error":  "storage unreachable",
			})
			return
		}
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// frameSources allows the default embed provider plus the one the current
// content points at.
func frameSources(page *content.Page) []string {
	sources := []string{originOf(content.DefaultEmbedBase)}
	if origin := originOf(page.EmbedBase); origin != "" && origin != sources[0] {
		sources = append(sources, origin)
	}
	return sources
}
