package server

import (
	"context"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// AssetStorage presigns media downloads from object storage.
type AssetStorage interface {
	GenerateDownloadURL(ctx context.Context, assetPath string, expiry time.Duration) (string, error)
}

const presignExpiry = 1 * time.Hour

// assetServer serves the page's images, video and audio. With object storage
// configured it redirects to a presigned URL; otherwise it serves files from
// fileSystem. Unknown paths are a plain 404, as the page's markup already
// degrades to the browser's broken-media placeholder.
type assetServer struct {
	fileServer http.Handler
	fileSystem fs.FS
	storage    AssetStorage
}

func newAssetServer(fsys fs.FS, storage AssetStorage) *assetServer {
	a := &assetServer{fileSystem: fsys, storage: storage}
	if fsys != nil {
		a.fileServer = http.FileServer(http.FS(fsys))
	}
	return a
}

func (a *assetServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(r.URL.Path, "/")
	if !fs.ValidPath(name) || name == "." {
		http.NotFound(w, r)
		return
	}

	if a.storage != nil {
		u, err := a.storage.GenerateDownloadURL(r.Context(), name, presignExpiry)
		if err != nil {
			slog.Error("failed to presign asset", "path", name, "error", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Cache-Control", "private, max-age=300")
		http.Redirect(w, r, u, http.StatusFound)
		return
	}

	if a.fileSystem == nil {
		http.NotFound(w, r)
		return
	}
	info, err := fs.Stat(a.fileSystem, name)
	if err != nil || info.IsDir() {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Cache-Control", "public, max-age=86400")
	a.fileServer.ServeHTTP(w, r)
}
