package httpserver

import (
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// staticRenderer serves front-end assets from the public directory. Static
// assets carry no authorization semantics, so requests land here before the
// API pipeline runs.
type staticRenderer struct {
	dir    string
	logger *slog.Logger
}

var contentTypeByExtension = map[string]string{
	".js":   "text/javascript",
	".css":  "text/css",
	".json": "application/json",
	".png":  "image/png",
	".jpg":  "image/jpg",
	".svg":  "image/svg+xml",
	".wav":  "audio/wav",
}

func (sr staticRenderer) render(w http.ResponseWriter, requestPath string) {
	name := path.Clean("/" + requestPath)
	if name == "/" {
		name = "/index.html"
	}

	content, err := os.ReadFile(filepath.Join(sr.dir, filepath.FromSlash(name)))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) && sr.logger != nil {
			sr.logger.Error("static file read failed",
				"event", "static_read_failed",
				"module", "internal/platform/httpserver",
				"layer", "platform",
				"path", name,
				"error", err.Error(),
			)
		}
		sr.renderNotFound(w)
		return
	}

	w.Header().Set("Content-Type", contentTypeFor(name))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(content)
}

func (sr staticRenderer) renderNotFound(w http.ResponseWriter) {
	content, err := os.ReadFile(filepath.Join(sr.dir, "404.html"))
	if err != nil {
		http.Error(w, "404 Not Found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/html")
	w.WriteHeader(http.StatusNotFound)
	_, _ = w.Write(content)
}

func contentTypeFor(name string) string {
	if contentType, ok := contentTypeByExtension[strings.ToLower(path.Ext(name))]; ok {
		return contentType
	}
	return "text/html"
}
