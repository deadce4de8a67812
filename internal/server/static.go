// AngelaMos | 2026
// static.go

package server

import (
	"fmt"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/carterperez-dev/portfolio-backend/internal/core"
)

// ServeStatic serves the built frontend from dir for every route the API
// does not claim. Unknown paths outside /api fall back to index.html so the
// client router can resolve them.
func (s *Server) ServeStatic(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("static dir: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("static dir %s is not a directory", dir)
	}

	s.router.NotFound(spaHandler(dir))
	s.logger.Info("serving static files", "dir", dir)
	return nil
}

func spaHandler(dir string) http.HandlerFunc {
	files := http.FileServer(http.Dir(dir))
	index := filepath.Join(dir, "index.html")

	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api" || strings.HasPrefix(r.URL.Path, "/api/") {
			core.NotFound(w, "Route")
			return
		}

		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			core.NotFound(w, "Route")
			return
		}

		clean := path.Clean("/" + r.URL.Path)
		target := filepath.Join(dir, filepath.FromSlash(clean))
		if fi, err := os.Stat(target); err == nil && !fi.IsDir() {
			files.ServeHTTP(w, r)
			return
		}

		w.Header().Set("Cache-Control", "no-cache")
		http.ServeFile(w, r, index)
	}
}
