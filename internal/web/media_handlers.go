package web

import (
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
)

// AvatarHandler serves a stored avatar by filename. No access control:
// any caller who knows a filename can fetch it.
func (h *Handlers) AvatarHandler(w http.ResponseWriter, r *http.Request) {
	serveMedia(w, r, h.cfg.AvatarsDir)
}

// DrillFileHandler serves a stored drill file by filename.
func (h *Handlers) DrillFileHandler(w http.ResponseWriter, r *http.Request) {
	serveMedia(w, r, h.cfg.DrillsDir)
}

func serveMedia(w http.ResponseWriter, r *http.Request, dir string) {
	filename := filepath.Base(chi.URLParam(r, "filename"))
	if filename == "." || filename == ".." || filename == "/" {
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, filepath.Join(dir, filename))
}
