// Package spa serves a single-page application from an fs.FS: static assets
// when they exist, the index document everywhere else so client-side routes
// survive reloads and deep links.
package spa

import (
	"errors"
	"io/fs"
	"net/http"
	"path"
)

// Handler implements http.Handler over an asset filesystem. Requests naming
// a regular file are served verbatim; every other path gets the index
// document. Directories are never listed.
type Handler struct {
	assets fs.FS
	index  string
	files  http.Handler
}

// NewHandler builds a Handler serving assets with index as the fallback
// document. index is an unrooted, slash-separated name such as "index.html".
// To serve a directory on disk, pass os.DirFS(dir).
func NewHandler(assets fs.FS, index string) *Handler {
	return &Handler{
		assets: assets,
		index:  path.Clean("/" + index)[1:],
		files:  http.FileServer(http.FS(assets)),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Clean the path up front so ".." can never climb out of the asset root
	// and fs.FS sees a valid unrooted name below.
	r.URL.Path = path.Clean("/" + r.URL.Path)
	if h.serveAsset(w, r) {
		return
	}
	h.serveIndex(w, r)
}

// serveAsset serves the request from the asset FS when it names a regular
// file, reporting whether a response has been written.
func (h *Handler) serveAsset(w http.ResponseWriter, r *http.Request) bool {
	// The root and the index name itself always go through serveIndex;
	// http.FileServer would otherwise redirect "/index.html" to "./".
	name := r.URL.Path[1:]
	if name == "" || name == h.index {
		return false
	}
	info, err := fs.Stat(h.assets, name)
	if err == nil && info.Mode().IsRegular() {
		h.files.ServeHTTP(w, r)
		return true
	}
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		httpError(w, err)
		return true
	}
	// Missing file or a directory: fall back to the index document.
	return false
}

func (h *Handler) serveIndex(w http.ResponseWriter, r *http.Request) {
	f, err := http.FS(h.assets).Open("/" + h.index)
	if err != nil {
		httpError(w, err)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		httpError(w, err)
		return
	}
	http.ServeContent(w, r, h.index, info.ModTime(), f)
}

// httpError reports filesystem faults without leaking path or permission
// detail to the client.
func httpError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		http.Error(w, "404 page not found", http.StatusNotFound)
	case errors.Is(err, fs.ErrPermission):
		http.Error(w, "403 Forbidden", http.StatusForbidden)
	default:
		http.Error(w, "500 Internal Server Error", http.StatusInternalServerError)
	}
}
