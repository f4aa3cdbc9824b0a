package http

import (
	"io"
	"net/http"
	"net/url"
	"path/filepath"

	"closetshare-backend/internal/storage"

	"github.com/gorilla/mux"
)

// FileHandler serves stored receipt images back over HTTP when the local
// blob store is in use.
type FileHandler struct {
	blobStore storage.BlobStore
}

func NewFileHandler(blobStore storage.BlobStore) *FileHandler {
	return &FileHandler{blobStore: blobStore}
}

// Download handles GET /files/{key}
func (h *FileHandler) Download(w http.ResponseWriter, r *http.Request) {
	key, err := url.PathUnescape(mux.Vars(r)["key"])
	if err != nil || key == "" {
		writeError(w, http.StatusBadRequest, "missing file key")
		return
	}

	file, err := h.blobStore.Open(r.Context(), key)
	if err != nil {
		writeError(w, http.StatusNotFound, "file not found")
		return
	}
	defer file.Close()

	contentType := "application/octet-stream"
	switch filepath.Ext(key) {
	case ".jpg", ".jpeg":
		contentType = "image/jpeg"
	case ".png":
		contentType = "image/png"
	case ".gif":
		contentType = "image/gif"
	case ".pdf":
		contentType = "application/pdf"
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	io.Copy(w, file)
}
