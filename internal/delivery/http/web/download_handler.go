package web

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"go-portfolio-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

var errUnsafePath = errors.New("unsafe download path")

type DownloadHandler struct {
	root string
}

// NewDownloadHandler registers the public file download route. Files are
// served as attachments from the downloads root and nowhere else.
func NewDownloadHandler(r gin.IRouter, downloadsDir string) {
	handler := &DownloadHandler{
		root: downloadsDir,
	}

	r.GET("/downloads/public/*filepath", handler.ServeFile)
}

func (h *DownloadHandler) ServeFile(c *gin.Context) {
	rel, err := sanitizeDownloadPath(c.Param("filepath"))
	if err != nil {
		c.Error(apperror.BadRequest("invalid file path"))
		return
	}

	root, err := filepath.EvalSymlinks(h.root)
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	// Resolve symlinks before the containment check so a link inside the
	// root cannot point the request outside it.
	full, err := filepath.EvalSymlinks(filepath.Join(root, rel))
	if err != nil {
		c.Error(apperror.NotFound("file not found"))
		return
	}

	if full != root && !strings.HasPrefix(full, root+string(filepath.Separator)) {
		c.Error(apperror.Forbidden("access denied"))
		return
	}

	info, err := os.Stat(full)
	if err != nil || !info.Mode().IsRegular() {
		c.Error(apperror.NotFound("file not found"))
		return
	}

	c.FileAttachment(full, filepath.Base(full))
}

// sanitizeDownloadPath normalizes the wildcard path parameter and rejects
// anything that names no file or tries to climb out of the root.
func sanitizeDownloadPath(raw string) (string, error) {
	p := strings.TrimPrefix(raw, "/")
	if p == "" || strings.ContainsRune(p, 0) {
		return "", errUnsafePath
	}

	for _, segment := range strings.Split(p, "/") {
		switch segment {
		case "", ".", "..":
			return "", errUnsafePath
		}
	}

	return filepath.FromSlash(p), nil
}
