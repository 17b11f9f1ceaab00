package static

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// Handler serves the prebuilt frontend bundle from an asset directory.
// There is no templating and no directory listing; files are served with
// standard content-type inference.
type Handler struct {
	dir   string
	index string
}

// NewHandler creates a static handler rooted at dir with the given entry
// document name.
func NewHandler(dir, index string) *Handler {
	if index == "" {
		index = "index.html"
	}
	return &Handler{dir: dir, index: index}
}

// Index serves the entry document for the root path
func (h *Handler) Index() gin.HandlerFunc {
	return func(c *gin.Context) {
		h.serveFile(c, filepath.Join(h.dir, h.index))
	}
}

// Asset serves any other static path resolved against the asset directory
func (h *Handler) Asset() gin.HandlerFunc {
	return func(c *gin.Context) {
		rel := strings.TrimPrefix(c.Request.URL.Path, "/")
		path := filepath.Join(h.dir, filepath.Clean("/"+rel))
		h.serveFile(c, path)
	}
}

// serveFile serves a single regular file, or 404 when it is missing or a
// directory.
func (h *Handler) serveFile(c *gin.Context, path string) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}
	c.File(path)
}
