package v1

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"simorgh/internal/core/apperror"
)

// serveStatic serves the built front-end from dir. Paths that do not name a file fall
// back to index.html so client-side routes work; unknown /api and /health paths stay 404.
func serveStatic(router *gin.Engine, dir string) {
	index := filepath.Join(dir, "index.html")
	files := http.Dir(dir)

	router.NoRoute(func(c *gin.Context) {
		p := c.Request.URL.Path
		if strings.HasPrefix(p, "/api/") || strings.HasPrefix(p, "/health/") ||
			(c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead) {
			_ = c.Error(apperror.NewNotFound("route", p))
			c.Abort()
			return
		}

		clean := path.Clean("/" + p)
		if f, err := files.Open(clean); err == nil {
			stat, statErr := f.Stat()
			f.Close()
			if statErr == nil && !stat.IsDir() {
				c.File(filepath.Join(dir, filepath.FromSlash(clean)))
				return
			}
		}
		if _, err := os.Stat(index); err != nil {
			_ = c.Error(apperror.NewNotFound("route", p))
			c.Abort()
			return
		}
		c.File(index)
	})
}
