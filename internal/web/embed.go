package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed all:static
var staticFS embed.FS

// RegisterStaticRoutes registers routes to serve the embedded frontend
func RegisterStaticRoutes(r *gin.Engine) {
	distFS, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic("failed to get static subdirectory: " + err.Error())
	}

	// Serve static assets
	r.StaticFS("/assets", http.FS(mustSub(distFS, "assets")))

	// Serve index.html for all non-API routes
	r.NoRoute(func(c *gin.Context) {
		// Don't serve index.html for API routes
		if len(c.Request.URL.Path) >= 4 && c.Request.URL.Path[:4] == "/api" {
			c.JSON(404, gin.H{"error": "not found"})
			return
		}

		indexHTML, err := fs.ReadFile(distFS, "index.html")
		if err != nil {
			c.String(500, "failed to read index.html")
			return
		}
		c.Data(200, "text/html; charset=utf-8", indexHTML)
	})
}

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic("failed to get subdirectory: " + err.Error())
	}
	return sub
}
