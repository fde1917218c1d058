// Package web embeds the drawing page served by cmd/server.
package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed index.html static
var assets embed.FS

// Register mounts the page at "/" and its script under "/static".
func Register(r *gin.Engine) {
	static, err := fs.Sub(assets, "static")
	if err != nil {
		// embed パスはビルド時に確定するのでここには来ない
		panic(err)
	}
	r.StaticFS("/static", http.FS(static))
	r.GET("/", Index)
}

// Index serves the drawing page.
func Index(c *gin.Context) {
	b, err := assets.ReadFile("index.html")
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", b)
}
