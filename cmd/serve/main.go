// Command serve hosts the wasm build of the shop front: index.html,
// wasm_exec.js and shopfront.wasm from the web root.
package main

import (
	"log"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/milk9111/shopfront/assets"
	"github.com/milk9111/shopfront/config"
)

const wasmFile = "shopfront.wasm"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	assets.CloudName = cfg.CloudName

	r := newRouter(cfg.WebRoot)
	log.Printf("serve: %s on %s", cfg.WebRoot, cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}

func newRouter(root string) *gin.Engine {
	r := gin.Default()

	r.StaticFile("/", filepath.Join(root, "index.html"))
	r.StaticFile("/wasm_exec.js", filepath.Join(root, "wasm_exec.js"))
	r.GET("/"+wasmFile, func(c *gin.Context) {
		c.Header("Content-Type", "application/wasm")
		c.File(filepath.Join(root, wasmFile))
	})

	// Media ids resolve to the CDN so the page never hardcodes the account.
	r.GET("/media/:kind/*id", func(c *gin.Context) {
		id := c.Param("id")
		if len(id) > 0 && id[0] == '/' {
			id = id[1:]
		}
		if id == "" {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		c.Redirect(http.StatusFound, assets.MediaURL(id, assets.MediaOptions{ResourceType: c.Param("kind")}))
	})

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return r
}
