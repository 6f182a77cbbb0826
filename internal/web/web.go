// Package web carries the embedded front-end bundle served by the API
// process, so the binary ships self-contained.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed dist
var embededFiles embed.FS

// Assets returns the bundle's static asset tree for the file server.
func Assets() http.FileSystem {
	fsys, err := fs.Sub(embededFiles, "dist/assets")
	if err != nil {
		panic(err)
	}

	return http.FS(fsys)
}

// Index returns the front-end entry document. Unmatched GET requests are
// answered with this page so the client-side router can take over.
func Index() []byte {
	page, err := embededFiles.ReadFile("dist/index.html")
	if err != nil {
		panic(err)
	}

	return page
}
