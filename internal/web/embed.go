package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static templates
var assets embed.FS

// subFS serves one directory of the embedded assets.
func subFS(dir string) http.FileSystem {
	sub, err := fs.Sub(assets, dir)
	if err != nil {
		// only reachable with a directory missing from the embed pattern
		panic(err)
	}

	return http.FS(sub)
}
