package http

import (
	"io/fs"
	"net/http"
	"path"
	"strings"
)

// newStaticHandler serves the embedded single-page client. Unknown paths
// fall back to index.html so client-side routes resolve after a refresh.
func newStaticHandler(assets fs.FS) http.Handler {
	fileServer := http.FileServer(http.FS(assets))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(path.Clean(r.URL.Path), "/")
		if name == "" {
			name = "index.html"
		}

		if _, err := fs.Stat(assets, name); err != nil {
			r.URL.Path = "/"
		}

		fileServer.ServeHTTP(w, r)
	})
}
