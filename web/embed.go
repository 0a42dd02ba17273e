package web

import (
	"embed"
	"io/fs"
)

//go:embed static
var static embed.FS

// Assets returns the embedded client application rooted at the static
// directory.
func Assets() (fs.FS, error) {
	return fs.Sub(static, "static")
}
