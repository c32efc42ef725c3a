// Package templates holds the embedded project template and the engine that
// materializes it into a new project directory.
package templates

import (
	"embed"
	"io/fs"
)

// templateDir is the embedded template root.
const templateDir = "template"

//go:embed all:template
var templateFS embed.FS

// Root returns the embedded template tree, rooted at the template directory.
func Root() fs.FS {
	sub, err := fs.Sub(templateFS, templateDir)
	if err != nil {
		// templateDir is a valid, embedded path.
		panic(err)
	}
	return sub
}
