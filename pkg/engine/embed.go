package engine

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.yaml
var embeddedTemplates embed.FS

// StockTemplateName is the path of the built-in kata pod template inside
// TemplatesFS. It is the default source for engines constructed without an
// explicit template.
const StockTemplateName = "templates/kata-pod.yaml"

// TemplatesFS exposes the embedded template bundle so callers can render the
// stock pod template without shipping files next to their binary.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
