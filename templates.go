package podgen

import (
	"io/fs"

	"github.com/godel-labs/go-podgen/pkg/engine"
)

// EmbeddedTemplates exposes the built-in pod template bundle so callers can
// reuse or extend it without importing the engine package directly.
func EmbeddedTemplates() fs.FS {
	return engine.TemplatesFS()
}
