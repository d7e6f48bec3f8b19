package podgen

import (
	internalLoader "github.com/godel-labs/go-podgen/internal/template/loader"
	pkgtemplate "github.com/godel-labs/go-podgen/pkg/template"
)

// NewLoader constructs a template loader using the internal implementation
// while keeping the concrete type hidden from consumers.
func NewLoader(options ...pkgtemplate.LoaderOption) pkgtemplate.Loader {
	cfg := pkgtemplate.NewLoaderOptions(options...)
	return internalLoader.New(cfg)
}
