package template

import (
	"context"
	"io/fs"
)

// Loader resolves a Source into a Template. Implementations live under
// internal/template; this package only defines the contract.
type Loader interface {
	Load(ctx context.Context, src Source) (Template, error)
}

// LoaderOptions configures loader construction.
type LoaderOptions struct {
	// FileSystem serves fs sources. Defaults to nil, in which case fs
	// sources fail with a configuration error.
	FileSystem fs.FS
}

// LoaderOption mutates LoaderOptions.
type LoaderOption func(*LoaderOptions)

// WithFileSystem supplies the fs.FS used to resolve fs sources.
func WithFileSystem(fsys fs.FS) LoaderOption {
	return func(o *LoaderOptions) {
		o.FileSystem = fsys
	}
}

// NewLoaderOptions applies the given options over the defaults.
func NewLoaderOptions(opts ...LoaderOption) LoaderOptions {
	options := LoaderOptions{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&options)
	}
	return options
}
