package loader

import (
	"context"
	"errors"
	"io/fs"

	pkgtemplate "github.com/godel-labs/go-podgen/pkg/template"
)

// Loader implements pkgtemplate.Loader by delegating to file or fs.FS
// strategies. Construction helpers live in the top-level podgen package.
type Loader struct {
	fs fs.FS
}

// Ensure the implementation satisfies the public interface.
var _ pkgtemplate.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options pkgtemplate.LoaderOptions) pkgtemplate.Loader {
	return &Loader{
		fs: options.FileSystem,
	}
}

// Load fetches template text from the provided source and wraps it in a
// Template. Unreadable locations surface as pkgtemplate.NotFoundError.
func (l *Loader) Load(ctx context.Context, src pkgtemplate.Source) (pkgtemplate.Template, error) {
	if src == nil {
		return pkgtemplate.Template{}, errors.New("template loader: source is nil")
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case pkgtemplate.SourceKindFile:
		data, err = loadFile(ctx, src.Location())
	case pkgtemplate.SourceKindFS:
		data, err = loadFromFS(ctx, l.fs, src.Location())
	default:
		err = errors.New("template loader: unsupported source kind")
	}
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return pkgtemplate.Template{}, pkgtemplate.NotFoundError{Location: src.Location(), Err: err}
		}
		return pkgtemplate.Template{}, err
	}

	return pkgtemplate.New(src, data)
}
