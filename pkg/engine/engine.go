// Package engine coordinates the pod template pipeline: load a template
// (embedded stock template by default), substitute variables, validate the
// rendered manifest, and optionally persist it. It applies sensible defaults
// while remaining open to dependency injection for advanced callers.
package engine

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	internalLoader "github.com/godel-labs/go-podgen/internal/template/loader"
	"github.com/godel-labs/go-podgen/pkg/manifest"
	pkgtemplate "github.com/godel-labs/go-podgen/pkg/template"
)

// Option customises the engine configuration.
type Option func(*Engine)

// WithLoader injects a custom template loader.
func WithLoader(loader pkgtemplate.Loader) Option {
	return func(e *Engine) {
		e.loader = loader
	}
}

// WithSource sets the template source the engine is bound to.
func WithSource(src pkgtemplate.Source) Option {
	return func(e *Engine) {
		e.source = src
	}
}

// WithTemplatePath binds the engine to a template file on disk. Shorthand
// for WithSource(template.SourceFromFile(path)).
func WithTemplatePath(path string) Option {
	return func(e *Engine) {
		e.source = pkgtemplate.SourceFromFile(path)
	}
}

// WithFileSystem supplies the fs.FS used to resolve fs sources. Pass nil to
// disable the embedded default bundle.
func WithFileSystem(fsys fs.FS) Option {
	return func(e *Engine) {
		e.fsys = fsys
		e.fsysSpecified = true
	}
}

// Engine renders and validates pod manifests from a single template source.
// The template text is cached after the first load and only re-read by an
// explicit Reload, so one Engine instance is bound to one template body.
// An Engine is not safe for concurrent use; give each goroutine its own
// instance and share the rendered output instead.
type Engine struct {
	loader        pkgtemplate.Loader
	source        pkgtemplate.Source
	fsys          fs.FS
	fsysSpecified bool

	cached *pkgtemplate.Template
}

// New constructs an Engine applying any provided options. Missing
// dependencies are initialised with the built-ins (embedded stock template,
// filesystem loader) so callers can start with a single constructor call.
func New(options ...Option) *Engine {
	e := &Engine{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}
	e.applyDefaults()
	return e
}

func (e *Engine) applyDefaults() {
	if e.source == nil {
		e.source = pkgtemplate.SourceFromFS(StockTemplateName)
	}
	if e.fsys == nil && !e.fsysSpecified {
		e.fsys = TemplatesFS()
	}
	if e.loader == nil {
		e.loader = internalLoader.New(pkgtemplate.NewLoaderOptions(
			pkgtemplate.WithFileSystem(e.fsys),
		))
	}
}

// Template returns the engine's template, loading it from the source on
// first use and from cache afterwards.
func (e *Engine) Template(ctx context.Context) (pkgtemplate.Template, error) {
	if ctx == nil {
		return pkgtemplate.Template{}, errors.New("engine: context is required")
	}
	if e.cached != nil {
		return *e.cached, nil
	}
	return e.load(ctx)
}

// Reload discards the cached template and reads the source again. Use it
// when the underlying template file changed after the first render.
func (e *Engine) Reload(ctx context.Context) (pkgtemplate.Template, error) {
	if ctx == nil {
		return pkgtemplate.Template{}, errors.New("engine: context is required")
	}
	e.cached = nil
	return e.load(ctx)
}

func (e *Engine) load(ctx context.Context) (pkgtemplate.Template, error) {
	tpl, err := e.loader.Load(ctx, e.source)
	if err != nil {
		return pkgtemplate.Template{}, fmt.Errorf("engine: load template: %w", err)
	}
	e.cached = &tpl
	return tpl, nil
}

// Render substitutes the variable set into the template and returns the
// rendered text. Placeholders without a corresponding variable fail with
// template.MissingVariablesError naming every missing key.
func (e *Engine) Render(ctx context.Context, vars pkgtemplate.Variables) (string, error) {
	return e.RenderValues(ctx, vars.Map())
}

// RenderValues renders from a raw substitution mapping. It serves custom
// templates whose placeholders go beyond the standard variable set.
func (e *Engine) RenderValues(ctx context.Context, values map[string]string) (string, error) {
	tpl, err := e.Template(ctx)
	if err != nil {
		return "", err
	}

	rendered, err := tpl.Render(values)
	if err != nil {
		return "", fmt.Errorf("engine: render template: %w", err)
	}
	return rendered, nil
}

// Validate checks rendered text against the pod manifest gates and returns
// the parsed manifest for introspection.
func (e *Engine) Validate(content string) (manifest.Manifest, error) {
	return manifest.Parse(content)
}

// RenderAndValidate composes Render and Validate, propagating whichever
// error occurs first. On success it returns both the rendered text and the
// parsed manifest.
func (e *Engine) RenderAndValidate(ctx context.Context, vars pkgtemplate.Variables) (string, manifest.Manifest, error) {
	rendered, err := e.Render(ctx, vars)
	if err != nil {
		return "", manifest.Manifest{}, err
	}

	m, err := manifest.Parse(rendered)
	if err != nil {
		return "", manifest.Manifest{}, err
	}
	return rendered, m, nil
}

// SaveRendered renders, validates, and writes the rendered text to path,
// overwriting existing content. Nothing is written when rendering or
// validation fails. On success it returns the destination path.
func (e *Engine) SaveRendered(ctx context.Context, vars pkgtemplate.Variables, path string) (string, error) {
	if path == "" {
		return "", errors.New("engine: output path is required")
	}

	rendered, _, err := e.RenderAndValidate(ctx, vars)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(path, []byte(rendered), 0o644); err != nil {
		return "", fmt.Errorf("engine: write manifest: %w", err)
	}
	return path, nil
}
