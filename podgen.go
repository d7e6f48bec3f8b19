// Package podgen renders Kubernetes pod manifests for Kata-sandboxed agent
// workloads. A template with {{NAME}} placeholders is substituted from a
// variable set, and the rendered document is validated against the
// structural rules a sandboxed pod must satisfy before it may be applied.
//
// The root package re-exports the common types and offers one-shot helpers;
// pkg/engine, pkg/template, pkg/manifest, and pkg/fragment carry the full
// contracts for callers that need more control.
package podgen

import (
	"context"

	"github.com/godel-labs/go-podgen/pkg/engine"
	"github.com/godel-labs/go-podgen/pkg/fragment"
	"github.com/godel-labs/go-podgen/pkg/manifest"
	pkgtemplate "github.com/godel-labs/go-podgen/pkg/template"
)

// Variables is the substitution set for the stock pod template; alias
// exported via the root package for convenience.
type Variables = pkgtemplate.Variables

// VariableOption customises a Variables value during construction.
type VariableOption = pkgtemplate.VariableOption

// Manifest is a pod manifest that has passed validation.
type Manifest = manifest.Manifest

// EnvVar aliases fragment.EnvVar for callers building environment fragments.
type EnvVar = fragment.EnvVar

// Mount aliases fragment.Mount for callers building volume mount fragments.
type Mount = fragment.Mount

// Volume aliases fragment.Volume for callers building volume fragments.
type Volume = fragment.Volume

// NewVariables builds a variable set with defaults applied; see
// template.NewVariables.
func NewVariables(agentID string, opts ...VariableOption) Variables {
	return pkgtemplate.NewVariables(agentID, opts...)
}

// NewEngine exposes the engine constructor from the top-level module.
func NewEngine(options ...engine.Option) *engine.Engine {
	return engine.New(options...)
}

// Render substitutes the variable set into the stock template (or the
// template selected via options) and returns the rendered text. It is the
// simplest entry point for callers that just want manifest text.
func Render(ctx context.Context, vars Variables, options ...engine.Option) (string, error) {
	eng := engine.New(options...)
	return eng.Render(ctx, vars)
}

// RenderAndValidate renders and then validates, returning the rendered text
// together with the parsed manifest.
func RenderAndValidate(ctx context.Context, vars Variables, options ...engine.Option) (string, Manifest, error) {
	eng := engine.New(options...)
	return eng.RenderAndValidate(ctx, vars)
}

// SaveRendered renders, validates, and writes the manifest to path. Nothing
// is written when rendering or validation fails.
func SaveRendered(ctx context.Context, vars Variables, path string, options ...engine.Option) (string, error) {
	eng := engine.New(options...)
	return eng.SaveRendered(ctx, vars, path)
}

// Validate checks manifest text against the pod gates and returns the parsed
// manifest for introspection.
func Validate(content string) (Manifest, error) {
	return manifest.Parse(content)
}
