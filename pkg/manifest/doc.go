// Package manifest validates rendered pod manifests before they reach a
// cluster. Parse applies the validation gates in a fixed order (YAML syntax,
// mapping structure, required fields, Pod kind, kata runtime class) and
// returns a typed error for the first gate that fails, so callers can react
// to the category without string matching.
package manifest
