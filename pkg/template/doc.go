// Package template defines the public contracts for pod template handling:
// sources, the template document wrapper, the variable set, and the
// placeholder substitution rules. The loader implementation lives under
// internal/template to keep filesystem strategies out of the public API.
package template
