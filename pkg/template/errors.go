package template

import (
	"fmt"
	"strings"
)

// NotFoundError reports a template location that could not be read.
type NotFoundError struct {
	Location string
	Err      error
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("template: %s: not found", e.Location)
}

func (e NotFoundError) Unwrap() error {
	return e.Err
}

// MissingVariablesError reports placeholders the template references that
// the substitution mapping does not provide. Names is sorted and complete:
// a render failure lists every missing name, not just the first.
type MissingVariablesError struct {
	Names []string
}

func (e MissingVariablesError) Error() string {
	return "template: missing variables: " + strings.Join(e.Names, ", ")
}
