package manifest

import "fmt"

// SyntaxError reports content that is not parseable YAML.
type SyntaxError struct {
	Err error
}

func (e SyntaxError) Error() string {
	return fmt.Sprintf("manifest: invalid yaml: %v", e.Err)
}

func (e SyntaxError) Unwrap() error {
	return e.Err
}

// StructureError reports a document whose root is not a mapping.
type StructureError struct {
	Reason string
}

func (e StructureError) Error() string {
	return "manifest: " + e.Reason
}

// MissingFieldError reports the first required top-level field the document
// lacks.
type MissingFieldError struct {
	Field string
}

func (e MissingFieldError) Error() string {
	return fmt.Sprintf("manifest: missing required field %q", e.Field)
}

// KindError reports an object kind other than Pod. Kind holds the rendered
// form of whatever the document declared, including non-string values.
type KindError struct {
	Kind string
}

func (e KindError) Error() string {
	return fmt.Sprintf("manifest: kind must be %q, got %q", KindPod, e.Kind)
}

// RuntimeClassError reports a pod that does not declare the kata runtime
// class. RuntimeClass is "" when spec.runtimeClassName is absent or not a
// string.
type RuntimeClassError struct {
	RuntimeClass string
}

func (e RuntimeClassError) Error() string {
	return fmt.Sprintf("manifest: runtimeClassName must be %q for sandboxed execution, got %q", RuntimeClassKata, e.RuntimeClass)
}
