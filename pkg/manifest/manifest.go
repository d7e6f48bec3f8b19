package manifest

import (
	"fmt"

	"gopkg.in/yaml.v3"
	sigsyaml "sigs.k8s.io/yaml"
)

const (
	// KindPod is the only object kind the validator accepts.
	KindPod = "Pod"

	// RuntimeClassKata is the runtime class every sandboxed pod must declare.
	RuntimeClassKata = "kata"
)

// RequiredFields lists the top-level keys a pod manifest must carry, in the
// order they are checked. The first absent field aborts validation.
var RequiredFields = [...]string{"apiVersion", "kind", "metadata", "spec"}

// Manifest is a pod manifest that has passed every validation gate. The
// generic document is always populated; the typed summary backing the
// accessors is best-effort and yields zero values for fields whose YAML
// types do not match the usual pod shape.
type Manifest struct {
	doc     map[string]any
	summary podSummary
}

type podSummary struct {
	APIVersion string      `json:"apiVersion"`
	Kind       string      `json:"kind"`
	Metadata   podMetadata `json:"metadata"`
}

type podMetadata struct {
	Name      string            `json:"name"`
	Namespace string            `json:"namespace"`
	Labels    map[string]string `json:"labels"`
}

// Parse validates content as a sandboxed pod manifest and wraps it in a
// Manifest. Gates run in order and the first failure wins: SyntaxError,
// StructureError, MissingFieldError, KindError, RuntimeClassError.
func Parse(content string) (Manifest, error) {
	var root any
	if err := yaml.Unmarshal([]byte(content), &root); err != nil {
		return Manifest{}, SyntaxError{Err: err}
	}

	doc, err := mappingRoot(root)
	if err != nil {
		return Manifest{}, err
	}

	for _, field := range RequiredFields {
		if _, ok := doc[field]; !ok {
			return Manifest{}, MissingFieldError{Field: field}
		}
	}

	if kind, ok := doc["kind"].(string); !ok || kind != KindPod {
		return Manifest{}, KindError{Kind: fmt.Sprintf("%v", doc["kind"])}
	}

	if rc := runtimeClass(doc); rc != RuntimeClassKata {
		return Manifest{}, RuntimeClassError{RuntimeClass: rc}
	}

	m := Manifest{doc: doc}
	// Accessor metadata is a convenience; a shape mismatch (say, numeric
	// labels) must not reject a manifest the gates already accepted.
	_ = sigsyaml.Unmarshal([]byte(content), &m.summary)
	return m, nil
}

// Validate runs the same gates as Parse and reports the first failure.
func Validate(content string) error {
	_, err := Parse(content)
	return err
}

func mappingRoot(root any) (map[string]any, error) {
	if root == nil {
		return nil, StructureError{Reason: "empty document"}
	}
	switch doc := root.(type) {
	case map[string]any:
		return doc, nil
	case map[any]any:
		// yaml.v3 decodes a mapping with any non-string key into this
		// form; it is still a mapping.
		return stringKeyed(doc), nil
	}
	return nil, StructureError{Reason: "document is not a mapping"}
}

// stringKeyed converts an any-keyed mapping to string keys. Non-string keys
// take their fmt form, so they never collide with the pod fields the gates
// look up.
func stringKeyed(m map[any]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		key, ok := k.(string)
		if !ok {
			key = fmt.Sprintf("%v", k)
		}
		out[key] = v
	}
	return out
}

// runtimeClass extracts spec.runtimeClassName, tolerating a spec that is not
// a mapping or a runtime class that is not a string. Both read as "".
func runtimeClass(doc map[string]any) string {
	var spec map[string]any
	switch s := doc["spec"].(type) {
	case map[string]any:
		spec = s
	case map[any]any:
		spec = stringKeyed(s)
	default:
		return ""
	}
	rc, _ := spec["runtimeClassName"].(string)
	return rc
}

// Name returns metadata.name, or "" when absent or not a string.
func (m Manifest) Name() string {
	return m.summary.Metadata.Name
}

// Namespace returns metadata.namespace, or "" when absent or not a string.
func (m Manifest) Namespace() string {
	return m.summary.Metadata.Namespace
}

// Labels returns a copy of metadata.labels. Mutating the result does not
// affect the manifest.
func (m Manifest) Labels() map[string]string {
	if len(m.summary.Metadata.Labels) == 0 {
		return nil
	}
	labels := make(map[string]string, len(m.summary.Metadata.Labels))
	for k, v := range m.summary.Metadata.Labels {
		labels[k] = v
	}
	return labels
}

// RuntimeClassName returns spec.runtimeClassName. For any Manifest produced
// by Parse this is RuntimeClassKata.
func (m Manifest) RuntimeClassName() string {
	return runtimeClass(m.doc)
}

// Doc returns the generic document mapping. The map shares structure with
// the Manifest; treat it as read-only.
func (m Manifest) Doc() map[string]any {
	return m.doc
}
