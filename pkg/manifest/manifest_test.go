package manifest_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/godel-labs/go-podgen/pkg/manifest"
)

const validPod = `apiVersion: v1
kind: Pod
metadata:
  name: godel-agent-agent-001
  namespace: godel-system
  labels:
    app: godel-agent
    agent-id: "agent-001"
spec:
  runtimeClassName: kata
  restartPolicy: Never
  containers:
  - name: agent
    image: godel/agent:latest
`

func TestParse_Valid(t *testing.T) {
	m, err := manifest.Parse(validPod)
	if err != nil {
		t.Fatalf("parse valid manifest: %v", err)
	}

	if got := m.Name(); got != "godel-agent-agent-001" {
		t.Fatalf("name mismatch: %q", got)
	}
	if got := m.Namespace(); got != "godel-system" {
		t.Fatalf("namespace mismatch: %q", got)
	}
	if got := m.RuntimeClassName(); got != manifest.RuntimeClassKata {
		t.Fatalf("runtime class mismatch: %q", got)
	}

	wantLabels := map[string]string{"app": "godel-agent", "agent-id": "agent-001"}
	if diff := cmp.Diff(wantLabels, m.Labels()); diff != "" {
		t.Fatalf("labels mismatch (-want +got):\n%s", diff)
	}

	if _, ok := m.Doc()["spec"]; !ok {
		t.Fatalf("generic document should expose spec")
	}
}

func TestParse_SyntaxError(t *testing.T) {
	_, err := manifest.Parse("kind: Pod\n  bad indent: [unclosed")
	var syntax manifest.SyntaxError
	if !errors.As(err, &syntax) {
		t.Fatalf("expected SyntaxError, got %T: %v", err, err)
	}
	if syntax.Unwrap() == nil {
		t.Fatalf("syntax error should wrap the yaml error")
	}
}

func TestParse_StructureErrors(t *testing.T) {
	cases := []struct {
		name    string
		content string
		reason  string
	}{
		{name: "empty", content: "", reason: "empty document"},
		{name: "null", content: "null\n", reason: "empty document"},
		{name: "scalar", content: "just a string\n", reason: "document is not a mapping"},
		{name: "sequence", content: "- a\n- b\n", reason: "document is not a mapping"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := manifest.Parse(tc.content)
			var structure manifest.StructureError
			if !errors.As(err, &structure) {
				t.Fatalf("expected StructureError, got %T: %v", err, err)
			}
			if structure.Reason != tc.reason {
				t.Fatalf("reason mismatch: want %q got %q", tc.reason, structure.Reason)
			}
		})
	}
}

func TestParse_NonStringKeysStillValidate(t *testing.T) {
	content := `42: answer
apiVersion: v1
kind: Pod
metadata:
  name: godel-agent-agent-001
spec:
  7: lucky
  runtimeClassName: kata
`
	m, err := manifest.Parse(content)
	if err != nil {
		t.Fatalf("mapping with non-string keys must pass the gates: %v", err)
	}
	if got := m.RuntimeClassName(); got != manifest.RuntimeClassKata {
		t.Fatalf("runtime class mismatch: %q", got)
	}
	if _, ok := m.Doc()["42"]; !ok {
		t.Fatalf("non-string key should surface in its rendered form: %#v", m.Doc())
	}
}

func TestParse_MissingFieldReportsFirstOnly(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    string
	}{
		{name: "none of the required fields", content: "foo: bar\n", want: "apiVersion"},
		{name: "kind and spec", content: withoutFields(validPod, "kind", "spec"), want: "kind"},
		{name: "metadata and spec", content: withoutFields(validPod, "metadata", "spec"), want: "metadata"},
		{name: "spec only", content: withoutFields(validPod, "spec"), want: "spec"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := manifest.Parse(tc.content)
			var missing manifest.MissingFieldError
			if !errors.As(err, &missing) {
				t.Fatalf("expected MissingFieldError, got %T: %v", err, err)
			}
			if missing.Field != tc.want {
				t.Fatalf("field mismatch: want %q got %q", tc.want, missing.Field)
			}
		})
	}
}

func TestParse_KindError(t *testing.T) {
	content := strings.Replace(validPod, "kind: Pod", "kind: Deployment", 1)
	_, err := manifest.Parse(content)

	var kind manifest.KindError
	if !errors.As(err, &kind) {
		t.Fatalf("expected KindError, got %T: %v", err, err)
	}
	if kind.Kind != "Deployment" {
		t.Fatalf("kind mismatch: %q", kind.Kind)
	}
}

func TestParse_KindErrorNonString(t *testing.T) {
	content := strings.Replace(validPod, "kind: Pod", "kind: 42", 1)
	_, err := manifest.Parse(content)

	var kind manifest.KindError
	if !errors.As(err, &kind) {
		t.Fatalf("expected KindError, got %T: %v", err, err)
	}
	if kind.Kind != "42" {
		t.Fatalf("kind should render non-string values, got %q", kind.Kind)
	}
}

func TestParse_RuntimeClassErrors(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "wrong class",
			content: strings.Replace(validPod, "runtimeClassName: kata", "runtimeClassName: runc", 1),
			want:    "runc",
		},
		{
			name:    "absent",
			content: strings.Replace(validPod, "  runtimeClassName: kata\n", "", 1),
			want:    "",
		},
		{
			name:    "spec not a mapping",
			content: "apiVersion: v1\nkind: Pod\nmetadata:\n  name: x\nspec: nope\n",
			want:    "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := manifest.Parse(tc.content)
			var rc manifest.RuntimeClassError
			if !errors.As(err, &rc) {
				t.Fatalf("expected RuntimeClassError, got %T: %v", err, err)
			}
			if rc.RuntimeClass != tc.want {
				t.Fatalf("runtime class mismatch: want %q got %q", tc.want, rc.RuntimeClass)
			}
		})
	}
}

func TestParse_SummaryMismatchStillValidates(t *testing.T) {
	content := strings.Replace(validPod, `agent-id: "agent-001"`, "agent-id: 7", 1)
	m, err := manifest.Parse(content)
	if err != nil {
		t.Fatalf("shape mismatch in metadata must not fail validation: %v", err)
	}
	if got := m.RuntimeClassName(); got != manifest.RuntimeClassKata {
		t.Fatalf("runtime class should come from the validated document, got %q", got)
	}
}

func TestValidate(t *testing.T) {
	if err := manifest.Validate(validPod); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if err := manifest.Validate("- not\n- a\n- pod\n"); err == nil {
		t.Fatalf("expected validation failure")
	}
}

func TestLabels_Copy(t *testing.T) {
	m, err := manifest.Parse(validPod)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	labels := m.Labels()
	labels["app"] = "mutated"

	if got := m.Labels()["app"]; got != "godel-agent" {
		t.Fatalf("labels accessor should return a copy, got %q", got)
	}
}

// withoutFields strips top-level blocks from a manifest fixture by filtering
// lines: a dropped field removes its own line plus any indented children.
func withoutFields(content string, drop ...string) string {
	dropSet := make(map[string]struct{}, len(drop))
	for _, field := range drop {
		dropSet[field] = struct{}{}
	}

	var out []string
	skipping := false
	for _, line := range strings.Split(content, "\n") {
		if line != "" && !strings.HasPrefix(line, " ") {
			key, _, _ := strings.Cut(line, ":")
			_, skipping = dropSet[key]
		}
		if !skipping {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}
