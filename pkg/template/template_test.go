package template_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/godel-labs/go-podgen/pkg/template"
)

func TestNew_RequiresSource(t *testing.T) {
	if _, err := template.New(nil, []byte("kind: Pod")); err == nil {
		t.Fatalf("expected error for nil source")
	}
}

func TestNew_AllowsEmptyText(t *testing.T) {
	tpl, err := template.New(template.SourceFromFile("empty.yaml"), nil)
	if err != nil {
		t.Fatalf("new template: %v", err)
	}
	if got := tpl.Text(); got != "" {
		t.Fatalf("expected empty text, got %q", got)
	}
	if got := tpl.Placeholders(); len(got) != 0 {
		t.Fatalf("expected no placeholders, got %v", got)
	}
}

func TestTemplate_RawDefensiveCopy(t *testing.T) {
	raw := []byte("name: {{AGENT_ID}}")
	tpl := template.MustNew(template.SourceFromFile("pod.yaml"), raw)

	raw[0] = 'X'
	clone := tpl.Raw()
	clone[1] = 'Y'

	if got := tpl.Text(); got != "name: {{AGENT_ID}}" {
		t.Fatalf("template text mutated: %q", got)
	}
}

func TestTemplate_Placeholders(t *testing.T) {
	text := "a: {{NAMESPACE}}\nb: {{AGENT_ID}}\nc: \"{{AGENT_ID}}\"\nd: {{not a token}}\ne: {{IMAGE}}"
	tpl := template.MustNew(template.SourceFromFile("pod.yaml"), []byte(text))

	want := []string{"AGENT_ID", "IMAGE", "NAMESPACE"}
	if diff := cmp.Diff(want, tpl.Placeholders()); diff != "" {
		t.Fatalf("placeholders mismatch (-want +got):\n%s", diff)
	}
}

func TestTemplate_Render(t *testing.T) {
	tpl := template.MustNew(template.SourceFromFile("pod.yaml"),
		[]byte("name: agent-{{AGENT_ID}}\nnamespace: {{NAMESPACE}}\nid: \"{{AGENT_ID}}\""))

	got, err := tpl.Render(map[string]string{
		"AGENT_ID":  "agent-001",
		"NAMESPACE": "godel-system",
		"UNUSED":    "ignored",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	want := "name: agent-agent-001\nnamespace: godel-system\nid: \"agent-001\""
	if got != want {
		t.Fatalf("rendered output mismatch:\nwant %q\ngot  %q", want, got)
	}
}

func TestTemplate_Render_MissingVariables(t *testing.T) {
	tpl := template.MustNew(template.SourceFromFile("pod.yaml"),
		[]byte("a: {{NAMESPACE}}\nb: {{AGENT_ID}}\nc: {{IMAGE}}"))

	_, err := tpl.Render(map[string]string{"NAMESPACE": "default"})
	if err == nil {
		t.Fatalf("expected missing variables error")
	}

	var missing template.MissingVariablesError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingVariablesError, got %T: %v", err, err)
	}
	want := []string{"AGENT_ID", "IMAGE"}
	if diff := cmp.Diff(want, missing.Names); diff != "" {
		t.Fatalf("missing names mismatch (-want +got):\n%s", diff)
	}
}

func TestTemplate_Render_ValueContainingTokenStaysLiteral(t *testing.T) {
	tpl := template.MustNew(template.SourceFromFile("pod.yaml"), []byte("a: {{FIRST}}\nb: {{SECOND}}"))

	got, err := tpl.Render(map[string]string{
		"FIRST":  "{{SECOND}}",
		"SECOND": "two",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	want := "a: {{SECOND}}\nb: two"
	if got != want {
		t.Fatalf("substituted value was rescanned:\nwant %q\ngot  %q", want, got)
	}
}

func TestTemplate_Render_MalformedTokensPassThrough(t *testing.T) {
	text := "a: {{ SPACED }}\nb: {{dash-ed}}\nc: {single}\nd: {{OK}}"
	tpl := template.MustNew(template.SourceFromFile("pod.yaml"), []byte(text))

	got, err := tpl.Render(map[string]string{"OK": "yes"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	want := "a: {{ SPACED }}\nb: {{dash-ed}}\nc: {single}\nd: yes"
	if got != want {
		t.Fatalf("malformed tokens should pass through unchanged:\nwant %q\ngot  %q", want, got)
	}
}

func TestTemplate_UnicodePlaceholderNames(t *testing.T) {
	tpl := template.MustNew(template.SourceFromFile("pod.yaml"), []byte("a: {{CAFÉ}}\nb: {{OK}}"))

	want := []string{"CAFÉ", "OK"}
	if diff := cmp.Diff(want, tpl.Placeholders()); diff != "" {
		t.Fatalf("placeholders mismatch (-want +got):\n%s", diff)
	}

	_, err := tpl.Render(map[string]string{"OK": "yes"})
	var missing template.MissingVariablesError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingVariablesError, got %T: %v", err, err)
	}
	if diff := cmp.Diff([]string{"CAFÉ"}, missing.Names); diff != "" {
		t.Fatalf("missing names mismatch (-want +got):\n%s", diff)
	}

	got, err := tpl.Render(map[string]string{"CAFÉ": "au lait", "OK": "yes"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if want := "a: au lait\nb: yes"; got != want {
		t.Fatalf("rendered output mismatch:\nwant %q\ngot  %q", want, got)
	}
}

func TestSourceFromFile(t *testing.T) {
	src := template.SourceFromFile("./templates/../templates/pod.yaml")
	if src.Kind() != template.SourceKindFile {
		t.Fatalf("kind mismatch: %s", src.Kind())
	}
	if got := src.Location(); got != "templates/pod.yaml" {
		t.Fatalf("expected cleaned path, got %q", got)
	}
}

func TestSourceFromFS(t *testing.T) {
	src := template.SourceFromFS("templates/kata-pod.yaml")
	if src.Kind() != template.SourceKindFS {
		t.Fatalf("kind mismatch: %s", src.Kind())
	}
	if got := src.Location(); got != "templates/kata-pod.yaml" {
		t.Fatalf("location mismatch: %q", got)
	}
}
