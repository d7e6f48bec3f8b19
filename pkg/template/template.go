package template

import (
	"errors"
	"regexp"
	"sort"
)

// placeholderPattern matches substitution tokens: two opening braces, one or
// more letters, digits, or underscores, two closing braces. Letters and
// digits are the Unicode classes, not ASCII \w, so names like CAFÉ are
// tokens too. Nothing else is recognised: no expressions, no nesting, no
// whitespace.
var placeholderPattern = regexp.MustCompile(`\{\{([\p{L}\p{N}_]+)\}\}`)

// Template wraps raw template text and its origin. The text stays untyped
// until the rendered output is parsed by pkg/manifest; Template itself only
// understands placeholder tokens.
type Template struct {
	source Source
	raw    []byte
}

// New constructs a Template wrapper while validating the source. Empty text
// is legal: it renders to an empty document, which manifest validation
// rejects downstream.
func New(src Source, raw []byte) (Template, error) {
	if src == nil {
		return Template{}, errors.New("template: source is required")
	}
	clone := append([]byte(nil), raw...)
	return Template{source: src, raw: clone}, nil
}

// MustNew panics if the template cannot be created. Useful for tests.
func MustNew(src Source, raw []byte) Template {
	tpl, err := New(src, raw)
	if err != nil {
		panic(err)
	}
	return tpl
}

// Source returns the origin metadata for the template.
func (t Template) Source() Source {
	return t.source
}

// Raw returns a defensive copy of the template text.
func (t Template) Raw() []byte {
	return append([]byte(nil), t.raw...)
}

// Text returns the template text as a string.
func (t Template) Text() string {
	return string(t.raw)
}

// Location returns the string identifier for the origin.
func (t Template) Location() string {
	if t.source == nil {
		return ""
	}
	return t.source.Location()
}

// Placeholders returns the distinct placeholder names referenced by the
// template, sorted. Duplicate occurrences of a token collapse to one entry.
func (t Template) Placeholders() []string {
	matches := placeholderPattern.FindAllSubmatch(t.raw, -1)
	seen := make(map[string]struct{}, len(matches))
	for _, match := range matches {
		seen[string(match[1])] = struct{}{}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render substitutes every placeholder token with its value from the
// supplied mapping. It fails with MissingVariablesError when the template
// references names the mapping does not provide, listing every missing name
// rather than the first. Keys the template never references are ignored.
// Values are spliced in as opaque text and never rescanned for further
// tokens, so the result is independent of any iteration order and a value
// that happens to contain a token literal stays literal.
func (t Template) Render(values map[string]string) (string, error) {
	var missing []string
	for _, name := range t.Placeholders() {
		if _, ok := values[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return "", MissingVariablesError{Names: missing}
	}

	rendered := placeholderPattern.ReplaceAllStringFunc(string(t.raw), func(token string) string {
		name := token[2 : len(token)-2]
		if value, ok := values[name]; ok {
			return value
		}
		return token
	})
	return rendered, nil
}
