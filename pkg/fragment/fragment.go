// Package fragment renders the indented YAML list fragments spliced into the
// stock pod template. Each builder targets one placeholder: EnvVars for
// ENV_VARS, VolumeMounts for VOLUME_MOUNTS, Volumes for VOLUMES. The
// indentation is fixed to match the splice points of the stock template, so
// the fragments are not general-purpose YAML emitters.
package fragment

import (
	"fmt"
	"sort"
	"strings"
)

// EmptyList is the inline fragment for "no entries". It completes the
// template's "key:" prefix to an empty YAML list, leading space included.
const EmptyList = " []"

// EnvVar is a single container environment variable.
type EnvVar struct {
	Name  string
	Value string
}

// EnvVars renders container environment variables in input order, each entry
// prefixed by a blank line. Values are emitted double-quoted so
// numeric-looking strings stay strings. An empty input renders the empty
// list.
func EnvVars(vars []EnvVar) string {
	if len(vars) == 0 {
		return EmptyList
	}

	lines := make([]string, 0, len(vars)*3)
	for _, v := range vars {
		lines = append(lines,
			"",
			"    - name: "+v.Name,
			fmt.Sprintf("      value: %q", v.Value),
		)
	}
	return strings.Join(lines, "\n")
}

// EnvVarsFromMap renders environment variables sorted by name, for callers
// holding an unordered mapping.
func EnvVarsFromMap(vars map[string]string) string {
	out := make([]EnvVar, 0, len(vars))
	for _, name := range sortedKeys(vars) {
		out = append(out, EnvVar{Name: name, Value: vars[name]})
	}
	return EnvVars(out)
}

// Mount is a single container volume mount.
type Mount struct {
	Name string
	Path string
}

// VolumeMounts renders container volume mounts in input order, each entry
// prefixed by a blank line. An empty input renders the empty list.
func VolumeMounts(mounts []Mount) string {
	if len(mounts) == 0 {
		return EmptyList
	}

	lines := make([]string, 0, len(mounts)*3)
	for _, m := range mounts {
		lines = append(lines,
			"",
			"    - name: "+m.Name,
			"      mountPath: "+m.Path,
		)
	}
	return strings.Join(lines, "\n")
}

// VolumeMountsFromMap renders volume mounts sorted by name, for callers
// holding an unordered mapping of name to mount path.
func VolumeMountsFromMap(mounts map[string]string) string {
	out := make([]Mount, 0, len(mounts))
	for _, name := range sortedKeys(mounts) {
		out = append(out, Mount{Name: name, Path: mounts[name]})
	}
	return VolumeMounts(out)
}

// Volume is a single pod volume: a name plus its source settings.
type Volume struct {
	Name     string
	Settings []Setting
}

// Setting is one key under a volume. Block wins over Value when non-nil and
// renders "key:" followed by its entries, one nesting level deep; a non-nil
// empty Block renders the bare "key:" line. Otherwise the setting renders as
// a scalar "key: value" line.
type Setting struct {
	Key   string
	Value any
	Block []Entry
}

// Entry is a key/value line inside a Setting block.
type Entry struct {
	Key   string
	Value any
}

// Scalar builds a scalar setting.
func Scalar(key string, value any) Setting {
	return Setting{Key: key, Value: value}
}

// Nested builds a block setting. Calling it without entries yields a bare
// "key:" line, which is how sources like emptyDir are declared.
func Nested(key string, entries ...Entry) Setting {
	return Setting{Key: key, Block: append([]Entry{}, entries...)}
}

// ConfigMapVolume builds a volume sourced from the named ConfigMap.
func ConfigMapVolume(name, configMapName string) Volume {
	return Volume{
		Name:     name,
		Settings: []Setting{Nested("configMap", Entry{Key: "name", Value: configMapName})},
	}
}

// EmptyDirVolume builds a volume backed by node-local scratch space.
func EmptyDirVolume(name string) Volume {
	return Volume{
		Name:     name,
		Settings: []Setting{Nested("emptyDir")},
	}
}

// Volumes renders pod volumes in input order, each entry prefixed by a blank
// line. Scalar settings and one level of nested blocks are supported; an
// empty input renders the empty list.
func Volumes(volumes []Volume) string {
	if len(volumes) == 0 {
		return EmptyList
	}

	var lines []string
	for _, vol := range volumes {
		lines = append(lines, "", "  - name: "+vol.Name)
		for _, s := range vol.Settings {
			if s.Block != nil {
				lines = append(lines, "    "+s.Key+":")
				for _, e := range s.Block {
					lines = append(lines, fmt.Sprintf("      %s: %v", e.Key, e.Value))
				}
				continue
			}
			lines = append(lines, fmt.Sprintf("    %s: %v", s.Key, s.Value))
		}
	}
	return strings.Join(lines, "\n")
}

// VolumesFromMap renders volumes sorted by name from a generic mapping of
// volume name to source settings. Values that are themselves mappings become
// blocks with their entries sorted by key; everything else renders as a
// scalar.
func VolumesFromMap(volumes map[string]map[string]any) string {
	if len(volumes) == 0 {
		return EmptyList
	}

	names := make([]string, 0, len(volumes))
	for name := range volumes {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]Volume, 0, len(names))
	for _, name := range names {
		spec := volumes[name]
		keys := make([]string, 0, len(spec))
		for key := range spec {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		settings := make([]Setting, 0, len(keys))
		for _, key := range keys {
			block, ok := spec[key].(map[string]any)
			if !ok {
				settings = append(settings, Scalar(key, spec[key]))
				continue
			}

			subkeys := make([]string, 0, len(block))
			for sub := range block {
				subkeys = append(subkeys, sub)
			}
			sort.Strings(subkeys)

			entries := make([]Entry, 0, len(subkeys))
			for _, sub := range subkeys {
				entries = append(entries, Entry{Key: sub, Value: block[sub]})
			}
			settings = append(settings, Nested(key, entries...))
		}
		out = append(out, Volume{Name: name, Settings: settings})
	}
	return Volumes(out)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
