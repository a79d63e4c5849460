package config

import (
	"encoding/json"
	"fmt"

	"dario.cat/mergo"
	"github.com/mitchellh/mapstructure"
)

// Layers merges mapping sources left to right, later sources taking
// precedence field by field. When a field holds a nested mapping on both
// sides the merge recurses into it; any other value is replaced outright by
// the later source.
//
// Precedence is a first-class contract every loader depends on: hardcoded
// defaults first, then the environment-independent spec file, then computed
// derived fields, then (for the tenant loader) environment-specific
// overrides.
//
// Null values in a later source never erase earlier fields here; loaders
// that need replace-regardless semantics for a computed key assign it after
// merging.
func Layers(sources ...map[string]any) (map[string]any, error) {
	merged := map[string]any{}
	for _, source := range sources {
		// Copy before merging: mergo links nested source maps into the
		// destination by reference, and a later layer must never mutate an
		// earlier source through that link.
		if err := mergo.Merge(&merged, deepCopy(source), mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge config layers: %w", err)
		}
	}
	return merged, nil
}

func deepCopy(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		if nested, ok := v.(map[string]any); ok {
			out[k] = deepCopy(nested)
			continue
		}
		out[k] = v
	}
	return out
}

// asMap flattens a config record into the generic mapping form used for
// merging, via its JSON field names. Slices and nested records come back as
// plain []any / map[string]any so every layer merges uniformly.
func asMap(record any) (map[string]any, error) {
	data, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("failed to flatten config record: %w", err)
	}

	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to flatten config record: %w", err)
	}
	return m, nil
}

// decode shapes a merged mapping into a typed config record. Field names
// follow the json tags; embedded parent records are squashed so a child
// record decodes as a strict superset of its parent's fields.
func decode(merged map[string]any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		TagName:          "json",
		Squash:           true,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("failed to build config decoder: %w", err)
	}

	if err := decoder.Decode(merged); err != nil {
		return fmt.Errorf("failed to decode config record: %w", err)
	}
	return nil
}
