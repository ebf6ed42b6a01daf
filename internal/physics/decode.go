package physics

import (
	"bytes"
	"fmt"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

// Files carry physics configuration without a type tag, so the decoders
// pick the shape by probing fields: a mapping holding any of the physics
// field names at its top level is a Single, any other mapping is a Multi
// keyed by configuration name, a string is a Preset and an empty document
// or null is Absent.
//
// Values that are not numbers leave the field absent. Unknown keys are
// ignored. YAML merge keys (<<) are expanded before probing.

// DecodeYAML reads a physics configuration from a YAML document.
func DecodeYAML(data []byte) (Config, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Absent{}, nil
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedConfig, err)
	}
	return FromNode(&doc)
}

// FromNode reads a physics configuration from an already parsed YAML node.
// A nil node is Absent.
func FromNode(node *yaml.Node) (Config, error) {
	node = resolve(node)
	if node == nil {
		return Absent{}, nil
	}

	switch node.Kind {
	case yaml.ScalarNode:
		switch node.ShortTag() {
		case "!!null":
			return Absent{}, nil
		case "!!str":
			return Preset(node.Value), nil
		}
		return nil, fmt.Errorf("%w: line %d: unexpected %s scalar", ErrMalformedConfig, node.Line, node.ShortTag())
	case yaml.MappingNode:
		pairs, err := mappingPairs(node)
		if err != nil {
			return nil, err
		}
		if hasField(pairs) {
			return Single(pairOptions(pairs)), nil
		}
		multi := NewMulti()
		for _, kv := range pairs {
			opts, err := yamlOptions(kv.value)
			if err != nil {
				return nil, err
			}
			multi.With(kv.key, opts)
		}
		return multi, nil
	default:
		return nil, fmt.Errorf("%w: line %d: expected a mapping or a preset name", ErrMalformedConfig, node.Line)
	}
}

// resolve unwraps document and alias nodes. It returns nil for an empty
// document or a zero node.
func resolve(node *yaml.Node) *yaml.Node {
	for node != nil {
		switch node.Kind {
		case 0:
			return nil
		case yaml.DocumentNode:
			if len(node.Content) == 0 {
				return nil
			}
			node = node.Content[0]
		case yaml.AliasNode:
			node = node.Alias
		default:
			return node
		}
	}
	return nil
}

type pair struct {
	key   string
	value *yaml.Node
}

// mappingPairs lists the entries of a mapping with merge keys expanded.
// Explicit keys win over merged ones, and an earlier merged mapping wins
// over a later one.
func mappingPairs(node *yaml.Node) ([]pair, error) {
	explicit := make(map[string]bool)
	for i := 0; i+1 < len(node.Content); i += 2 {
		if !isMergeKey(node.Content[i]) {
			explicit[node.Content[i].Value] = true
		}
	}

	var pairs []pair
	merged := make(map[string]bool)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		if !isMergeKey(key) {
			pairs = append(pairs, pair{key.Value, resolve(val)})
			continue
		}
		sources, err := mergeSources(val)
		if err != nil {
			return nil, err
		}
		for _, src := range sources {
			sub, err := mappingPairs(src)
			if err != nil {
				return nil, err
			}
			for _, kv := range sub {
				if explicit[kv.key] || merged[kv.key] {
					continue
				}
				merged[kv.key] = true
				pairs = append(pairs, kv)
			}
		}
	}
	return pairs, nil
}

func isMergeKey(node *yaml.Node) bool {
	return node.Kind == yaml.ScalarNode && node.ShortTag() == "!!merge"
}

// mergeSources returns the mappings named by a merge key value: one
// mapping or a sequence of mappings.
func mergeSources(val *yaml.Node) ([]*yaml.Node, error) {
	val = resolve(val)
	if val != nil && val.Kind == yaml.MappingNode {
		return []*yaml.Node{val}, nil
	}
	if val == nil || val.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("%w: merge key needs a mapping or a list of mappings", ErrMalformedConfig)
	}
	out := make([]*yaml.Node, 0, len(val.Content))
	for _, item := range val.Content {
		item = resolve(item)
		if item == nil || item.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("%w: line %d: merge list holds a non-mapping", ErrMalformedConfig, val.Line)
		}
		out = append(out, item)
	}
	return out, nil
}

func hasField(pairs []pair) bool {
	for _, kv := range pairs {
		if isField(kv.key) {
			return true
		}
	}
	return false
}

func yamlOptions(node *yaml.Node) (Options, error) {
	if node == nil || node.Kind != yaml.MappingNode {
		return Options{}, nil
	}
	pairs, err := mappingPairs(node)
	if err != nil {
		return Options{}, err
	}
	return pairOptions(pairs), nil
}

func pairOptions(pairs []pair) Options {
	var opts Options
	for _, kv := range pairs {
		val := kv.value
		if !isField(kv.key) || val == nil || val.Kind != yaml.ScalarNode {
			continue
		}
		if val.ShortTag() != "!!int" && val.ShortTag() != "!!float" {
			continue
		}
		var f float64
		if err := val.Decode(&f); err != nil {
			continue
		}
		_ = opts.SetParam(kv.key, f)
	}
	return opts
}

// DecodeJSON reads a physics configuration from a JSON document.
func DecodeJSON(data []byte) (Config, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Absent{}, nil
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: invalid json", ErrMalformedConfig)
	}

	res := gjson.ParseBytes(data)
	switch {
	case res.Type == gjson.Null:
		return Absent{}, nil
	case res.Type == gjson.String:
		return Preset(res.String()), nil
	case res.IsObject():
		if jsonHasField(res) {
			return Single(jsonOptions(res)), nil
		}
		multi := NewMulti()
		res.ForEach(func(key, value gjson.Result) bool {
			multi.With(key.String(), jsonOptions(value))
			return true
		})
		return multi, nil
	default:
		return nil, fmt.Errorf("%w: expected an object or a preset name", ErrMalformedConfig)
	}
}

func jsonHasField(res gjson.Result) bool {
	found := false
	res.ForEach(func(key, _ gjson.Result) bool {
		found = isField(key.String())
		return !found
	})
	return found
}

func jsonOptions(res gjson.Result) Options {
	var opts Options
	if !res.IsObject() {
		return opts
	}
	res.ForEach(func(key, value gjson.Result) bool {
		if isField(key.String()) && value.Type == gjson.Number {
			_ = opts.SetParam(key.String(), value.Float())
		}
		return true
	})
	return opts
}
