package physics

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// DefaultName is the entry name used for absent and single configurations.
const DefaultName = "default"

// Set maps configuration names to fully populated Params, keeping the order
// in which names were added.
type Set struct {
	names  []string
	params map[string]Params
}

func NewSet() *Set {
	return &Set{params: make(map[string]Params)}
}

// Put stores p under name. Existing names keep their position.
func (s *Set) Put(name string, p Params) {
	if s.params == nil {
		s.params = make(map[string]Params)
	}
	if _, ok := s.params[name]; !ok {
		s.names = append(s.names, name)
	}
	s.params[name] = p
}

func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.names)
}

func (s *Set) Names() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

func (s *Set) Get(name string) (Params, bool) {
	if s == nil {
		return Params{}, false
	}
	p, ok := s.params[name]
	return p, ok
}

func (s *Set) Default() (Params, bool) {
	return s.Get(DefaultName)
}

func (s *Set) Each(fn func(name string, p Params)) {
	if s == nil {
		return
	}
	for _, name := range s.names {
		fn(name, s.params[name])
	}
}

func (s *Set) Map() map[string]Params {
	if s == nil {
		return nil
	}
	out := make(map[string]Params, len(s.params))
	for k, v := range s.params {
		out[k] = v
	}
	return out
}

func (s *Set) Clone() *Set {
	if s == nil {
		return nil
	}
	return &Set{names: s.Names(), params: s.Map()}
}

// MarshalJSON writes the set as an object with keys in insertion order.
func (s *Set) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range s.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(s.params[name])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (s *Set) MarshalYAML() (any, error) {
	if s == nil {
		return nil, nil
	}
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, name := range s.names {
		var val yaml.Node
		if err := val.Encode(s.params[name]); err != nil {
			return nil, err
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name},
			&val,
		)
	}
	return node, nil
}

// Normalize expands cfg into a Set with every field populated from the
// library defaults. It returns false for a Preset, which the caller has to
// resolve some other way; every other input yields a fresh Set.
//
// An empty Multi produces an empty Set, not a "default" entry.
func Normalize(cfg Config) (*Set, bool) {
	set := NewSet()

	switch c := cfg.(type) {
	case nil, Absent:
		set.Put(DefaultName, DefaultParams())
	case Preset:
		return nil, false
	case Single:
		set.Put(DefaultName, Options(c).Apply(DefaultParams()))
	case *Multi:
		if c != nil {
			for _, e := range c.entries {
				set.Put(e.Name, e.Options.Apply(DefaultParams()))
			}
		}
	}

	return set, true
}
