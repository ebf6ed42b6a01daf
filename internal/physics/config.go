package physics

// Config is the user-facing physics configuration. The concrete type says
// which shape it is: Absent, Preset, Single or *Multi.
type Config interface {
	isConfig()
}

// Absent means no configuration was given. A nil Config behaves the same.
type Absent struct{}

// Preset names a configuration that is resolved outside the normalizer.
type Preset string

// Single is one partial configuration, stored under DefaultName.
type Single Options

// NamedOptions is one entry of a Multi configuration.
type NamedOptions struct {
	Name    string
	Options Options
}

// Multi is an ordered set of named partial configurations.
type Multi struct {
	entries []NamedOptions
}

func (Absent) isConfig() {}
func (Preset) isConfig() {}
func (Single) isConfig() {}
func (*Multi) isConfig() {}

func NewMulti() *Multi {
	return &Multi{}
}

// With adds or replaces a named entry. A new name goes to the end; a known
// name keeps its position.
func (m *Multi) With(name string, opts Options) *Multi {
	for i := range m.entries {
		if m.entries[i].Name == name {
			m.entries[i].Options = opts.clone()
			return m
		}
	}
	m.entries = append(m.entries, NamedOptions{Name: name, Options: opts.clone()})
	return m
}

func (m *Multi) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

// Entries returns a copy of the entries in insertion order.
func (m *Multi) Entries() []NamedOptions {
	if m == nil {
		return nil
	}
	out := make([]NamedOptions, len(m.entries))
	for i, e := range m.entries {
		out[i] = NamedOptions{Name: e.Name, Options: e.Options.clone()}
	}
	return out
}
