package preset

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/san-kum/motionkit/internal/physics"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownPreset = errors.New("preset: unknown preset")
	ErrPresetCycle   = errors.New("preset: preset defined by another preset")
)

// Registry resolves preset names to normalized physics sets. It is safe for
// concurrent use.
type Registry struct {
	mu      sync.RWMutex
	presets map[string]*physics.Set
}

// New returns a registry holding the stock presets.
func New() *Registry {
	r := &Registry{presets: make(map[string]*physics.Set, len(builtin))}
	for name, v := range builtin {
		r.presets[name] = builtinSet(v[0], v[1])
	}
	return r
}

// Register adds or replaces a preset. The set is copied.
func (r *Registry) Register(name string, set *physics.Set) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.presets[name] = set.Clone()
}

func (r *Registry) Lookup(name string) (*physics.Set, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	set, ok := r.presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownPreset, name, r.namesLocked())
	}
	return set.Clone(), nil
}

func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.namesLocked()
}

func (r *Registry) namesLocked() []string {
	names := make([]string, 0, len(r.presets))
	for name := range r.presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve normalizes cfg, looking up the preset when cfg names one.
func (r *Registry) Resolve(cfg physics.Config) (*physics.Set, error) {
	if set, ok := physics.Normalize(cfg); ok {
		return set, nil
	}
	p, _ := cfg.(physics.Preset)
	return r.Lookup(string(p))
}

type presetFile struct {
	Presets yaml.Node `yaml:"presets"`
}

// Load registers every preset in a YAML document of the form
//
//	presets:
//	  bouncy: {stiffness: 300, damping: 8}
//	  panel:
//	    open: {stiffness: 200}
//	    close: {stiffness: 120}
//
// Each value may take any physics configuration shape except a preset name.
// Nothing is registered if any entry fails.
func (r *Registry) Load(data []byte) error {
	var file presetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return err
	}
	node := &file.Presets
	if node.Kind == 0 || node.ShortTag() == "!!null" {
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("preset: line %d: presets must be a mapping", node.Line)
	}

	sets := make(map[string]*physics.Set, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		name := node.Content[i].Value
		cfg, err := physics.FromNode(node.Content[i+1])
		if err != nil {
			return fmt.Errorf("preset %s: %w", name, err)
		}
		if _, ok := cfg.(physics.Preset); ok {
			return fmt.Errorf("%w: %s", ErrPresetCycle, name)
		}
		set, _ := physics.Normalize(cfg)
		sets[name] = set
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for name, set := range sets {
		r.presets[name] = set
	}
	return nil
}

// LoadFile returns the stock registry extended with the presets in path.
func LoadFile(path string) (*Registry, error) {
	r := New()
	if err := r.LoadFile(path); err != nil {
		return nil, err
	}
	return r, nil
}

// LoadFile registers the presets in path.
func (r *Registry) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := r.Load(data); err != nil {
		return fmt.Errorf("failed to load presets: %w", err)
	}
	return nil
}

// Clone returns an independent registry with the same presets.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c := &Registry{presets: make(map[string]*physics.Set, len(r.presets))}
	for name, set := range r.presets {
		c.presets[name] = set.Clone()
	}
	return c
}
