package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/san-kum/motionkit/internal/physics"
	"gopkg.in/yaml.v3"
)

const (
	KindNumber  = "number"
	KindPoint2D = "point2d"
	KindPoint3D = "point3d"

	DefaultKind = KindNumber
)

var (
	ErrUnknownKind    = errors.New("config: unknown mover kind")
	ErrDuplicateMover = errors.New("config: duplicate mover name")
	ErrBadValue       = errors.New("config: value does not match mover kind")
	ErrMissingName    = errors.New("config: mover without a name")
)

// Config describes the motion setup of one component.
type Config struct {
	Physics yaml.Node     `yaml:"physics"`
	Presets string        `yaml:"presets"`
	Movers  []MoverConfig `yaml:"movers"`

	dir string
}

// MoverConfig seeds one mover. Value and Goal are a number or a list of
// two or three numbers depending on Kind.
type MoverConfig struct {
	Name    string                     `yaml:"name"`
	Kind    string                     `yaml:"kind"`
	Value   []float64                  `yaml:"value,flow"`
	Goal    []float64                  `yaml:"goal,flow"`
	Moving  *bool                      `yaml:"moving"`
	Mode    string                     `yaml:"mode"`
	Config  string                     `yaml:"config"`
	Configs map[string]physics.Options `yaml:"configs"`
}

// UnmarshalYAML accepts scalar values as one-element lists.
func (m *MoverConfig) UnmarshalYAML(node *yaml.Node) error {
	type raw struct {
		Name    string                     `yaml:"name"`
		Kind    string                     `yaml:"kind"`
		Value   yaml.Node                  `yaml:"value"`
		Goal    yaml.Node                  `yaml:"goal"`
		Moving  *bool                      `yaml:"moving"`
		Mode    string                     `yaml:"mode"`
		Config  string                     `yaml:"config"`
		Configs map[string]physics.Options `yaml:"configs"`
	}
	var r raw
	if err := node.Decode(&r); err != nil {
		return err
	}
	value, err := decodeVector(&r.Value)
	if err != nil {
		return fmt.Errorf("mover %s: value: %w", r.Name, err)
	}
	goal, err := decodeVector(&r.Goal)
	if err != nil {
		return fmt.Errorf("mover %s: goal: %w", r.Name, err)
	}
	*m = MoverConfig{
		Name:    r.Name,
		Kind:    r.Kind,
		Value:   value,
		Goal:    goal,
		Moving:  r.Moving,
		Mode:    r.Mode,
		Config:  r.Config,
		Configs: r.Configs,
	}
	return nil
}

func decodeVector(node *yaml.Node) ([]float64, error) {
	switch {
	case node.Kind == 0 || node.ShortTag() == "!!null":
		return nil, nil
	case node.Kind == yaml.ScalarNode:
		var f float64
		if err := node.Decode(&f); err != nil {
			return nil, err
		}
		return []float64{f}, nil
	default:
		var v []float64
		if err := node.Decode(&v); err != nil {
			return nil, err
		}
		return v, nil
	}
}

func DefaultConfig() *Config {
	return &Config{}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}
	cfg.dir = filepath.Dir(path)
	return cfg, nil
}

func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	for i := range cfg.Movers {
		if cfg.Movers[i].Kind == "" {
			cfg.Movers[i].Kind = DefaultKind
		}
	}
	return cfg, nil
}

// PhysicsConfig returns the physics section as a typed configuration.
func (c *Config) PhysicsConfig() (physics.Config, error) {
	return physics.FromNode(&c.Physics)
}

// PresetsPath returns the preset file path relative to the config file, or
// "" when none is set.
func (c *Config) PresetsPath() string {
	if c.Presets == "" || filepath.IsAbs(c.Presets) {
		return c.Presets
	}
	return filepath.Join(c.dir, c.Presets)
}
