package physics

import (
	"fmt"
	"slices"
)

const (
	DefaultMass      = 1.0
	DefaultStiffness = 100.0
	DefaultDamping   = 10.0
	DefaultFriction  = 0.0
)

// FieldNames lists the physics fields in canonical order.
var FieldNames = []string{"mass", "stiffness", "damping", "friction"}

// Params is a fully populated set of spring parameters.
type Params struct {
	Mass      float64 `json:"mass" yaml:"mass"`
	Stiffness float64 `json:"stiffness" yaml:"stiffness"`
	Damping   float64 `json:"damping" yaml:"damping"`
	Friction  float64 `json:"friction" yaml:"friction"`
}

func DefaultParams() Params {
	return Params{
		Mass:      DefaultMass,
		Stiffness: DefaultStiffness,
		Damping:   DefaultDamping,
		Friction:  DefaultFriction,
	}
}

func (p Params) GetParams() map[string]float64 {
	return map[string]float64{
		"mass":      p.Mass,
		"stiffness": p.Stiffness,
		"damping":   p.Damping,
		"friction":  p.Friction,
	}
}

// Options is a partial Params. A nil field is absent and keeps whatever
// value it is applied over.
type Options struct {
	Mass      *float64 `json:"mass,omitempty" yaml:"mass,omitempty"`
	Stiffness *float64 `json:"stiffness,omitempty" yaml:"stiffness,omitempty"`
	Damping   *float64 `json:"damping,omitempty" yaml:"damping,omitempty"`
	Friction  *float64 `json:"friction,omitempty" yaml:"friction,omitempty"`
}

// Float returns a pointer to v, for building Options literals.
func Float(v float64) *float64 {
	return &v
}

// Apply overlays the present fields of o onto base.
func (o Options) Apply(base Params) Params {
	if o.Mass != nil {
		base.Mass = *o.Mass
	}
	if o.Stiffness != nil {
		base.Stiffness = *o.Stiffness
	}
	if o.Damping != nil {
		base.Damping = *o.Damping
	}
	if o.Friction != nil {
		base.Friction = *o.Friction
	}
	return base
}

func (o *Options) SetParam(name string, value float64) error {
	switch name {
	case "mass":
		o.Mass = Float(value)
	case "stiffness":
		o.Stiffness = Float(value)
	case "damping":
		o.Damping = Float(value)
	case "friction":
		o.Friction = Float(value)
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}

// clone copies the pointed-to values so the result shares nothing with o.
func (o Options) clone() Options {
	var c Options
	if o.Mass != nil {
		c.Mass = Float(*o.Mass)
	}
	if o.Stiffness != nil {
		c.Stiffness = Float(*o.Stiffness)
	}
	if o.Damping != nil {
		c.Damping = Float(*o.Damping)
	}
	if o.Friction != nil {
		c.Friction = Float(*o.Friction)
	}
	return c
}

func isField(name string) bool {
	return slices.Contains(FieldNames, name)
}
