package config

import (
	"fmt"

	"github.com/san-kum/motionkit/internal/mover"
	"github.com/san-kum/motionkit/internal/physics"
	"github.com/san-kum/motionkit/internal/preset"
)

// Scene is the resolved setup of a component: its physics configurations
// and the initial state of all its movers.
type Scene struct {
	Physics *physics.Set
	State   mover.Bag
	Movers  map[string]mover.Names
	Order   []string
}

// Build resolves the physics section against reg and seeds every mover. A
// nil reg means the stock presets. The config's preset file is added to a
// copy of reg; reg itself is not changed.
func (c *Config) Build(reg *preset.Registry) (*Scene, error) {
	if reg == nil {
		reg = preset.New()
	} else {
		reg = reg.Clone()
	}
	if path := c.PresetsPath(); path != "" {
		if err := reg.LoadFile(path); err != nil {
			return nil, err
		}
	}

	pcfg, err := c.PhysicsConfig()
	if err != nil {
		return nil, err
	}
	set, err := reg.Resolve(pcfg)
	if err != nil {
		return nil, err
	}

	scene := &Scene{
		Physics: set,
		State:   make(mover.Bag),
		Movers:  make(map[string]mover.Names, len(c.Movers)),
	}
	for i, m := range c.Movers {
		if m.Name == "" {
			return nil, fmt.Errorf("%w: movers[%d]", ErrMissingName, i)
		}
		if _, dup := scene.Movers[m.Name]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateMover, m.Name)
		}
		bag, err := m.State()
		if err != nil {
			return nil, err
		}
		for key := range bag {
			if _, clash := scene.State[key]; clash {
				return nil, fmt.Errorf("%w: %s (state key %s)", ErrDuplicateMover, m.Name, key)
			}
		}
		bag.MergeInto(scene.State)
		scene.Movers[m.Name] = mover.StateNames(m.Name)
		scene.Order = append(scene.Order, m.Name)
	}
	return scene, nil
}

// State builds the state bag for this mover.
func (m MoverConfig) State() (mover.Bag, error) {
	switch m.Kind {
	case KindNumber, "":
		st, err := initialState(m, toNumber)
		if err != nil {
			return nil, err
		}
		return mover.NumberState(m.Name, st), nil
	case KindPoint2D:
		st, err := initialState(m, toPoint2D)
		if err != nil {
			return nil, err
		}
		return mover.Point2DState(m.Name, st), nil
	case KindPoint3D:
		st, err := initialState(m, toPoint3D)
		if err != nil {
			return nil, err
		}
		return mover.Point3DState(m.Name, st), nil
	default:
		return nil, fmt.Errorf("%w: %s (mover %s)", ErrUnknownKind, m.Kind, m.Name)
	}
}

func initialState[T any](m MoverConfig, conv func([]float64) (T, error)) (*mover.InitialState[T], error) {
	st := &mover.InitialState[T]{
		IsMoving:       m.Moving,
		MoveConfigName: m.Config,
		MoveConfigs:    m.Configs,
	}
	if m.Mode != "" {
		st.MoveMode = mover.Ptr(mover.Mode(m.Mode))
	}
	if m.Value != nil {
		v, err := conv(m.Value)
		if err != nil {
			return nil, fmt.Errorf("mover %s: value: %w", m.Name, err)
		}
		st.Value = &v
	}
	if m.Goal != nil {
		v, err := conv(m.Goal)
		if err != nil {
			return nil, fmt.Errorf("mover %s: goal: %w", m.Name, err)
		}
		st.ValueGoal = &v
	}
	return st, nil
}

func toNumber(v []float64) (float64, error) {
	if len(v) != 1 {
		return 0, fmt.Errorf("%w: want 1 number, got %d", ErrBadValue, len(v))
	}
	return v[0], nil
}

func toPoint2D(v []float64) (mover.Point2D, error) {
	if len(v) != 2 {
		return mover.Point2D{}, fmt.Errorf("%w: want 2 numbers, got %d", ErrBadValue, len(v))
	}
	return mover.Point2D{X: v[0], Y: v[1]}, nil
}

func toPoint3D(v []float64) (mover.Point3D, error) {
	if len(v) != 3 {
		return mover.Point3D{}, fmt.Errorf("%w: want 3 numbers, got %d", ErrBadValue, len(v))
	}
	return mover.Point3D{X: v[0], Y: v[1], Z: v[2]}, nil
}

// UnknownModes lists the movers whose move mode is not one of the known
// tags, in mover order.
func (s *Scene) UnknownModes() []string {
	var out []string
	for _, name := range s.Order {
		mode, ok := mover.Get[mover.Mode](s.State, s.Movers[name].MoveMode)
		if ok && !mode.Known() {
			out = append(out, name)
		}
	}
	return out
}
