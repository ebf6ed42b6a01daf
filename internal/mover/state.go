package mover

import "github.com/san-kum/motionkit/internal/physics"

// InitialState seeds a mover. Nil pointers fall back to defaults.
//
// MoveConfigName is only copied when non-empty and MoveConfigs only when
// non-nil; an empty name counts as unset.
type InitialState[T any] struct {
	Value          *T
	ValueGoal      *T
	IsMoving       *bool
	MoveMode       *Mode
	MoveConfigName string
	MoveConfigs    map[string]physics.Options
}

// Bag is the flat state of one or more movers, keyed by derived name.
type Bag map[string]any

// MergeInto copies every entry of b into dst, overwriting existing keys.
func (b Bag) MergeInto(dst map[string]any) {
	for k, v := range b {
		dst[k] = v
	}
}

// Get reads key from the bag as a T.
func Get[T any](b Bag, key string) (T, bool) {
	v, ok := b[key].(T)
	return v, ok
}

// StateMaker builds the state bag for the mover called name. A nil initial
// state is the same as an empty one.
type StateMaker[T any] func(name string, initial *InitialState[T]) Bag

// MakeStateMaker returns a StateMaker for values of type T. getDefault is
// called once for each of value and goal that the initial state leaves
// unset, so it should return a value that shares nothing with earlier ones.
func MakeStateMaker[T any](getDefault func() T) StateMaker[T] {
	if getDefault == nil {
		panic("mover: nil default value func")
	}

	return func(name string, initial *InitialState[T]) Bag {
		if initial == nil {
			initial = &InitialState[T]{}
		}
		names := StateNames(name)
		bag := make(Bag, 6)

		if initial.Value != nil {
			bag[names.Value] = *initial.Value
		} else {
			bag[names.Value] = getDefault()
		}
		if initial.ValueGoal != nil {
			bag[names.ValueGoal] = *initial.ValueGoal
		} else {
			bag[names.ValueGoal] = getDefault()
		}
		if initial.IsMoving != nil {
			bag[names.IsMoving] = *initial.IsMoving
		} else {
			bag[names.IsMoving] = false
		}
		if initial.MoveMode != nil {
			bag[names.MoveMode] = *initial.MoveMode
		} else {
			bag[names.MoveMode] = DefaultMode
		}

		if initial.MoveConfigName != "" {
			bag[names.PhysicsConfigName] = initial.MoveConfigName
		}
		if initial.MoveConfigs != nil {
			bag[names.PhysicsConfigs] = initial.MoveConfigs
		}

		return bag
	}
}
