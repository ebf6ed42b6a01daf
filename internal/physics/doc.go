// Package physics holds spring parameters and the configuration normalizer.
//
// A physics configuration arrives in one of four shapes, each its own type:
//
//   - [Absent]: nothing given, use the library defaults
//   - [Preset]: a name resolved elsewhere (see package preset)
//   - [Single]: one partial configuration
//   - [Multi]: named partial configurations, in order
//
// [Normalize] turns any of them into a [Set] with every field filled in:
//
//	set, ok := physics.Normalize(physics.Single{Mass: physics.Float(2)})
//	p, _ := set.Default() // {Mass: 2, Stiffness: 100, Damping: 10, Friction: 0}
//
// [DecodeYAML] and [DecodeJSON] pick the shape of untyped documents by
// probing their fields.
//
// # Preview
//
// [Params.Spring] maps a record onto a harmonica spring and [StepResponse]
// samples it, for inspecting a configuration offline.
package physics
