// Package preset resolves named physics presets.
//
// A [physics.Preset] configuration is left unresolved by the normalizer;
// [Registry.Resolve] looks the name up instead. The registry starts with the
// stock presets (default, gentle, wobbly, stiff, slow, molasses) and can be
// extended from YAML with [Registry.Load] or [LoadFile].
package preset
