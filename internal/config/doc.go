// Package config loads scene files: the physics configuration of one
// component and the movers it animates.
//
//	physics: gentle
//	presets: presets.yaml
//	movers:
//	  - name: opacity
//	    goal: 1
//	  - name: offset
//	    kind: point2d
//	    value: [0, 40]
//
// [Config.Build] resolves the physics section and seeds the state bag.
package config
