package preset

import "github.com/san-kum/motionkit/internal/physics"

// builtin holds stiffness and damping for the stock presets. Mass is 1 and
// friction 0 for all of them.
var builtin = map[string][2]float64{
	"default":  {170, 26},
	"gentle":   {120, 14},
	"wobbly":   {180, 12},
	"stiff":    {210, 20},
	"slow":     {280, 60},
	"molasses": {280, 120},
}

func builtinSet(stiffness, damping float64) *physics.Set {
	set, _ := physics.Normalize(physics.Single{
		Stiffness: physics.Float(stiffness),
		Damping:   physics.Float(damping),
		Friction:  physics.Float(0),
		Mass:      physics.Float(1),
	})
	return set
}
