package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/motionkit/internal/physics"
)

// ResponsePlot draws a sampled step response with a caption naming the
// configuration and its settle time.
func ResponsePlot(name string, p physics.Params, samples []float64, fps int) string {
	caption := fmt.Sprintf("%s  zeta=%.2f  omega=%.2f", name, p.DampingRatio(), p.AngularFrequency())
	if frame := physics.SettleFrame(samples, 1, 0.01); frame >= 0 && fps > 0 {
		caption += fmt.Sprintf("  settles in %.2fs", float64(frame)/float64(fps))
	} else {
		caption += "  does not settle"
	}

	return asciigraph.Plot(samples,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
	)
}
