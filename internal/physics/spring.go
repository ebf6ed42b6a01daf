package physics

import (
	"fmt"
	"math"

	"github.com/charmbracelet/harmonica"
)

// AngularFrequency is sqrt(k/m).
func (p Params) AngularFrequency() float64 {
	return math.Sqrt(p.Stiffness / p.Mass)
}

// DampingRatio is c / (2*sqrt(k*m)). Below 1 the spring overshoots.
func (p Params) DampingRatio() float64 {
	return p.Damping / (2 * math.Sqrt(p.Stiffness*p.Mass))
}

func (p Params) Validate() error {
	if p.Mass <= 0 || math.IsNaN(p.Mass) || math.IsInf(p.Mass, 0) {
		return fmt.Errorf("%w: mass must be positive, got %v", ErrParameterBounds, p.Mass)
	}
	if p.Stiffness <= 0 || math.IsNaN(p.Stiffness) || math.IsInf(p.Stiffness, 0) {
		return fmt.Errorf("%w: stiffness must be positive, got %v", ErrParameterBounds, p.Stiffness)
	}
	if p.Damping < 0 || math.IsNaN(p.Damping) || math.IsInf(p.Damping, 0) {
		return fmt.Errorf("%w: damping must be non-negative, got %v", ErrParameterBounds, p.Damping)
	}
	return nil
}

// Spring builds a harmonica spring stepping at fps frames per second.
// Friction has no harmonica counterpart and is not used.
func (p Params) Spring(fps int) (harmonica.Spring, error) {
	if fps <= 0 {
		return harmonica.Spring{}, fmt.Errorf("%w: fps must be positive, got %d", ErrParameterBounds, fps)
	}
	if err := p.Validate(); err != nil {
		return harmonica.Spring{}, err
	}
	return harmonica.NewSpring(harmonica.FPS(fps), p.AngularFrequency(), p.DampingRatio()), nil
}

// StepResponse samples the position of a spring released at 0 towards 1,
// one sample per frame, starting with the initial position.
func StepResponse(p Params, fps, frames int) ([]float64, error) {
	if frames <= 0 {
		return nil, fmt.Errorf("%w: frames must be positive, got %d", ErrParameterBounds, frames)
	}
	spring, err := p.Spring(fps)
	if err != nil {
		return nil, err
	}

	out := make([]float64, 0, frames+1)
	pos, vel := 0.0, 0.0
	out = append(out, pos)
	for i := 0; i < frames; i++ {
		pos, vel = spring.Update(pos, vel, 1.0)
		out = append(out, pos)
	}
	return out, nil
}

// SettleFrame returns the first frame after which every sample stays within
// tol of the target, or -1 if the response never settles.
func SettleFrame(samples []float64, target, tol float64) int {
	settled := -1
	for i := len(samples) - 1; i >= 0; i-- {
		if math.Abs(samples[i]-target) > tol {
			break
		}
		settled = i
	}
	return settled
}
