package mover

type Point2D struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

type Point3D struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

// Makers for the value types the engine animates.
var (
	NumberState  = MakeStateMaker(func() float64 { return 0 })
	Point2DState = MakeStateMaker(func() Point2D { return Point2D{} })
	Point3DState = MakeStateMaker(func() Point3D { return Point3D{} })
)

// Ptr returns a pointer to v, for filling InitialState literals.
func Ptr[T any](v T) *T {
	return &v
}
