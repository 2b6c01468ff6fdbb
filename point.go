package ink

import "math"

// DefaultPressure is the pressure assigned to samples from input devices
// that do not report force.
const DefaultPressure = 0.5

// Tilt is the stylus tilt reported by pens that support it.
type Tilt struct {
	X, Y float64
}

// Point is one input sample from a pointer or stylus. Points are immutable
// once recorded; they are produced only by the input boundary and consumed
// immediately by the engine.
type Point struct {
	X, Y        float64
	Pressure    float64 // [0, 1]
	TimestampMs uint64
	Tilt        *Tilt   // nil when the device does not report tilt
	Velocity    float64 // 0 when the device does not report velocity
}

// NewPoint creates a sample at (x, y) with the given pressure and timestamp.
func NewPoint(x, y, pressure float64, timestampMs uint64) Point {
	return Point{X: x, Y: y, Pressure: pressure, TimestampMs: timestampMs}
}

// PointAt creates a sample with DefaultPressure, for input devices that do
// not report force.
func PointAt(x, y float64, timestampMs uint64) Point {
	return NewPoint(x, y, DefaultPressure, timestampMs)
}

// Pos returns the position of the sample as a vector.
func (p Point) Pos() Vec {
	return Vec{X: p.X, Y: p.Y}
}

// Vec represents a 2D point or vector.
type Vec struct {
	X, Y float64
}

// V is a convenience function to create a Vec.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vec) Add(w Vec) Vec {
	return Vec{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Vec) Sub(w Vec) Vec {
	return Vec{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec) Mul(s float64) Vec {
	return Vec{X: v.X * s, Y: v.Y * s}
}

// Length returns the length of the vector.
func (v Vec) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Distance returns the distance between two points.
func (v Vec) Distance(w Vec) float64 {
	return v.Sub(w).Length()
}

// Lerp performs linear interpolation between two vectors.
// t=0 returns v, t=1 returns w, intermediate values interpolate.
func (v Vec) Lerp(w Vec, t float64) Vec {
	return Vec{
		X: v.X + (w.X-v.X)*t,
		Y: v.Y + (w.Y-v.Y)*t,
	}
}

// Midpoint returns the point halfway between v and w.
func (v Vec) Midpoint(w Vec) Vec {
	return v.Lerp(w, 0.5)
}
