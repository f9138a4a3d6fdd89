package gamemath

import "math"

// Vec2 represents a 2D vector.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Length returns the magnitude of v.
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// IsZero reports whether both components are exactly zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// ClampToRadius scales v down so its length does not exceed radius.
// Vectors already inside the radius are returned unchanged, so the
// direction is always preserved.
func ClampToRadius(v Vec2, radius float64) Vec2 {
	if radius <= 0 {
		return Vec2{}
	}
	length := v.Length()
	if length <= radius {
		return v
	}
	return v.Scale(radius / length)
}

// Forward returns the unit vector pointing along yaw in the horizontal plane.
func Forward(yaw float64) Vec2 {
	return Vec2{X: math.Cos(yaw), Y: math.Sin(yaw)}
}

// Right returns Forward(yaw) rotated 90 degrees about the vertical axis.
func Right(yaw float64) Vec2 {
	return Vec2{X: math.Cos(yaw + math.Pi/2), Y: math.Sin(yaw + math.Pi/2)}
}

// WrapAngle normalizes an angle to [0, 2*pi).
func WrapAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// AngleDiff returns the signed smallest difference a-b, in (-pi, pi].
func AngleDiff(a, b float64) float64 {
	d := math.Mod(a-b, 2*math.Pi)
	if d > math.Pi {
		d -= 2 * math.Pi
	}
	if d <= -math.Pi {
		d += 2 * math.Pi
	}
	return d
}

// Clamp clamps a value to [min, max].
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
