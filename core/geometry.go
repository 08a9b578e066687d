package core

import (
	"errors"
	"math"
)

// EarthRadiusKm is the mean Earth radius used for all camera geometry
// (kilometres).
const EarthRadiusKm = 6371.0

// KarmanLineAltitudeKm is the altitude of the Karman line. The renderer
// consumes EarthRadiusKm + KarmanLineAltitudeKm as the radius of the
// atmosphere shell.
const KarmanLineAltitudeKm = 100.0

// ErrZeroVector is returned when an operation that requires a direction is
// given the zero vector.
var ErrZeroVector = errors.New("zero-length vector")

// Vec3 is an ECEF-style vector in kilometres.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z}
}

// Sub returns v - other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{X: v.X - other.X, Y: v.Y - other.Y, Z: v.Z - other.Z}
}

// Scale returns v scaled by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Dot returns the dot product of two vectors.
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product v × other.
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Norm returns the Euclidean norm of the vector.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// DistanceTo returns the straight-line distance between two points.
func (v Vec3) DistanceTo(other Vec3) float64 {
	return v.Sub(other).Norm()
}

// Normalize returns v scaled to unit length. The zero vector has no
// direction, so it is rejected with ErrZeroVector rather than silently
// producing NaNs.
func (v Vec3) Normalize() (Vec3, error) {
	n := v.Norm()
	if n == 0 {
		return Vec3{}, ErrZeroVector
	}
	return v.Scale(1 / n), nil
}

// normalizeOr returns v normalized, or fallback when v is the zero vector.
// Call sites using this must be able to name a sensible fallback direction.
func normalizeOr(v, fallback Vec3) Vec3 {
	u, err := v.Normalize()
	if err != nil {
		return fallback
	}
	return u
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
