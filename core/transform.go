package core

import (
	"errors"
	"math"
)

// ErrDegenerateLookAt is returned when a view basis cannot be formed because
// the eye coincides with the center, or the up vector is collinear with the
// view direction.
var ErrDegenerateLookAt = errors.New("degenerate look-at geometry")

// Mat4 is a 4×4 matrix in row-major order.
type Mat4 [16]float64

// Mat3 is a 3×3 matrix in row-major order.
type Mat3 [9]float64

// Identity4 returns the 4×4 identity matrix.
func Identity4() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mul returns m × other.
func (m Mat4) Mul(other Mat4) Mat4 {
	var out Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			sum := 0.0
			for k := 0; k < 4; k++ {
				sum += m[row*4+k] * other[k*4+col]
			}
			out[row*4+col] = sum
		}
	}
	return out
}

// TransformPoint applies the matrix to a point (w = 1).
func (m Mat4) TransformPoint(p Vec3) Vec3 {
	return Vec3{
		X: m[0]*p.X + m[1]*p.Y + m[2]*p.Z + m[3],
		Y: m[4]*p.X + m[5]*p.Y + m[6]*p.Z + m[7],
		Z: m[8]*p.X + m[9]*p.Y + m[10]*p.Z + m[11],
	}
}

// MulVec applies the 3×3 matrix to v.
func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		X: m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		Y: m[3]*v.X + m[4]*v.Y + m[5]*v.Z,
		Z: m[6]*v.X + m[7]*v.Y + m[8]*v.Z,
	}
}

// LookAt builds a right-handed view matrix from an eye position, a point to
// look at, and an up hint. Precondition: up must not be collinear with the
// view direction; violations return ErrDegenerateLookAt instead of a matrix
// full of NaNs.
func LookAt(eye, center, up Vec3) (Mat4, error) {
	forward, err := center.Sub(eye).Normalize()
	if err != nil {
		return Mat4{}, ErrDegenerateLookAt
	}
	side, err := forward.Cross(up).Normalize()
	if err != nil {
		return Mat4{}, ErrDegenerateLookAt
	}
	// Recompute up so the basis is orthonormal even for an imprecise hint.
	trueUp := side.Cross(forward)

	rotation := Mat4{
		side.X, side.Y, side.Z, 0,
		trueUp.X, trueUp.Y, trueUp.Z, 0,
		-forward.X, -forward.Y, -forward.Z, 0,
		0, 0, 0, 1,
	}
	translation := Identity4()
	translation[3] = -eye.X
	translation[7] = -eye.Y
	translation[11] = -eye.Z

	return rotation.Mul(translation), nil
}

// AxisAngleRotation returns the rotation matrix for a counterclockwise
// rotation of angle radians about axis (Rodrigues form). The axis need not
// be pre-normalized, but a zero axis is rejected.
func AxisAngleRotation(axis Vec3, angle float64) (Mat3, error) {
	k, err := axis.Normalize()
	if err != nil {
		return Mat3{}, err
	}

	c := math.Cos(angle)
	s := math.Sin(angle)
	t := 1 - c

	return Mat3{
		c + k.X*k.X*t, k.X*k.Y*t - k.Z*s, k.X*k.Z*t + k.Y*s,
		k.Y*k.X*t + k.Z*s, c + k.Y*k.Y*t, k.Y*k.Z*t - k.X*s,
		k.Z*k.X*t - k.Y*s, k.Z*k.Y*t + k.X*s, c + k.Z*k.Z*t,
	}, nil
}
