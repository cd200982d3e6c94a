package scenery

import "math"

// Matrix represents a 2D affine transformation as the 6-element CSS
// matrix [a, b, c, d, e, f], encoding
//
//	| a  c  e |
//	| b  d  f |
//
// which transforms a point as
//
//	x' = a*x + c*y + e
//	y' = b*x + d*y + f
type Matrix [6]float64

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{1, 0, 0, 1, 0, 0}
}

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{1, 0, 0, 1, x, y}
}

// Scale creates a scaling matrix.
func Scale(x, y float64) Matrix {
	return Matrix{x, 0, 0, y, 0, 0}
}

// Rotate creates a rotation matrix (angle in radians).
func Rotate(angle float64) Matrix {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Matrix{cos, sin, -sin, cos, 0, 0}
}

// Skew creates a skew matrix (angles in radians).
func Skew(x, y float64) Matrix {
	return Matrix{1, math.Tan(y), math.Tan(x), 1, 0, 0}
}

// Multiply composes two transforms as m ∘ other: the result applies
// other first, then m. It is pure and returns a new matrix, so nested
// transform stacks can be accumulated without aliasing.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		m[0]*other[0] + m[2]*other[1],
		m[1]*other[0] + m[3]*other[1],
		m[0]*other[2] + m[2]*other[3],
		m[1]*other[2] + m[3]*other[3],
		m[0]*other[4] + m[2]*other[5] + m[4],
		m[1]*other[4] + m[3]*other[5] + m[5],
	}
}

// Apply transforms the point (x, y).
func (m Matrix) Apply(x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}
