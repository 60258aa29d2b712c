// Package math3d provides the vector and ray primitives of the path tracer.
//
// Vec3 doubles as a position, a direction and an RGB color; the call site
// decides which. Degenerate input (NaN, Inf, normalizing a zero vector) is
// never checked and propagates into the result.
package math3d

import "math"

// Vec3 represents a 3D vector or an RGB color.
type Vec3 struct {
	X, Y, Z float64
}

// V3 creates a new Vec3.
func V3(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

// Zero3 returns the zero vector.
func Zero3() Vec3 {
	return Vec3{}
}

// Add returns the vector sum a + b.
func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// Sub returns the vector difference a - b.
func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Mul returns the component-wise (Hadamard) product a * b.
// It is used to attenuate a radiance value by a reflectance.
func (a Vec3) Mul(b Vec3) Vec3 {
	return Vec3{a.X * b.X, a.Y * b.Y, a.Z * b.Z}
}

// Scale returns the scalar product a * s.
func (a Vec3) Scale(s float64) Vec3 {
	return Vec3{a.X * s, a.Y * s, a.Z * s}
}

// Div returns the scalar division a / s.
func (a Vec3) Div(s float64) Vec3 {
	return Vec3{a.X / s, a.Y / s, a.Z / s}
}

// Dot returns the dot product a · b.
func (a Vec3) Dot(b Vec3) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the right-handed cross product a × b.
// Operand order matters: a.Cross(b) == b.Cross(a).Negate().
func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Len returns the length (magnitude) of the vector.
func (a Vec3) Len() float64 {
	return math.Sqrt(a.X*a.X + a.Y*a.Y + a.Z*a.Z)
}

// LenSq returns the squared length (faster, no sqrt).
func (a Vec3) LenSq() float64 {
	return a.X*a.X + a.Y*a.Y + a.Z*a.Z
}

// Normalize returns the unit vector in the same direction.
// The zero vector has no direction and yields NaN components.
func (a Vec3) Normalize() Vec3 {
	return a.Scale(1 / a.Len())
}

// NormalizeInPlace scales v to unit length and returns v so calls can be
// chained. Same precondition as Normalize.
func (v *Vec3) NormalizeInPlace() *Vec3 {
	*v = v.Normalize()
	return v
}

// Negate returns the negated vector.
func (a Vec3) Negate() Vec3 {
	return Vec3{-a.X, -a.Y, -a.Z}
}

// Lerp returns the linear interpolation between a and b by t.
func (a Vec3) Lerp(b Vec3, t float64) Vec3 {
	return Vec3{
		a.X + (b.X-a.X)*t,
		a.Y + (b.Y-a.Y)*t,
		a.Z + (b.Z-a.Z)*t,
	}
}

// Distance returns the distance between two points.
func (a Vec3) Distance(b Vec3) float64 {
	return a.Sub(b).Len()
}

// Reflect returns the reflection of a around normal n.
func (a Vec3) Reflect(n Vec3) Vec3 {
	return a.Sub(n.Scale(2 * a.Dot(n)))
}

// Max3 returns the largest component. For a color this is the
// maximum reflectance used for Russian roulette.
func (a Vec3) Max3() float64 {
	return math.Max(a.X, math.Max(a.Y, a.Z))
}

// Luminance returns the Rec. 601 luma of an RGB color.
func (a Vec3) Luminance() float64 {
	return 0.299*a.X + 0.587*a.Y + 0.114*a.Z
}

// OrthonormalBasis returns u and v such that (u, v, a) is a right-handed
// orthonormal frame. a must already be unit length.
func (a Vec3) OrthonormalBasis() (u, v Vec3) {
	helper := Vec3{1, 0, 0}
	if math.Abs(a.X) > 0.1 {
		helper = Vec3{0, 1, 0}
	}
	u = helper.Cross(a).Normalize()
	v = a.Cross(u)
	return u, v
}
