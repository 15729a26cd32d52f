package montgomery

import "github.com/consensys/gnark/frontend"

// Point is an affine point with an explicit infinity flag. Z is 1 for a
// finite point and 0 for the identity, whose coordinates are pinned to
// (0, 1) so that equality of points is plain equality of the three fields.
// The pin is unambiguous because (0, 1) does not satisfy the curve equation,
// while the real 2-torsion point (0, 0) does.
type Point struct {
	X, Y, Z frontend.Variable
}

// XZPoint is the x-only projective representation used inside the ladder:
// the affine x-coordinate is X/Z when Z != 0, and any (X:0) is the identity.
type XZPoint struct {
	X, Z frontend.Variable
}

// Infinity returns the canonical identity point.
func Infinity() Point {
	return Point{X: 0, Y: 1, Z: 0}
}

// AssertIsOnCurve constrains p to be a well-formed point: Z is boolean, the
// finite branch satisfies B*y^2 = x^3 + A*x^2 + x and the identity branch
// carries the pinned (0, 1) coordinates.
func (c *Curve) AssertIsOnCurve(p Point) {
	api := c.api
	api.AssertIsBoolean(p.Z)
	x2 := api.Mul(p.X, p.X)
	rhs := api.Add(api.Mul(x2, p.X), api.Mul(c.params.A, x2), p.X)
	lhs := api.Mul(c.params.B, p.Y, p.Y)
	api.AssertIsEqual(api.Mul(p.Z, api.Sub(lhs, rhs)), 0)
	notZ := api.Sub(1, p.Z)
	api.AssertIsEqual(api.Mul(notZ, p.X), 0)
	api.AssertIsEqual(api.Mul(notZ, api.Sub(p.Y, 1)), 0)
}

// AssertIsEqual constrains p and q to be the same point.
func (c *Curve) AssertIsEqual(p, q Point) {
	c.api.AssertIsEqual(p.X, q.X)
	c.api.AssertIsEqual(p.Y, q.Y)
	c.api.AssertIsEqual(p.Z, q.Z)
}

// Select returns p if b is 1 and q otherwise. b must be boolean.
func (c *Curve) Select(b frontend.Variable, p, q Point) Point {
	return Point{
		X: c.api.Select(b, p.X, q.X),
		Y: c.api.Select(b, p.Y, q.Y),
		Z: c.api.Select(b, p.Z, q.Z),
	}
}

// Neg returns -p. The identity negates to itself, keeping its pinned
// coordinates.
func (c *Curve) Neg(p Point) Point {
	return Point{
		X: p.X,
		Y: c.api.Select(p.Z, c.api.Neg(p.Y), p.Y),
		Z: p.Z,
	}
}

// IsInfinity returns a boolean variable that is 1 when p is the identity.
func (c *Curve) IsInfinity(p Point) frontend.Variable {
	return c.api.Sub(1, p.Z)
}

func (c *Curve) selectXZ(b frontend.Variable, p, q XZPoint) XZPoint {
	return XZPoint{
		X: c.api.Select(b, p.X, q.X),
		Z: c.api.Select(b, p.Z, q.Z),
	}
}
