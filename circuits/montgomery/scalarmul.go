package montgomery

import (
	"math/big"

	"github.com/consensys/gnark/frontend"
)

// ScalarMul returns s*p. The scalar is range-checked to [0, order) and
// decomposed into the fixed ladder width, so two scalars congruent modulo
// the order cannot both satisfy the range check. p must be a well-formed
// point (see AssertIsOnCurve); the identity and the 2-torsion point (0, 0)
// are handled.
func (c *Curve) ScalarMul(p Point, s frontend.Variable) Point {
	api := c.api
	api.AssertIsLessOrEqual(s, new(big.Int).Sub(c.params.Order, big.NewInt(1)))
	lsb := api.ToBinary(s, c.params.NBits)
	bits := make([]frontend.Variable, c.params.NBits)
	for i := range bits {
		bits[i] = lsb[c.params.NBits-1-i]
	}
	return c.ScalarMulBits(p, bits)
}

// ScalarBaseMult returns s*G for the base point generator.
func (c *Curve) ScalarBaseMult(s frontend.Variable) Point {
	return c.ScalarMul(c.Generator(), s)
}

// ScalarMulBits returns k*p for a scalar given as boolean bits, MSB first.
// It runs the x-only ladder, recovers the y-coordinate and then applies the
// same corrections as the native Exponentiate, each as a select over the
// uncorrected result:
//   - (k+1)*p at infinity means k*p = -p
//   - k*p at infinity (k = 0) yields the identity
//   - the 2-torsion base (0, 0) maps to itself for odd k, the identity for even k
//   - the identity base yields the identity
func (c *Curve) ScalarMulBits(p Point, bits []frontend.Variable) Point {
	api := c.api
	for _, b := range bits {
		api.AssertIsBoolean(b)
	}
	r0, r1 := c.Ladder(bits, p.X)
	r0Inf := api.IsZero(r0.Z)
	r1Inf := api.IsZero(r1.Z)
	x, y, z := c.RecoverY(p.X, p.Y, r0, r1)
	// normalization is masked on the degenerate branches, so a vanishing z
	// is replaced by one to keep the division satisfiable
	zSafe := api.Select(api.IsZero(z), 1, z)
	res := Point{
		X: api.DivUnchecked(x, zSafe),
		Y: api.DivUnchecked(y, zSafe),
		Z: 1,
	}
	res = c.Select(r1Inf, Point{X: p.X, Y: api.Neg(p.Y), Z: 1}, res)
	res = c.Select(r0Inf, Infinity(), res)
	isTwoTorsion := api.And(api.IsZero(p.X), api.IsZero(p.Y))
	lsb := bits[len(bits)-1]
	torsionRes := c.Select(lsb, Point{X: 0, Y: 0, Z: 1}, Infinity())
	res = c.Select(isTwoTorsion, torsionRes, res)
	return c.Select(p.Z, res, Infinity())
}
