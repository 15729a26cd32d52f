package montgomery

import "github.com/consensys/gnark/frontend"

// Ladder runs the binary Montgomery ladder over the scalar bits, consuming
// them MSB-first, with one differential addition and two doublings per bit
// so the circuit topology is independent of the scalar. The running pair
// starts at (identity, base), keeping their difference equal to the base
// point at every step, and ends at (k*P, (k+1)*P) in x-only projective form.
// px is the affine x-coordinate of the base point and the bits must be
// boolean; ScalarMul constrains both.
func (c *Curve) Ladder(bits []frontend.Variable, px frontend.Variable) (r0, r1 XZPoint) {
	base := XZPoint{X: px, Z: 1}
	r0 = XZPoint{X: 1, Z: 0}
	r1 = base
	for _, b := range bits {
		sum := c.XAdd(r0, r1, base)
		dbl0 := c.XDbl(r0)
		dbl1 := c.XDbl(r1)
		r0 = c.selectXZ(b, sum, dbl0)
		r1 = c.selectXZ(b, dbl1, sum)
	}
	return r0, r1
}

// RecoverY reconstructs the full projective point (X:Y:Z) of q = k*P with
// the Okeya-Sakurai algorithm, given the affine base point P = (px, py) and
// the ladder's terminal pair q = k*P, pq = (k+1)*P. The output degenerates
// to Z = 0 when q is the identity or pq is; ScalarMulBits masks those cases.
func (c *Curve) RecoverY(px, py frontend.Variable, q, pq XZPoint) (x, y, z frontend.Variable) {
	api := c.api
	v1 := api.Mul(px, q.Z)
	v2 := api.Add(q.X, v1)
	v3 := api.Sub(q.X, v1)
	v3 = api.Mul(v3, v3, pq.X)
	twoA := api.Mul(2, c.params.A)
	v1 = api.Mul(twoA, q.Z)
	v2 = api.Add(v2, v1)
	v4 := api.Add(api.Mul(px, q.X), q.Z)
	v2 = api.Mul(v2, v4)
	v1 = api.Mul(v1, q.Z)
	v2 = api.Mul(api.Sub(v2, v1), pq.Z)
	y = api.Sub(v2, v3)
	v1 = api.Mul(2, c.params.B, py)
	v1 = api.Mul(v1, q.Z, pq.Z)
	x = api.Mul(v1, q.X)
	z = api.Mul(v1, q.Z)
	return x, y, z
}
