package montgomery

import "github.com/consensys/gnark/frontend"

// XAdd returns the differential sum p+q given diff = p-q, all in x-only
// projective form. The formula is undefined when p = q; the ladder never
// produces that case because the difference of its running pair is the base
// point at every step.
func (c *Curve) XAdd(p, q, diff XZPoint) XZPoint {
	api := c.api
	v1 := api.Mul(api.Sub(q.X, q.Z), api.Add(p.X, p.Z))
	v2 := api.Mul(api.Add(q.X, q.Z), api.Sub(p.X, p.Z))
	sum := api.Add(v1, v2)
	sub := api.Sub(v1, v2)
	return XZPoint{
		X: api.Mul(diff.Z, sum, sum),
		Z: api.Mul(diff.X, sub, sub),
	}
}

// XDbl returns 2p in x-only projective form. Doubling the identity keeps
// Z = 0, so no special case is needed.
func (c *Curve) XDbl(p XZPoint) XZPoint {
	api := c.api
	sum := api.Add(p.X, p.Z)
	sub := api.Sub(p.X, p.Z)
	v1 := api.Mul(sum, sum)
	v2 := api.Mul(sub, sub)
	diff := api.Sub(v1, v2)
	v3 := api.Add(api.Mul(c.params.APlus2Over4, diff), v2)
	return XZPoint{
		X: api.Mul(v1, v2),
		Z: api.Mul(diff, v3),
	}
}

// XAddAffine returns the affine x-coordinate of p+q given the affine
// x-coordinates of p, q and their difference p-q. All three points must be
// finite, pairwise distinct and outside the 2-torsion subgroup; otherwise
// the division denominator vanishes and the constraint system becomes
// unsatisfiable.
func (c *Curve) XAddAffine(xp, xq, xdiff frontend.Variable) frontend.Variable {
	api := c.api
	n := api.Sub(api.Mul(xp, xq), 1)
	d := api.Sub(xp, xq)
	return api.DivUnchecked(api.Mul(n, n), api.Mul(xdiff, d, d))
}

// LadderAffine runs the binary Montgomery ladder over affine x-coordinates,
// composing XAddAffine and XDblAffine with one division per step instead of
// the projective formulas of Ladder. The scalar is given MSB first with the
// leading 1 bit stripped: the running pair is seeded (P, 2P), so at
// termination r0 and r1 are the affine x-coordinates of k*P and (k+1)*P.
// Every intermediate point inherits the preconditions of the affine
// primitives; the projective Ladder has no such restrictions.
func (c *Curve) LadderAffine(bits []frontend.Variable, px frontend.Variable) (r0, r1 frontend.Variable) {
	api := c.api
	r0 = px
	r1 = c.XDblAffine(px)
	for _, b := range bits {
		sum := c.XAddAffine(r1, r0, px)
		dbl0 := c.XDblAffine(r0)
		dbl1 := c.XDblAffine(r1)
		r0 = api.Select(b, sum, dbl0)
		r1 = api.Select(b, dbl1, sum)
	}
	return r0, r1
}

// XDblAffine returns the affine x-coordinate of 2p given the affine
// x-coordinate of p. The point must be finite with 2p finite as well (p not
// in the 2-torsion subgroup); otherwise the division denominator vanishes
// and the constraint system becomes unsatisfiable.
func (c *Curve) XDblAffine(xp frontend.Variable) frontend.Variable {
	api := c.api
	x2 := api.Mul(xp, xp)
	n := api.Sub(x2, 1)
	d := api.Mul(4, xp, api.Add(x2, api.Mul(c.params.A, xp), 1))
	return api.DivUnchecked(api.Mul(n, n), d)
}
