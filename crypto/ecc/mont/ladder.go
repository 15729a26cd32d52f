package mont

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// xzPoint is the projective x-only representation used by the Montgomery
// ladder: the affine x-coordinate is X/Z when Z != 0, and the point at
// infinity is any (X:0) with X != 0. The y-coordinate is dropped throughout
// the ladder and recovered at the end (see recoverY).
type xzPoint struct {
	X, Z fr.Element
}

// setIdentity sets p to the canonical projective identity (1:0).
func (p *xzPoint) setIdentity() *xzPoint {
	p.X.SetOne()
	p.Z.SetZero()
	return p
}

// setAffine sets p to the projection (x:1) of an affine x-coordinate.
func (p *xzPoint) setAffine(x *fr.Element) *xzPoint {
	p.X.Set(x)
	p.Z.SetOne()
	return p
}

// isInfinity reports whether p is the point at infinity.
func (p *xzPoint) isInfinity() bool {
	return p.Z.IsZero()
}

// affineX returns the affine x-coordinate X/Z. It fails with
// ErrPointAtInfinity on the identity; callers must check isInfinity first.
func (p *xzPoint) affineX() (fr.Element, error) {
	var x fr.Element
	if p.isInfinity() {
		return x, ErrPointAtInfinity
	}
	x.Inverse(&p.Z)
	x.Mul(&x, &p.X)
	return x, nil
}

// xAdd sets p to the differential sum a+b, given diff = a-b. The formula is
// undefined when a = b; the ladder never produces that case because the
// difference of its two running values is the base point at every step. If
// either input is the identity (Z=0), the result carries the other input's
// x-coordinate.
func (p *xzPoint) xAdd(a, b, diff *xzPoint) *xzPoint {
	var v0, v1, v2, v3, v4, x, z fr.Element
	v0.Add(&a.X, &a.Z)
	v1.Sub(&b.X, &b.Z)
	v1.Mul(&v1, &v0)
	v0.Sub(&a.X, &a.Z)
	v2.Add(&b.X, &b.Z)
	v2.Mul(&v2, &v0)
	v3.Add(&v1, &v2)
	v3.Square(&v3)
	v4.Sub(&v1, &v2)
	v4.Square(&v4)
	x.Mul(&diff.Z, &v3)
	z.Mul(&diff.X, &v4)
	p.X.Set(&x)
	p.Z.Set(&z)
	return p
}

// xDbl sets p to 2a. Doubling the identity yields the identity: Z=0
// propagates without error.
func (p *xzPoint) xDbl(a *xzPoint, aPlus2Over4 *fr.Element) *xzPoint {
	var v1, v2, v3, x, z fr.Element
	v1.Add(&a.X, &a.Z)
	v1.Square(&v1)
	v2.Sub(&a.X, &a.Z)
	v2.Square(&v2)
	x.Mul(&v1, &v2)
	v1.Sub(&v1, &v2)
	v3.Mul(aPlus2Over4, &v1)
	v3.Add(&v3, &v2)
	z.Mul(&v1, &v3)
	p.X.Set(&x)
	p.Z.Set(&z)
	return p
}

// ladder runs the binary Montgomery ladder over the fixed scalar width,
// consuming the scalar MSB-first. The running pair starts at
// (identity, base) and their difference is the base point at every
// iteration, so xAdd's precondition holds structurally. It returns
// (r0, r1) = (k*P, (k+1)*P) in projective x-only form.
func ladder(k *big.Int, baseX *fr.Element, aPlus2Over4 *fr.Element, nbits int) (r0, r1 xzPoint) {
	var base xzPoint
	base.setAffine(baseX)
	r0.setIdentity()
	r1.Set(&base)
	var sum, dbl xzPoint
	for i := nbits - 1; i >= 0; i-- {
		if k.Bit(i) == 1 {
			r0, r1 = r1, r0
		}
		sum.xAdd(&r0, &r1, &base)
		dbl.xDbl(&r0, aPlus2Over4)
		r0, r1 = dbl, sum
		if k.Bit(i) == 1 {
			r0, r1 = r1, r0
		}
	}
	return r0, r1
}

// Set copies a into p.
func (p *xzPoint) Set(a *xzPoint) *xzPoint {
	p.X.Set(&a.X)
	p.Z.Set(&a.Z)
	return p
}

// recoverY reconstructs the full projective point (X:Y:Z) of q = k*P using
// the Okeya-Sakurai algorithm, given the affine base point P = (px, py) and
// the ladder's two terminal values q = k*P and pq = (k+1)*P. The formula is
// undefined when q is the identity, -P, or P itself is the identity; callers
// handle those cases before further affine arithmetic.
func recoverY(params *CurveParams, px, py *fr.Element, q, pq *xzPoint) (x, y, z fr.Element) {
	var v1, v2, v3, v4 fr.Element
	v1.Mul(px, &q.Z)
	v2.Add(&q.X, &v1)
	v3.Sub(&q.X, &v1)
	v3.Square(&v3)
	v3.Mul(&v3, &pq.X)
	v1.Double(&params.A)
	v1.Mul(&v1, &q.Z)
	v2.Add(&v2, &v1)
	v4.Mul(px, &q.X)
	v4.Add(&v4, &q.Z)
	v2.Mul(&v2, &v4)
	v1.Mul(&v1, &q.Z)
	v2.Sub(&v2, &v1)
	v2.Mul(&v2, &pq.Z)
	y.Sub(&v2, &v3)
	v1.Double(&params.B)
	v1.Mul(&v1, py)
	v1.Mul(&v1, &q.Z)
	v1.Mul(&v1, &pq.Z)
	x.Mul(&v1, &q.X)
	z.Mul(&v1, &q.Z)
	return x, y, z
}
