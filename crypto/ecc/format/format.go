// Package format converts BabyJubJub affine coordinates between the three
// forms in use: Montgomery (this module's native form), standard twisted
// Edwards (iden3/circom convention) and reduced twisted Edwards a=-1
// (gnark-crypto's convention).
package format

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// scalingFactor relates standard and reduced twisted Edwards coordinates:
// xRTE = xTE * scalingFactor, with scalingFactor^2 = -aTE = -168700.
var scalingFactor fr.Element

func init() {
	scalingFactor.SetString("6360561867910373094066688120553762416144456282423235903351243436111059670888")
}

// FromTEtoRTE converts a point from standard twisted Edwards coordinates to
// reduced twisted Edwards form. Only the x-coordinate is scaled.
func FromTEtoRTE(x, y *big.Int) (*big.Int, *big.Int) {
	var fx fr.Element
	fx.SetBigInt(x)
	fx.Mul(&fx, &scalingFactor)
	return fx.BigInt(new(big.Int)), new(big.Int).Set(y)
}

// FromRTEtoTE converts a point from reduced twisted Edwards coordinates back
// to the standard twisted Edwards form.
func FromRTEtoTE(x, y *big.Int) (*big.Int, *big.Int) {
	var fx, inv fr.Element
	fx.SetBigInt(x)
	inv.Inverse(&scalingFactor)
	fx.Mul(&fx, &inv)
	return fx.BigInt(new(big.Int)), new(big.Int).Set(y)
}

// FromTEtoMont converts a point from standard twisted Edwards coordinates to
// Montgomery form: u = (1+y)/(1-y), v = u/x. The Edwards neutral (0, 1) maps
// to the Montgomery point at infinity, tagged (0, 1); the 2-torsion point
// (0, -1) maps to (0, 0).
func FromTEtoMont(x, y *big.Int) (*big.Int, *big.Int) {
	var fx, fy, one, num, den, u, v fr.Element
	fx.SetBigInt(x)
	fy.SetBigInt(y)
	one.SetOne()
	den.Sub(&one, &fy)
	if den.IsZero() {
		// Edwards neutral -> point at infinity
		return big.NewInt(0), big.NewInt(1)
	}
	if fx.IsZero() {
		// (0, -1) -> the 2-torsion point
		return big.NewInt(0), big.NewInt(0)
	}
	num.Add(&one, &fy)
	den.Inverse(&den)
	u.Mul(&num, &den)
	v.Inverse(&fx)
	v.Mul(&v, &u)
	return u.BigInt(new(big.Int)), v.BigInt(new(big.Int))
}

// FromMontToTE converts a point from Montgomery form to standard twisted
// Edwards coordinates: x = u/v, y = (u-1)/(u+1). The infinity tag (0, 1)
// maps to the Edwards neutral (0, 1) and the 2-torsion point (0, 0) maps to
// (0, -1). Points with u = -1 are outside the prime subgroup and are not
// supported.
func FromMontToTE(u, v *big.Int) (*big.Int, *big.Int) {
	var fu, fv, one, x, y, den fr.Element
	fu.SetBigInt(u)
	fv.SetBigInt(v)
	one.SetOne()
	if fu.IsZero() && fv.IsOne() {
		return big.NewInt(0), big.NewInt(1)
	}
	if fu.IsZero() && fv.IsZero() {
		y.Neg(&one)
		return big.NewInt(0), y.BigInt(new(big.Int))
	}
	x.Inverse(&fv)
	x.Mul(&x, &fu)
	den.Add(&fu, &one)
	den.Inverse(&den)
	y.Sub(&fu, &one)
	y.Mul(&y, &den)
	return x.BigInt(new(big.Int)), y.BigInt(new(big.Int))
}

// FromMontToRTE composes FromMontToTE and FromTEtoRTE.
func FromMontToRTE(u, v *big.Int) (*big.Int, *big.Int) {
	return FromTEtoRTE(FromMontToTE(u, v))
}

// FromRTEtoMont composes FromRTEtoTE and FromTEtoMont.
func FromRTEtoMont(x, y *big.Int) (*big.Int, *big.Int) {
	return FromTEtoMont(FromRTEtoTE(x, y))
}
