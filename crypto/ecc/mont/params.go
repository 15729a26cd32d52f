// Package mont implements the BabyJubJub curve in Montgomery form,
// B*y^2 = x^3 + A*x^2 + x over the BN254 scalar field, with x-only
// differential arithmetic (XADD/XDBL), Montgomery-ladder scalar
// multiplication and Okeya-Sakurai y-recovery. It is the native (witness
// side) counterpart of the in-circuit gadgets under circuits/montgomery.
package mont

import (
	"fmt"
	"math/big"
	"sync"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"golang.org/x/crypto/sha3"

	"github.com/vocdoni/montgomery-primitives/log"
)

// generatorHTag seeds the deterministic derivation of the second Pedersen
// generator H. Nobody knows a discrete-log relation between G and H because
// H is obtained by hashing this tag to the curve.
const generatorHTag = "montgomery-primitives: pedersen generator H"

// CurveParams holds the Montgomery curve coefficients, the subgroup order
// and the two commitment generators. Parameters are built once and must be
// treated as read-only afterwards.
type CurveParams struct {
	A, B        fr.Element
	APlus2Over4 fr.Element // (A+2)/4, precomputed for XDBL
	Order       *big.Int   // prime subgroup order
	Cofactor    *big.Int
	NBits       int // fixed scalar width of the ladder (Order.BitLen())

	Gx, Gy fr.Element // base point generator G
	Hx, Hy fr.Element // derived Pedersen generator H
}

var (
	params     CurveParams
	paramsOnce sync.Once
)

// Params returns the process-wide curve parameters. They are initialized on
// first use and safe for unsynchronized concurrent reads afterwards.
func Params() *CurveParams {
	paramsOnce.Do(buildParams)
	return &params
}

func buildParams() {
	params.A.SetUint64(168698)
	params.B.SetOne()
	var four fr.Element
	four.SetUint64(4)
	params.APlus2Over4.SetUint64(168700) // A+2
	four.Inverse(&four)
	params.APlus2Over4.Mul(&params.APlus2Over4, &four)

	params.Order, _ = new(big.Int).SetString(
		"2736030358979909402780800718157159386076813972158567259200215660948447373041", 10)
	params.Cofactor = big.NewInt(8)
	params.NBits = params.Order.BitLen()

	// Montgomery image of the standard twisted Edwards Base8 point.
	params.Gx.SetString("7117928050407583618111176421555214756675765419608405867398403713213306743542")
	params.Gy.SetString("14577268218881899420966779687690205425227431577728659819975198491127179315626")
	if !isOnCurve(&params, &params.Gx, &params.Gy) {
		panic("mont: base point generator is not on the curve")
	}

	hx, hy, err := deriveGenerator(&params, generatorHTag)
	if err != nil {
		panic(fmt.Sprintf("mont: cannot derive generator H: %v", err))
	}
	params.Hx.Set(&hx)
	params.Hy.Set(&hy)
	if params.Hx.Equal(&params.Gx) {
		panic("mont: generators G and H are not independent")
	}
	log.Debugw("montgomery curve parameters initialized",
		"order", params.Order.String(),
		"hx", params.Hx.String(),
		"hy", params.Hy.String(),
	)
}

// isOnCurve reports whether (x, y) satisfies B*y^2 = x^3 + A*x^2 + x.
func isOnCurve(p *CurveParams, x, y *fr.Element) bool {
	var lhs, rhs, t fr.Element
	lhs.Square(y)
	lhs.Mul(&lhs, &p.B)
	rhs.Add(x, &p.A)
	rhs.Mul(&rhs, x)
	t.SetOne()
	rhs.Add(&rhs, &t)
	rhs.Mul(&rhs, x)
	return lhs.Equal(&rhs)
}

// deriveGenerator hashes the tag to an x-coordinate and walks forward until
// it lands on the curve (try-and-increment), choosing the even square root,
// then clears the cofactor. The result is a point of the prime-order
// subgroup with no known discrete-log relation to any other generator.
func deriveGenerator(p *CurveParams, tag string) (fr.Element, fr.Element, error) {
	digest := sha3.Sum256([]byte(tag))
	seed := new(big.Int).SetBytes(digest[:])
	seed.Mod(seed, fr.Modulus())

	var x, y, one fr.Element
	one.SetOne()
	x.SetBigInt(seed)
	for i := 0; i < 1000; i++ {
		var rhs, t fr.Element
		rhs.Add(&x, &p.A)
		rhs.Mul(&rhs, &x)
		t.SetOne()
		rhs.Add(&rhs, &t)
		rhs.Mul(&rhs, &x)
		t.Inverse(&p.B)
		rhs.Mul(&rhs, &t)
		if !rhs.IsZero() {
			if sqrt := y.Sqrt(&rhs); sqrt != nil {
				// canonical root: take the one with even parity
				yi := y.BigInt(new(big.Int))
				if yi.Bit(0) == 1 {
					y.Neg(&y)
				}
				hx, hy, inf := mulByCofactor(p, &x, &y)
				if !inf && !(hx.IsZero() && hy.IsZero()) {
					return hx, hy, nil
				}
			}
		}
		x.Add(&x, &one)
	}
	var zero fr.Element
	return zero, zero, fmt.Errorf("no curve point found for tag %q", tag)
}

// mulByCofactor computes 8*(x, y) by repeated affine doubling. The boolean
// result reports whether the product is the point at infinity.
func mulByCofactor(p *CurveParams, x, y *fr.Element) (fr.Element, fr.Element, bool) {
	rx, ry := *x, *y
	for i := 0; i < 3; i++ {
		if ry.IsZero() {
			// 2-torsion: doubling yields the identity
			return rx, ry, true
		}
		var lam, num, den, t, x3, y3 fr.Element
		// lambda = (3x^2 + 2Ax + 1) / (2By)
		num.Square(&rx)
		t.SetUint64(3)
		num.Mul(&num, &t)
		t.Double(&p.A)
		t.Mul(&t, &rx)
		num.Add(&num, &t)
		t.SetOne()
		num.Add(&num, &t)
		den.Double(&p.B)
		den.Mul(&den, &ry)
		den.Inverse(&den)
		lam.Mul(&num, &den)
		// x3 = B*lambda^2 - A - 2x ; y3 = lambda*(x - x3) - y
		x3.Square(&lam)
		x3.Mul(&x3, &p.B)
		x3.Sub(&x3, &p.A)
		x3.Sub(&x3, &rx)
		x3.Sub(&x3, &rx)
		y3.Sub(&rx, &x3)
		y3.Mul(&y3, &lam)
		y3.Sub(&y3, &ry)
		rx, ry = x3, y3
	}
	return rx, ry, false
}
