package mont

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	qt "github.com/frankban/quicktest"
)

func TestParams(t *testing.T) {
	p := Params()
	qt.Assert(t, p.A.String(), qt.Equals, "168698")
	qt.Assert(t, p.B.IsOne(), qt.IsTrue)
	qt.Assert(t, p.Order.String(), qt.Equals,
		"2736030358979909402780800718157159386076813972158567259200215660948447373041")
	qt.Assert(t, p.NBits, qt.Equals, 251)
	qt.Assert(t, p.Cofactor.Int64(), qt.Equals, int64(8))

	// APlus2Over4 * 4 == A + 2
	var four, lhs, rhs fr.Element
	four.SetUint64(4)
	lhs.Mul(&p.APlus2Over4, &four)
	rhs.SetUint64(168700)
	qt.Assert(t, lhs.Equal(&rhs), qt.IsTrue)

	qt.Assert(t, isOnCurve(p, &p.Gx, &p.Gy), qt.IsTrue)
	qt.Assert(t, isOnCurve(p, &p.Hx, &p.Hy), qt.IsTrue)
}

func TestGeneratorPinned(t *testing.T) {
	p := Params()
	qt.Assert(t, p.Gx.String(), qt.Equals,
		"7117928050407583618111176421555214756675765419608405867398403713213306743542")
	qt.Assert(t, p.Gy.String(), qt.Equals,
		"14577268218881899420966779687690205425227431577728659819975198491127179315626")
}

// The second Pedersen generator is derived by hashing a fixed tag to the
// curve, so its coordinates must never change across releases: a different H
// would silently break every stored commitment.
func TestGeneratorHPinned(t *testing.T) {
	p := Params()
	qt.Assert(t, p.Hx.String(), qt.Equals,
		"15829548607567562934263607576641843444434436152138037521106691130487465098735")
	qt.Assert(t, p.Hy.String(), qt.Equals,
		"14713696619081103588100416903197048718996639712288123706287380045830458074387")
}

func TestGeneratorsInSubgroup(t *testing.T) {
	p := Params()
	kLast := new(big.Int).Sub(p.Order, big.NewInt(1))
	for _, gen := range []*Point{newGenerator(), newGeneratorH()} {
		// order*P == (order-1)*P + P must be the identity
		last, err := Exponentiate(gen, kLast)
		qt.Assert(t, err, qt.IsNil)
		sum := &Point{}
		sum.Add(last, gen)
		qt.Assert(t, sum.IsInfinity(), qt.IsTrue)
	}
}

func TestDeriveGenerator(t *testing.T) {
	p := Params()
	g1, err := DeriveGenerator("some tag")
	qt.Assert(t, err, qt.IsNil)
	g2, err := DeriveGenerator("some tag")
	qt.Assert(t, err, qt.IsNil)
	qt.Assert(t, g1.Equal(g2), qt.IsTrue)

	g3, err := DeriveGenerator("another tag")
	qt.Assert(t, err, qt.IsNil)
	qt.Assert(t, g1.Equal(g3), qt.IsFalse)

	for _, g := range []*Point{g1.(*Point), g3.(*Point)} {
		qt.Assert(t, isOnCurve(p, &g.x, &g.y), qt.IsTrue)
		kLast := new(big.Int).Sub(p.Order, big.NewInt(1))
		last, err := Exponentiate(g, kLast)
		qt.Assert(t, err, qt.IsNil)
		sum := &Point{}
		sum.Add(last, g)
		qt.Assert(t, sum.IsInfinity(), qt.IsTrue)
	}
}

// newGenerator and newGeneratorH are small test helpers returning fresh
// generator points.
func newGenerator() *Point {
	g := &Point{}
	g.SetGenerator()
	return g
}

func newGeneratorH() *Point {
	h := &Point{}
	h.SetGeneratorH()
	return h
}
