package bjj

import (
	"encoding/json"
	"math/big"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestOrder(t *testing.T) {
	g := New()
	qt.Assert(t, g.Order().String(), qt.Equals,
		"2736030358979909402780800718157159386076813972158567259200215660948447373041")
}

// the generator must be the same group element as the Montgomery base point
func TestGeneratorMontgomeryImage(t *testing.T) {
	g := New()
	g.SetGenerator()
	x, y := g.Point()
	qt.Assert(t, x.String(), qt.Equals,
		"7117928050407583618111176421555214756675765419608405867398403713213306743542")
	qt.Assert(t, y.String(), qt.Equals,
		"14577268218881899420966779687690205425227431577728659819975198491127179315626")
}

func TestScalarMultMatchesRepeatedAddition(t *testing.T) {
	g := New()
	g.SetGenerator()
	acc := New()
	acc.SetZero()
	for k := 0; k <= 32; k++ {
		res := New()
		res.ScalarMult(g, big.NewInt(int64(k)))
		qt.Assert(t, res.Equal(acc), qt.IsTrue, qt.Commentf("k=%d", k))
		acc.Add(acc, g)
	}
}

func TestOrderAnnihilates(t *testing.T) {
	g := New()
	g.SetGenerator()
	res := New()
	res.ScalarMult(g, g.Order())
	inf := New()
	inf.SetZero()
	qt.Assert(t, res.Equal(inf), qt.IsTrue)
}

func TestNeg(t *testing.T) {
	g := New()
	g.SetGenerator()
	neg := New()
	neg.Neg(g)
	sum := New()
	sum.Add(g, neg)
	inf := New()
	inf.SetZero()
	qt.Assert(t, sum.Equal(inf), qt.IsTrue)
}

func TestMarshalUnmarshal(t *testing.T) {
	p := New()
	p.ScalarBaseMult(big.NewInt(12345))
	buf := p.Marshal()

	got := New()
	qt.Assert(t, got.Unmarshal(buf), qt.IsNil)
	qt.Assert(t, got.Equal(p), qt.IsTrue)
}

func TestJSONMontgomeryRoundTrip(t *testing.T) {
	p := New()
	p.ScalarBaseMult(big.NewInt(777))

	data, err := json.Marshal(p)
	qt.Assert(t, err, qt.IsNil)

	got := New()
	qt.Assert(t, json.Unmarshal(data, got), qt.IsNil)
	qt.Assert(t, got.Equal(p), qt.IsTrue)
}

func TestPointSetPointRoundTrip(t *testing.T) {
	p := New()
	p.ScalarBaseMult(big.NewInt(31337))
	x, y := p.Point()

	got := New().SetPoint(x, y)
	qt.Assert(t, got.Equal(p), qt.IsTrue)

	// the identity travels as the (0, 1) tag
	inf := New()
	inf.SetZero()
	ix, iy := inf.Point()
	qt.Assert(t, ix.String(), qt.Equals, "0")
	qt.Assert(t, iy.String(), qt.Equals, "1")
	back := New().SetPoint(ix, iy)
	qt.Assert(t, back.Equal(inf), qt.IsTrue)
}
