// Package bjj wraps gnark-crypto's twisted Edwards implementation of
// BabyJubJub behind the ecc.Point interface, exposing Montgomery-form
// coordinates at the boundary. It exists as an independently implemented
// mirror of crypto/ecc/mont: both operate on the same group, so results can
// be cross-checked through the format conversions.
package bjj

import (
	"encoding/json"
	"fmt"
	"math/big"
	"sync"

	babyjubjub "github.com/consensys/gnark-crypto/ecc/bn254/twistededwards"

	curve "github.com/vocdoni/montgomery-primitives/crypto/ecc"
	"github.com/vocdoni/montgomery-primitives/crypto/ecc/format"
	"github.com/vocdoni/montgomery-primitives/types"
)

const CurveType = "bjj_te"

// Params are the twisted Edwards parameters of BabyJubJub as defined by
// gnark-crypto (reduced form).
var Params babyjubjub.CurveParams

// generator is the reduced twisted Edwards image of the subgroup generator
// used across this module (the Montgomery base point of crypto/ecc/mont).
// gnark-crypto's own Base is a different generator of the same subgroup.
var generator babyjubjub.PointAffine

func init() {
	Params = babyjubjub.GetEdwardsCurve()
	generator.X.SetString("12216525397769193039033285140139874868932027386087289415053270333399021305954")
	generator.Y.SetString("16950150798460657717958625567821834550301663161624707787222815936182638968203")
}

// BJJ wraps the reduced twisted Edwards representation of a BabyJubJub
// group element.
type BJJ struct {
	inner *babyjubjub.PointAffine
	lock  sync.Mutex
}

// New creates a new BJJ point set to the identity element.
func New() curve.Point {
	p := &BJJ{inner: new(babyjubjub.PointAffine)}
	p.SetZero()
	return p
}

// New creates a new BJJ point set to the identity element.
func (g *BJJ) New() curve.Point {
	return New()
}

// Order returns the order of the prime subgroup.
func (g *BJJ) Order() *big.Int {
	return new(big.Int).Set(&Params.Order)
}

// Add performs the addition of two points and stores the result in g.
func (g *BJJ) Add(a, b curve.Point) {
	g.inner.Add(a.(*BJJ).inner, b.(*BJJ).inner)
}

// SafeAdd performs the addition of two points with a lock on the receiver.
func (g *BJJ) SafeAdd(a, b curve.Point) {
	g.lock.Lock()
	defer g.lock.Unlock()
	g.Add(a, b)
}

// ScalarMult performs scalar multiplication of a point by a scalar.
func (g *BJJ) ScalarMult(a curve.Point, scalar *big.Int) {
	g.inner.ScalarMultiplication(a.(*BJJ).inner, scalar)
}

// ScalarBaseMult performs scalar multiplication using the base point.
func (g *BJJ) ScalarBaseMult(scalar *big.Int) {
	g.SetGenerator()
	g.ScalarMult(g, scalar)
}

// Equal checks if the given point is equal to the receiver.
func (g *BJJ) Equal(a curve.Point) bool {
	return g.inner.Equal(a.(*BJJ).inner)
}

// Neg negates the given point and stores the result in g.
func (g *BJJ) Neg(a curve.Point) {
	g.inner.Neg(a.(*BJJ).inner)
}

// SetZero sets the receiver to the identity element (0, 1).
func (g *BJJ) SetZero() {
	g.inner.X.SetZero()
	g.inner.Y.SetOne()
}

// Set sets g to the value of another point.
func (g *BJJ) Set(a curve.Point) {
	g.inner.Set(a.(*BJJ).inner)
}

// SetGenerator sets the receiver to the subgroup generator, the same group
// element as the Montgomery base point of crypto/ecc/mont.
func (g *BJJ) SetGenerator() {
	g.inner.Set(&generator)
}

// String returns a string representation of the point in Montgomery form.
func (g *BJJ) String() string {
	x, y := g.Point()
	return fmt.Sprintf("%s,%s", x.String(), y.String())
}

// Marshal serializes the point using gnark-crypto's compressed encoding.
func (g *BJJ) Marshal() []byte {
	return g.inner.Marshal()
}

// Unmarshal deserializes the point from gnark-crypto's compressed encoding.
func (g *BJJ) Unmarshal(buf []byte) error {
	return g.inner.Unmarshal(buf)
}

// MarshalJSON serializes the point into a JSON byte slice, in Montgomery
// form.
func (g *BJJ) MarshalJSON() ([]byte, error) {
	x, y := g.Point()
	return json.Marshal(&curve.PointEC{
		X: types.BigInt(*x),
		Y: types.BigInt(*y),
	})
}

// UnmarshalJSON deserializes the point from a JSON byte slice, in Montgomery
// form.
func (g *BJJ) UnmarshalJSON(buf []byte) error {
	points := &curve.PointEC{}
	if err := json.Unmarshal(buf, points); err != nil {
		return err
	}
	g.SetPointInPlace(points.X.MathBigInt(), points.Y.MathBigInt())
	return nil
}

// Point returns the affine X and Y coordinates of the point, converted to
// Montgomery form. The identity returns the infinity tag (0, 1).
func (g *BJJ) Point() (*big.Int, *big.Int) {
	x, y := new(big.Int), new(big.Int)
	g.inner.X.BigInt(x)
	g.inner.Y.BigInt(y)
	return format.FromRTEtoMont(x, y)
}

// SetPoint sets the point from affine Montgomery coordinates, with (0, 1)
// setting the identity.
func (g *BJJ) SetPoint(x, y *big.Int) curve.Point {
	p := &BJJ{inner: new(babyjubjub.PointAffine)}
	p.SetPointInPlace(x, y)
	return p
}

// SetPointInPlace sets the receiver from affine Montgomery coordinates.
func (g *BJJ) SetPointInPlace(x, y *big.Int) {
	if g.inner == nil {
		g.inner = new(babyjubjub.PointAffine)
	}
	xr, yr := format.FromMontToRTE(x, y)
	g.inner.X.SetBigInt(xr)
	g.inner.Y.SetBigInt(yr)
}

// Type returns the identifier of the curve implementation.
func (g *BJJ) Type() string {
	return CurveType
}
