package mont

import (
	"encoding/json"
	"fmt"
	"math/big"
	"sync"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	curve "github.com/vocdoni/montgomery-primitives/crypto/ecc"
	"github.com/vocdoni/montgomery-primitives/types"
)

const CurveType = "mont"

// infinity coordinates used by Point()/SetPoint(): (0, 1) does not satisfy
// the curve equation, so it cannot collide with a real point. Note (0, 0)
// is a valid 2-torsion point and cannot be used as the infinity tag.
var infX, infY = big.NewInt(0), big.NewInt(1)

// Point is the affine representation of a BabyJubJub group element in
// Montgomery form, plus a distinguished point-at-infinity state. It
// implements the ecc.Point interface.
type Point struct {
	x, y fr.Element
	inf  bool
	lock sync.Mutex
}

// New creates a new point set to the identity element.
func New() curve.Point {
	return &Point{inf: true}
}

// New creates a new point set to the identity element.
func (g *Point) New() curve.Point {
	return &Point{inf: true}
}

// Order returns the order of the prime subgroup.
func (g *Point) Order() *big.Int {
	return new(big.Int).Set(Params().Order)
}

// Add computes the complete affine sum of a and b and stores it in g. It
// handles every edge case: either operand at infinity, doubling (a = b),
// inverse operands (a = -b, including the 2-torsion point (0,0) added to
// itself) and the generic chord case.
func (g *Point) Add(a, b curve.Point) {
	p, q := a.(*Point), b.(*Point)
	if p.inf {
		g.set(q)
		return
	}
	if q.inf {
		g.set(p)
		return
	}
	params := Params()
	var lam, num, den, t fr.Element
	if p.x.Equal(&q.x) {
		t.Neg(&q.y)
		if p.y.Equal(&t) {
			// p = -q, including (0,0)+(0,0)
			g.SetZero()
			return
		}
		// doubling: lambda = (3x^2 + 2Ax + 1) / (2By)
		num.Square(&p.x)
		t.SetUint64(3)
		num.Mul(&num, &t)
		t.Double(&params.A)
		t.Mul(&t, &p.x)
		num.Add(&num, &t)
		t.SetOne()
		num.Add(&num, &t)
		den.Double(&params.B)
		den.Mul(&den, &p.y)
	} else {
		// chord: lambda = (qy - py) / (qx - px)
		num.Sub(&q.y, &p.y)
		den.Sub(&q.x, &p.x)
	}
	den.Inverse(&den)
	lam.Mul(&num, &den)
	// x3 = B*lambda^2 - A - px - qx ; y3 = lambda*(px - x3) - py
	var x3, y3 fr.Element
	x3.Square(&lam)
	x3.Mul(&x3, &params.B)
	x3.Sub(&x3, &params.A)
	x3.Sub(&x3, &p.x)
	x3.Sub(&x3, &q.x)
	y3.Sub(&p.x, &x3)
	y3.Mul(&y3, &lam)
	y3.Sub(&y3, &p.y)
	g.x.Set(&x3)
	g.y.Set(&y3)
	g.inf = false
}

// SafeAdd adds two points with a lock on the receiver.
func (g *Point) SafeAdd(a, b curve.Point) {
	g.lock.Lock()
	defer g.lock.Unlock()
	g.Add(a, b)
}

// Exponentiate computes k*P through the Montgomery ladder and y-recovery,
// validating that the scalar lies in [0, order). It is the checked public
// entry point behind ScalarMult.
func Exponentiate(p curve.Point, k *big.Int) (curve.Point, error) {
	base := p.(*Point)
	params := Params()
	if k.Sign() < 0 || k.Cmp(params.Order) >= 0 {
		return nil, fmt.Errorf("%w: %s", ErrScalarOutOfRange, k)
	}
	res := &Point{}
	if base.inf || k.Sign() == 0 {
		res.inf = true
		return res, nil
	}
	if base.x.IsZero() && base.y.IsZero() {
		// the 2-torsion point (0,0): odd multiples stay, even ones vanish
		if k.Bit(0) == 1 {
			return res, nil // res is (0,0)
		}
		res.inf = true
		return res, nil
	}
	r0, r1 := ladder(k, &base.x, &params.APlus2Over4, params.NBits)
	if r0.isInfinity() {
		res.inf = true
		return res, nil
	}
	if r1.isInfinity() {
		// (k+1)*P is the identity, so k*P = -P
		res.x.Set(&base.x)
		res.y.Neg(&base.y)
		return res, nil
	}
	x, y, z := recoverY(params, &base.x, &base.y, &r0, &r1)
	z.Inverse(&z)
	res.x.Mul(&x, &z)
	res.y.Mul(&y, &z)
	return res, nil
}

// ScalarMult multiplies a by the given scalar and stores the result in g.
// The scalar is reduced modulo the subgroup order first, so the reduced
// value always satisfies the contract of Exponentiate.
func (g *Point) ScalarMult(a curve.Point, scalar *big.Int) {
	k := new(big.Int).Mod(scalar, Params().Order)
	res, err := Exponentiate(a, k)
	if err != nil {
		// unreachable: k is reduced above
		panic(err)
	}
	g.set(res.(*Point))
}

// ScalarBaseMult multiplies the base point generator by the given scalar.
func (g *Point) ScalarBaseMult(scalar *big.Int) {
	g.SetGenerator()
	g.ScalarMult(g, scalar)
}

// Equal checks whether the given point equals the receiver.
func (g *Point) Equal(a curve.Point) bool {
	p := a.(*Point)
	if g.inf || p.inf {
		return g.inf == p.inf
	}
	return g.x.Equal(&p.x) && g.y.Equal(&p.y)
}

// Neg negates the given point and stores the result in g.
func (g *Point) Neg(a curve.Point) {
	p := a.(*Point)
	g.inf = p.inf
	g.x.Set(&p.x)
	g.y.Neg(&p.y)
}

// SetZero sets g to the identity element (the point at infinity).
func (g *Point) SetZero() {
	g.x.SetZero()
	g.y.SetZero()
	g.inf = true
}

// Set sets g to the value of another point.
func (g *Point) Set(a curve.Point) {
	g.set(a.(*Point))
}

func (g *Point) set(p *Point) {
	g.x.Set(&p.x)
	g.y.Set(&p.y)
	g.inf = p.inf
}

// SetGenerator sets g to the base point generator.
func (g *Point) SetGenerator() {
	params := Params()
	g.x.Set(&params.Gx)
	g.y.Set(&params.Gy)
	g.inf = false
}

// SetGeneratorH sets g to the derived Pedersen generator H.
func (g *Point) SetGeneratorH() {
	params := Params()
	g.x.Set(&params.Hx)
	g.y.Set(&params.Hy)
	g.inf = false
}

// String returns a string representation of the point.
func (g *Point) String() string {
	x, y := g.Point()
	return fmt.Sprintf("%s,%s", x.String(), y.String())
}

// Marshal serializes the point as a flag byte (0 for the identity, 1
// otherwise) followed by the two 32-byte big-endian coordinates.
func (g *Point) Marshal() []byte {
	buf := make([]byte, 1+2*fr.Bytes)
	if g.inf {
		return buf
	}
	buf[0] = 1
	xb := g.x.Bytes()
	yb := g.y.Bytes()
	copy(buf[1:1+fr.Bytes], xb[:])
	copy(buf[1+fr.Bytes:], yb[:])
	return buf
}

// Unmarshal deserializes the point from the Marshal encoding, rejecting
// coordinates that do not satisfy the curve equation.
func (g *Point) Unmarshal(buf []byte) error {
	if len(buf) != 1+2*fr.Bytes {
		return fmt.Errorf("invalid input length: got %d bytes, expected %d bytes", len(buf), 1+2*fr.Bytes)
	}
	if buf[0] == 0 {
		g.SetZero()
		return nil
	}
	var x, y fr.Element
	if err := x.SetBytesCanonical(buf[1 : 1+fr.Bytes]); err != nil {
		return err
	}
	if err := y.SetBytesCanonical(buf[1+fr.Bytes:]); err != nil {
		return err
	}
	if !isOnCurve(Params(), &x, &y) {
		return ErrInvalidPoint
	}
	g.x.Set(&x)
	g.y.Set(&y)
	g.inf = false
	return nil
}

// MarshalJSON serializes the point into a JSON byte slice. The identity is
// encoded as the off-curve pair (0, 1).
func (g *Point) MarshalJSON() ([]byte, error) {
	x, y := g.Point()
	return json.Marshal(&curve.PointEC{
		X: types.BigInt(*x),
		Y: types.BigInt(*y),
	})
}

// UnmarshalJSON deserializes the point from a JSON byte slice, rejecting
// coordinates that are neither on the curve nor the infinity tag.
func (g *Point) UnmarshalJSON(buf []byte) error {
	points := &curve.PointEC{}
	if err := json.Unmarshal(buf, points); err != nil {
		return err
	}
	return g.setPointChecked(points.X.MathBigInt(), points.Y.MathBigInt())
}

// Point returns the affine X and Y coordinates of the point, in Montgomery
// form. The point at infinity returns (0, 1), which is not on the curve.
func (g *Point) Point() (*big.Int, *big.Int) {
	if g.inf {
		return new(big.Int).Set(infX), new(big.Int).Set(infY)
	}
	return g.x.BigInt(new(big.Int)), g.y.BigInt(new(big.Int))
}

// SetPoint sets the affine X and Y coordinates of the point, in Montgomery
// form. The pair (0, 1) sets the point at infinity. Coordinates are reduced
// into the field; they are not checked against the curve equation (use
// Unmarshal or UnmarshalJSON for checked decoding).
func (g *Point) SetPoint(x, y *big.Int) curve.Point {
	p := &Point{}
	if x.Cmp(infX) == 0 && y.Cmp(infY) == 0 {
		p.inf = true
		return p
	}
	p.x.SetBigInt(curve.BigToFF(fr.Modulus(), new(big.Int).Set(x)))
	p.y.SetBigInt(curve.BigToFF(fr.Modulus(), new(big.Int).Set(y)))
	return p
}

func (g *Point) setPointChecked(x, y *big.Int) error {
	if x.Cmp(infX) == 0 && y.Cmp(infY) == 0 {
		g.SetZero()
		return nil
	}
	var fx, fy fr.Element
	fx.SetBigInt(curve.BigToFF(fr.Modulus(), new(big.Int).Set(x)))
	fy.SetBigInt(curve.BigToFF(fr.Modulus(), new(big.Int).Set(y)))
	if !isOnCurve(Params(), &fx, &fy) {
		return ErrInvalidPoint
	}
	g.x.Set(&fx)
	g.y.Set(&fy)
	g.inf = false
	return nil
}

// DeriveGenerator derives a deterministic prime-subgroup generator from a
// domain separation tag by hashing to the curve (try-and-increment) and
// clearing the cofactor. Distinct tags yield generators with no known
// discrete-log relation between them.
func DeriveGenerator(tag string) (curve.Point, error) {
	x, y, err := deriveGenerator(Params(), tag)
	if err != nil {
		return nil, err
	}
	p := &Point{}
	p.x.Set(&x)
	p.y.Set(&y)
	return p, nil
}

// IsInfinity reports whether the point is the identity element.
func (g *Point) IsInfinity() bool {
	return g.inf
}

// Type returns the identifier of the curve implementation.
func (g *Point) Type() string {
	return CurveType
}
