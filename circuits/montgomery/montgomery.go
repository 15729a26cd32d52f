// Package montgomery implements in-circuit gadgets for the Montgomery form
// of BabyJubJub, B*y^2 = x^3 + A*x^2 + x over the BN254 scalar field. It
// mirrors the native arithmetic of crypto/ecc/mont: x-only differential
// addition and doubling, the Montgomery ladder, y-recovery and complete
// affine addition, all with a circuit topology that does not depend on the
// witness values.
package montgomery

import (
	"math/big"
	"sync"

	"github.com/consensys/gnark/frontend"
	"github.com/vocdoni/montgomery-primitives/crypto/ecc/mont"
)

// CurveParams holds the curve coefficients and generators as big integers,
// which is the representation gnark takes for circuit constants.
type CurveParams struct {
	A, B        *big.Int
	APlus2Over4 *big.Int
	Order       *big.Int
	NBits       int

	Gx, Gy *big.Int
	Hx, Hy *big.Int
}

var (
	curveParams     CurveParams
	curveParamsOnce sync.Once
)

// GetCurveParams returns the circuit-side view of the native curve
// parameters. They are built once and must be treated as read-only.
func GetCurveParams() *CurveParams {
	curveParamsOnce.Do(func() {
		p := mont.Params()
		curveParams = CurveParams{
			A:           p.A.BigInt(new(big.Int)),
			B:           p.B.BigInt(new(big.Int)),
			APlus2Over4: p.APlus2Over4.BigInt(new(big.Int)),
			Order:       new(big.Int).Set(p.Order),
			NBits:       p.NBits,
			Gx:          p.Gx.BigInt(new(big.Int)),
			Gy:          p.Gy.BigInt(new(big.Int)),
			Hx:          p.Hx.BigInt(new(big.Int)),
			Hy:          p.Hy.BigInt(new(big.Int)),
		}
	})
	return &curveParams
}

// Curve wraps the constraint builder together with the curve parameters and
// exposes the point arithmetic gadgets.
type Curve struct {
	api    frontend.API
	params *CurveParams
}

// New returns a curve gadget bound to the given constraint builder.
func New(api frontend.API) *Curve {
	return &Curve{api: api, params: GetCurveParams()}
}

// Params returns the curve parameters the gadget was built with.
func (c *Curve) Params() *CurveParams {
	return c.params
}

// Generator returns the base point generator G as a circuit constant.
func (c *Curve) Generator() Point {
	return Point{X: c.params.Gx, Y: c.params.Gy, Z: 1}
}

// GeneratorH returns the derived Pedersen generator H as a circuit constant.
func (c *Curve) GeneratorH() Point {
	return Point{X: c.params.Hx, Y: c.params.Hy, Z: 1}
}
