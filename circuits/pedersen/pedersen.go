// Package pedersen implements the in-circuit counterpart of the native
// Pedersen commitments in crypto/pedersen: proving knowledge of a message m
// and blinding factor r such that C = m*G + r*H, with the same generators
// and the same identity encoding, so native commitments can be assigned
// directly as witness values (see the native Commitment.ToGnark).
package pedersen

import (
	"fmt"

	"github.com/consensys/gnark/frontend"
	"github.com/vocdoni/montgomery-primitives/circuits/montgomery"
	"github.com/vocdoni/montgomery-primitives/crypto/ecc/mont"
)

// VectorGeneratorTag is the domain separation prefix of the indexed vector
// commitment generators. The native and in-circuit sides derive the same
// generators from it.
const VectorGeneratorTag = "montgomery-primitives: pedersen vector generator"

// Commitment is the in-circuit representation of a Pedersen commitment: an
// affine Montgomery point with an infinity flag.
type Commitment = montgomery.Point

// Pedersen exposes the commitment gadgets over a curve bound to the
// constraint builder.
type Pedersen struct {
	curve *montgomery.Curve
}

// New returns a Pedersen gadget bound to the given constraint builder.
func New(api frontend.API) *Pedersen {
	return &Pedersen{curve: montgomery.New(api)}
}

// Curve returns the underlying curve gadget.
func (pc *Pedersen) Curve() *montgomery.Curve {
	return pc.curve
}

// Commit returns the commitment m*G + r*H. Both scalars are range-checked
// to [0, order) inside the scalar multiplications.
func (pc *Pedersen) Commit(m, r frontend.Variable) Commitment {
	mG := pc.curve.ScalarBaseMult(m)
	rH := pc.curve.ScalarMul(pc.curve.GeneratorH(), r)
	return pc.curve.Add(mG, rH)
}

// CommitBits returns the commitment m*G + r*H for a blinding factor already
// decomposed into boolean bits, MSB first. Callers holding an in-circuit bit
// decomposition of r skip the range check and decomposition a scalar
// argument would add; m is still range-checked to [0, order).
func (pc *Pedersen) CommitBits(m frontend.Variable, rBits []frontend.Variable) Commitment {
	mG := pc.curve.ScalarBaseMult(m)
	rH := pc.curve.ScalarMulBits(pc.curve.GeneratorH(), rBits)
	return pc.curve.Add(mG, rH)
}

// CommitVector returns the vector commitment
// m_0*G_0 + ... + m_{n-1}*G_{n-1} + r*H, with the indexed generators derived
// at circuit construction time from VectorGeneratorTag. All scalars are
// range-checked to [0, order).
func (pc *Pedersen) CommitVector(ms []frontend.Variable, r frontend.Variable) (Commitment, error) {
	return pc.addVectorLegs(pc.curve.ScalarMul(pc.curve.GeneratorH(), r), ms)
}

// CommitVectorBits is CommitVector over a bit-decomposed blinding factor,
// MSB first, see CommitBits.
func (pc *Pedersen) CommitVectorBits(ms []frontend.Variable, rBits []frontend.Variable) (Commitment, error) {
	return pc.addVectorLegs(pc.curve.ScalarMulBits(pc.curve.GeneratorH(), rBits), ms)
}

func (pc *Pedersen) addVectorLegs(acc Commitment, ms []frontend.Variable) (Commitment, error) {
	for i, m := range ms {
		g, err := mont.DeriveGenerator(fmt.Sprintf("%s %d", VectorGeneratorTag, i))
		if err != nil {
			return Commitment{}, fmt.Errorf("failed to derive vector generator %d: %w", i, err)
		}
		gx, gy := g.Point()
		acc = pc.curve.Add(acc, pc.curve.ScalarMul(montgomery.Point{X: gx, Y: gy, Z: 1}, m))
	}
	return acc, nil
}

// Add returns the homomorphic sum of two commitments, a commitment to the
// sum of the messages under the sum of the blinding factors.
func (pc *Pedersen) Add(a, b Commitment) Commitment {
	return pc.curve.Add(a, b)
}

// AssertIsEqual constrains two commitments to be the same point.
func (pc *Pedersen) AssertIsEqual(a, b Commitment) {
	pc.curve.AssertIsEqual(a, b)
}

// AssertIsWellFormed constrains c to be a valid curve point or the identity.
func (pc *Pedersen) AssertIsWellFormed(c Commitment) {
	pc.curve.AssertIsOnCurve(c)
}
