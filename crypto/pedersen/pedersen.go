// Package pedersen implements Pedersen commitments over the Montgomery form
// of BabyJubJub. A commitment to a message m with blinding factor r is the
// curve point C = m*G + r*H, where G is the group generator and H is a second
// generator derived by hashing to the curve, so that no discrete-log relation
// between G and H is known. Commitments are perfectly hiding and
// computationally binding, and they are additively homomorphic:
// Commit(m1, r1) + Commit(m2, r2) = Commit(m1+m2, r1+r2).
package pedersen

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"sync"

	gpedersen "github.com/vocdoni/montgomery-primitives/circuits/pedersen"
	"github.com/vocdoni/montgomery-primitives/crypto/ecc"
	"github.com/vocdoni/montgomery-primitives/crypto/ecc/mont"
)

var (
	vectorGensMu sync.Mutex
	vectorGens   []ecc.Point
)

// RandR generates a uniformly random blinding factor in [0, order).
func RandR() (*big.Int, error) {
	g := GeneratorG()
	r, err := rand.Int(rand.Reader, g.Order())
	if err != nil {
		return nil, fmt.Errorf("failed to generate random blinding factor: %v", err)
	}
	return r, nil
}

// GeneratorG returns the group generator G used for the message term.
func GeneratorG() ecc.Point {
	g := mont.New()
	g.SetGenerator()
	return g
}

// GeneratorH returns the second generator H used for the blinding term. H is
// derived by hashing a fixed domain tag to the curve, so its discrete log
// with respect to G is unknown.
func GeneratorH() ecc.Point {
	h := &mont.Point{}
	h.SetGeneratorH()
	return h
}

// VectorGenerators returns the first n message generators G_0..G_{n-1} used
// by vector commitments. Each is derived independently from an indexed
// domain tag and cached for reuse.
func VectorGenerators(n int) ([]ecc.Point, error) {
	vectorGensMu.Lock()
	defer vectorGensMu.Unlock()
	for i := len(vectorGens); i < n; i++ {
		g, err := mont.DeriveGenerator(fmt.Sprintf("%s %d", gpedersen.VectorGeneratorTag, i))
		if err != nil {
			return nil, fmt.Errorf("failed to derive vector generator %d: %v", i, err)
		}
		vectorGens = append(vectorGens, g)
	}
	return vectorGens[:n:n], nil
}

// Commit computes the commitment C = m*G + r*H. Both scalars must be in
// [0, order), otherwise it returns an error wrapping mont.ErrScalarOutOfRange.
func Commit(m, r *big.Int) (*Commitment, error) {
	return CommitWithGenerators(GeneratorG(), GeneratorH(), m, r)
}

// CommitWithGenerators computes the commitment C = m*g + r*h using the
// generators provided. Both scalars must be in [0, order).
func CommitWithGenerators(g, h ecc.Point, m, r *big.Int) (*Commitment, error) {
	order := g.Order()
	if err := checkScalar(m, order); err != nil {
		return nil, fmt.Errorf("message scalar: %w", err)
	}
	if err := checkScalar(r, order); err != nil {
		return nil, fmt.Errorf("blinding scalar: %w", err)
	}
	mG := g.New()
	mG.ScalarMult(g, m)
	rH := g.New()
	rH.ScalarMult(h, r)
	c := g.New()
	c.Add(mG, rH)
	return &Commitment{C: c}, nil
}

// CommitVector computes the vector commitment
// C = m_0*G_0 + m_1*G_1 + ... + m_{n-1}*G_{n-1} + r*H
// binding all messages under a single blinding factor. Each message scalar
// and the blinding factor must be in [0, order).
func CommitVector(ms []*big.Int, r *big.Int) (*Commitment, error) {
	gens, err := VectorGenerators(len(ms))
	if err != nil {
		return nil, err
	}
	h := GeneratorH()
	order := h.Order()
	if err := checkScalar(r, order); err != nil {
		return nil, fmt.Errorf("blinding scalar: %w", err)
	}
	c := h.New()
	c.ScalarMult(h, r)
	term := h.New()
	for i, m := range ms {
		if err := checkScalar(m, order); err != nil {
			return nil, fmt.Errorf("message scalar %d: %w", i, err)
		}
		term.ScalarMult(gens[i], m)
		c.Add(c, term)
	}
	return &Commitment{C: c}, nil
}

// Verify checks that c is a commitment to message m under blinding factor r.
func Verify(c *Commitment, m, r *big.Int) (bool, error) {
	expected, err := Commit(m, r)
	if err != nil {
		return false, err
	}
	return c.Equal(expected), nil
}

// VerifyVector checks that c is a vector commitment to the messages ms under
// blinding factor r.
func VerifyVector(c *Commitment, ms []*big.Int, r *big.Int) (bool, error) {
	expected, err := CommitVector(ms, r)
	if err != nil {
		return false, err
	}
	return c.Equal(expected), nil
}

func checkScalar(s, order *big.Int) error {
	if s == nil || s.Sign() < 0 || s.Cmp(order) >= 0 {
		return mont.ErrScalarOutOfRange
	}
	return nil
}
