package pedersen

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/vocdoni/arbo"
	gpedersen "github.com/vocdoni/montgomery-primitives/circuits/pedersen"
	"github.com/vocdoni/montgomery-primitives/crypto/ecc"
	"github.com/vocdoni/montgomery-primitives/crypto/ecc/curves"
	"github.com/vocdoni/montgomery-primitives/crypto/ecc/mont"
)

// sizes in bytes needed to serialize a Commitment
const (
	sizeCoord      = 32
	SizeCommitment = 2 * sizeCoord
)

// Commitment wraps the curve point of a Pedersen commitment and provides
// homomorphic addition, serialization and conversion to the in-circuit
// representation.
type Commitment struct {
	C ecc.Point `json:"c"`
}

// NewCommitment creates an empty Commitment on the same curve as the given
// point. The point can be easily created with curves.New(type).
func NewCommitment(curve ecc.Point) *Commitment {
	return &Commitment{C: curve.New()}
}

// Commit computes the commitment to message m under blinding factor r and
// stores it in z, which is also returned. The randomness r can be nil to
// generate a new one, in which case it is also returned.
func (z *Commitment) Commit(m, r *big.Int) (*Commitment, *big.Int, error) {
	var err error
	if r == nil {
		r, err = RandR()
		if err != nil {
			return nil, nil, fmt.Errorf("pedersen commitment failed: %w", err)
		}
	}
	c, err := Commit(m, r)
	if err != nil {
		return nil, nil, fmt.Errorf("pedersen commitment failed: %w", err)
	}
	z.C = c.C
	return z, r, nil
}

// Add adds two Commitments and stores the result in z, which is also
// returned. By the homomorphic property, the result is a commitment to the
// sum of the messages under the sum of the blinding factors.
func (z *Commitment) Add(x, y *Commitment) *Commitment {
	z.C.SafeAdd(x.C, y.C)
	return z
}

// Equal checks if two Commitments are the same curve point.
func (z *Commitment) Equal(x *Commitment) bool {
	return z.C.Equal(x.C)
}

// Serialize returns a slice of 2*32 bytes representing the X, Y Montgomery
// coordinates as little-endian. The identity is encoded through its (0, 1)
// coordinate tag.
func (z *Commitment) Serialize() []byte {
	x, y := z.C.Point()
	buf := make([]byte, 0, SizeCommitment)
	buf = append(buf, arbo.BigIntToBytes(sizeCoord, x)...)
	buf = append(buf, arbo.BigIntToBytes(sizeCoord, y)...)
	return buf
}

// Deserialize reconstructs a Commitment from a slice of bytes. The input
// must be of len 2*32 bytes (otherwise it returns an error), representing
// the X, Y Montgomery coordinates as little-endian.
func (z *Commitment) Deserialize(data []byte) error {
	if len(data) != SizeCommitment {
		return fmt.Errorf("invalid input length: got %d bytes, expected %d bytes", len(data), SizeCommitment)
	}
	if z.C == nil {
		z.C = curves.New(mont.CurveType)
	}
	z.C = z.C.SetPoint(
		arbo.BytesToBigInt(data[0*sizeCoord:1*sizeCoord]),
		arbo.BytesToBigInt(data[1*sizeCoord:2*sizeCoord]),
	)
	return nil
}

// Marshal converts the Commitment to a JSON byte slice.
func (z *Commitment) Marshal() ([]byte, error) {
	return json.Marshal(z)
}

// Unmarshal populates the Commitment from a JSON byte slice.
func (z *Commitment) Unmarshal(data []byte) error {
	if z.C == nil {
		z.C = curves.New(mont.CurveType)
	}
	return json.Unmarshal(data, z)
}

// String returns a string representation of the Commitment.
func (z *Commitment) String() string {
	if z == nil || z.C == nil {
		return "{C: nil}"
	}
	return fmt.Sprintf("{C: %s}", z.C.String())
}

// ToGnark returns z as the witness struct used by gnark, with the point in
// Montgomery affine coordinates and the Z flag cleared for the identity.
func (z *Commitment) ToGnark() *gpedersen.Commitment {
	x, y := z.C.Point()
	flag := big.NewInt(1)
	if x.Sign() == 0 && y.Cmp(big.NewInt(1)) == 0 {
		flag = big.NewInt(0)
	}
	return &gpedersen.Commitment{X: x, Y: y, Z: flag}
}
