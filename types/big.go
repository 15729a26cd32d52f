package types

import (
	"fmt"
	"math/big"

	"github.com/fxamacker/cbor/v2"
)

// BigInt is a big.Int wrapper which marshals JSON to a string representation
// of the big number. Note that a pointer to a BigInt is required for all the
// methods to work.
type BigInt big.Int

// MathBigInt converts b to a math/big *big.Int.
func (i *BigInt) MathBigInt() *big.Int {
	return (*big.Int)(i)
}

// String returns the decimal representation of i.
func (i *BigInt) String() string {
	return i.MathBigInt().String()
}

// SetString interprets s as a decimal number and sets i to that value.
func (i *BigInt) SetString(s string) (*BigInt, error) {
	z, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("cannot parse %q as a decimal integer", s)
	}
	return (*BigInt)(z), nil
}

// MarshalText implements encoding.TextMarshaler, so that JSON encodes the
// number as a decimal string.
func (i *BigInt) MarshalText() ([]byte, error) {
	return i.MathBigInt().MarshalText()
}

// UnmarshalText implements encoding.TextMarshaler.
func (i *BigInt) UnmarshalText(data []byte) error {
	return i.MathBigInt().UnmarshalText(data)
}

// MarshalCBOR implements cbor.Marshaler, encoding the number as a CBOR bignum.
func (i *BigInt) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(i.MathBigInt())
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (i *BigInt) UnmarshalCBOR(data []byte) error {
	return cbor.Unmarshal(data, i.MathBigInt())
}

// Equal compares i with arg without allocating.
func (i *BigInt) Equal(arg *BigInt) bool {
	return i.MathBigInt().Cmp(arg.MathBigInt()) == 0
}
