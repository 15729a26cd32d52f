// Package curves instantiates ecc.Point implementations by type name.
package curves

import (
	"fmt"

	"github.com/vocdoni/montgomery-primitives/crypto/ecc"
	"github.com/vocdoni/montgomery-primitives/crypto/ecc/bjj"
	"github.com/vocdoni/montgomery-primitives/crypto/ecc/mont"
)

const (
	// CurveTypeMontgomery is the default curve type, BabyJubJub in
	// Montgomery form with the ladder-based arithmetic.
	CurveTypeMontgomery = "mont"
	// CurveTypeBabyJubJubTE is BabyJubJub in twisted Edwards form, backed
	// by gnark-crypto.
	CurveTypeBabyJubJubTE = "bjj_te"
)

// New creates a new instance of an ecc.Point implementation based on the
// provided type string. The supported types are defined as constants in this
// package. If the type is not supported, it will panic.
func New(curveType string) ecc.Point {
	switch curveType {
	case CurveTypeMontgomery:
		return mont.New()
	case CurveTypeBabyJubJubTE:
		return bjj.New()
	default:
		panic(fmt.Sprintf("unsupported curve type: %s", curveType))
	}
}
