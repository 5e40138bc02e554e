package repository

import (
	"fmt"
	"math/rand"
)

const (
	// IDLen is the fixed width of application-assigned identifiers.
	IDLen = 24

	// idRange bounds the random draw. Collisions across the range are
	// treated as negligible, not prevented.
	idRange = 10_000_000_000_000
)

// GenerateNumericID returns a fixed-width numeric string identifier,
// left-padded with zeros.
func GenerateNumericID() string {
	return fmt.Sprintf("%0*d", IDLen, rand.Int63n(idRange))
}
