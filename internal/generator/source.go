package generator

import (
	"crypto/rand"
	"math/big"
	mrand "math/rand/v2"
)

// Source yields uniform indexes in [0, n). *math/rand/v2.Rand satisfies it, so
// tests can pass a seeded generator.
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return mrand.IntN(n) }

// DefaultSource draws from the non-cryptographic math/rand/v2 top-level generator.
var DefaultSource Source = globalSource{}

// CryptoSource draws from crypto/rand. It panics if the system source fails.
type CryptoSource struct{}

// IntN picks a uniform value in [0, n) using crypto/rand.
func (CryptoSource) IntN(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic("generator: crypto/rand failed: " + err.Error())
	}
	return int(v.Int64())
}
