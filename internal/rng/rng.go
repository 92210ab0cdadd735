package rng

import (
	"crypto/rand"
	"math/big"
	mrand "math/rand"
)

// Generator provides a simple random number
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}

// New returns a seeded math/rand generator when seed is non-zero
// A zero seed gives unpredictable deals read from crypto/rand
func New(seed int64) Generator {
	if seed == 0 {
		return cryptoGenerator{}
	}

	return mrand.New(mrand.NewSource(seed)) // nolint:gosec
}

type cryptoGenerator struct{}

func (cryptoGenerator) Intn(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(err)
	}

	return int(v.Int64())
}
