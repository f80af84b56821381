package id

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// Generator creates opaque IDs for externally visible references such as
// collection runs.
type Generator interface {
	NewID() (string, error)
}

// RandomGenerator produces hex-encoded random IDs with an optional prefix,
// e.g. "run_a1b2...".
type RandomGenerator struct {
	prefix string
	size   int
}

func NewRandomGenerator(prefix string) *RandomGenerator {
	return &RandomGenerator{prefix: prefix, size: 16}
}

func (g *RandomGenerator) NewID() (string, error) {
	buf := make([]byte, g.size)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	return g.prefix + hex.EncodeToString(buf), nil
}
