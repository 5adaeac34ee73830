// Package testutil provides the shared property-test harness: a repeat-N
// loop for spec.md §8's "≥100 iterations" requirement, and a deterministic
// transcript hash for generating reproducible per-iteration fixtures.
package testutil

import (
	"crypto/rand"
	"encoding/binary"
	"testing"

	"golang.org/x/crypto/blake2b"
)

// Repeat runs fn for i in [0, n), failing fast via fn's own t.Fatal/t.Error
// calls. Property-based invariants in this module's test suites use this
// instead of testing/quick where the generator needs domain knowledge
// testing/quick's reflection-based Value can't produce on its own (e.g. a
// scalar uniformly drawn from Fr, or a point known to be on curve).
func Repeat(t *testing.T, n int, fn func(t *testing.T, i int)) {
	t.Helper()

	for i := 0; i < n; i++ {
		fn(t, i)
	}
}

// Transcript derives n deterministic pseudorandom bytes for iteration i of
// a named property test, keyed by label via BLAKE2b. A failing iteration
// is reproducible from (label, i) alone, without needing to persist the
// run's crypto/rand state (mirrors the gnark-fork EdDSA reference's use of
// blake2b for deterministic key blinding, repurposed here for fixture
// generation rather than key derivation).
func Transcript(label string, i int, n int) []byte {
	h, err := blake2b.New256([]byte(label))
	if err != nil {
		panic(err)
	}

	var counter [8]byte
	binary.LittleEndian.PutUint64(counter[:], uint64(i))
	h.Write(counter[:])

	out := make([]byte, 0, n)
	block := h.Sum(nil)

	for len(out) < n {
		out = append(out, block...)
		block = blake2bOf(block)
	}

	return out[:n]
}

func blake2bOf(data []byte) []byte {
	sum := blake2b.Sum256(data)

	return sum[:]
}

// RandomBytes returns n cryptographically random bytes. Panics if the
// platform's entropy source fails, since there is no meaningful recovery
// for a broken CSPRNG in a test harness.
func RandomBytes(n int) []byte {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}

	return buf
}
