package jubjub

import (
	"crypto/sha256"
	"math/big"

	"golang.org/x/crypto/sha3"

	"github.com/snarkcore/babyjubjub/field"
)

// HashToPoint deterministically derives a curve point from arbitrary bytes
// via try-and-increment: hash with SHA-256, reduce to Fq as a candidate y,
// attempt FromY, and on failure increment y and retry (spec.md §4.3). This
// is the hash this module documents as the default for every basepoint
// derivation. The result is not multiplied by the cofactor.
func HashToPoint(data []byte) Point {
	digest := sha256.Sum256(data)
	return hashToPointFromDigest(digest[:])
}

// HashToPointKeccak is the same try-and-increment construction, seeded by
// Keccak-256 instead of SHA-256. Not used by any default code path in this
// module; kept reachable for interop with EVM-side tooling that expects
// Keccak framing over this exact curve (spec.md §4.3 permits either hash
// "where documented": this is that documentation).
func HashToPointKeccak(data []byte) Point {
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	digest := h.Sum(nil)

	return hashToPointFromDigest(digest)
}

func hashToPointFromDigest(digest []byte) Point {
	y := field.FromBigInt[field.QTag](new(big.Int).SetBytes(digest))

	for {
		p, err := FromY(y)
		if err == nil {
			return p
		}

		y = y.Add(field.FromInt64[field.QTag](1))
	}
}
