// Package pedersen implements the Pedersen hash family over BabyJubjub:
// basepoint derivation, linear-combination hashes over points/scalars/bytes,
// and (in zcash.go) the windowed 3-bit signed-digit "zcash" variant used by
// EdDSA's public-parameter hash.
package pedersen

import (
	"fmt"
	"math/big"

	"github.com/snarkcore/babyjubjub/field"
	"github.com/snarkcore/babyjubjub/internal/errs"
	"github.com/snarkcore/babyjubjub/jubjub"
)

// maxSegmentBytes is floor(log2(l)/8), the width of each big-endian scalar
// segment HashBytes splits its input into (grounded verbatim on
// ethsnarks/pedersen.py's MAX_SEGMENT_BYTES).
var maxSegmentBytes = field.L.BitLen() / 8

// Basepoint derives the i-th domain-separated basepoint for name, grounded
// verbatim on ethsnarks/pedersen.py's pedersen_hash_basepoint: name is
// ASCII space-padded to 28 bytes, followed by i as 4 uppercase hex digits,
// fed to jubjub.HashToPoint. Fails with errs.ErrBadDomainTag if name
// exceeds 28 bytes or i exceeds 16 bits.
func Basepoint(name string, i uint32) (jubjub.Point, error) {
	if len(name) > 28 {
		return jubjub.Point{}, errs.ErrBadDomainTag
	}

	if i > 0xFFFF {
		return jubjub.Point{}, errs.ErrBadDomainTag
	}

	data := []byte(fmt.Sprintf("%-28s%04X", name, i))

	return jubjub.HashToPoint(data), nil
}

// HashPoints computes Σ_i (B(name, 2i)*P_i.x + B(name, 2i+1)*P_i.y), the
// non-homomorphic Pedersen hash of a sequence of points (ethsnarks
// pedersen_hash_points).
func HashPoints(name string, points ...jubjub.Point) (jubjub.Point, error) {
	result := jubjub.Identity()

	for i, p := range points {
		base := 2 * uint32(i)

		bx, err := Basepoint(name, base)
		if err != nil {
			return jubjub.Point{}, err
		}

		by, err := Basepoint(name, base+1)
		if err != nil {
			return jubjub.Point{}, err
		}

		result = result.Add(bx.Mul(p.X.Int())).Add(by.Mul(p.Y.Int()))
	}

	return result, nil
}

// HashScalars computes Σ B(name, i)*s_i. Each scalar must satisfy
// 0 < s_i < l; fails with errs.ErrScalarOutOfRange otherwise (ethsnarks
// pedersen_hash_scalars).
func HashScalars(name string, scalars ...*big.Int) (jubjub.Point, error) {
	result := jubjub.Identity()

	for i, s := range scalars {
		if s.Sign() <= 0 || s.Cmp(field.L) >= 0 {
			return jubjub.Point{}, errs.ErrScalarOutOfRange
		}

		base, err := Basepoint(name, uint32(i))
		if err != nil {
			return jubjub.Point{}, err
		}

		result = result.Add(base.Mul(s))
	}

	return result, nil
}

// HashBytes splits the concatenation of data into maxSegmentBytes-wide
// big-endian scalar segments and returns Σ B(name, i)*segment_i (ethsnarks
// pedersen_hash_bytes).
func HashBytes(name string, data ...[]byte) (jubjub.Point, error) {
	var buf []byte
	for _, d := range data {
		buf = append(buf, d...)
	}

	result := jubjub.Identity()

	for i := 0; i*maxSegmentBytes < len(buf); i++ {
		start := i * maxSegmentBytes
		end := start + maxSegmentBytes
		if end > len(buf) {
			end = len(buf)
		}

		base, err := Basepoint(name, uint32(i))
		if err != nil {
			return jubjub.Point{}, err
		}

		scalar := new(big.Int).SetBytes(buf[start:end])
		result = result.Add(base.Mul(scalar))
	}

	return result, nil
}
