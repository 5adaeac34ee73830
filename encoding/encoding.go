// Package encoding implements the heterogeneous hash-input glue shared by
// pedersen and eddsa: a tagged variant over points, field elements, raw
// bytes, and raw bits, with a single ToBits/ToBytes traversal so the
// little-endian, 254-bit-padded, X-coordinate-only encoding rules are
// centralized instead of duplicated at each call site.
package encoding

import (
	"math/big"

	"github.com/snarkcore/babyjubjub/field"
	"github.com/snarkcore/babyjubjub/jubjub"
)

// fieldElement is satisfied by field.Elem[field.QTag] and field.Elem[field.LTag].
type fieldElement interface {
	BitsN(n int) []byte
}

// HashInput is a tagged variant of the values pedersen and eddsa feed their
// hash constructions: a single point, a single field element, a raw byte
// string, a raw bit string (one 0/1 per byte), or a list of other HashInputs
// to be flattened left to right (spec.md §9's Point | Field | Bytes | Bits |
// List variant).
type HashInput struct {
	kind     kind
	point    jubjub.Point
	field    fieldElement
	bytes    []byte
	bits     []byte
	children []HashInput
}

type kind int

const (
	kindPoint kind = iota
	kindField
	kindBytes
	kindBits
	kindList
)

// fieldBitWidth is the padded width every field element contributes to a
// bit traversal, fixed at 254 regardless of whether the element is Fq or
// Fr (spec.md §9 Open Question #3 — EdDSA_Verify.RAM's width must not
// track BitLen()).
const fieldBitWidth = 254

// FromPoint wraps a point; ToBits/ToBytes only ever consult its X coordinate.
func FromPoint(p jubjub.Point) HashInput {
	return HashInput{kind: kindPoint, point: p}
}

// FromField wraps a field element, encoded as fieldBitWidth little-endian
// bits regardless of which ring it belongs to.
func FromField(e fieldElement) HashInput {
	return HashInput{kind: kindField, field: e}
}

// FromBytes wraps a raw byte string.
func FromBytes(b []byte) HashInput {
	return HashInput{kind: kindBytes, bytes: b}
}

// FromBits wraps a raw bit string, one 0/1 value per byte.
func FromBits(bits []byte) HashInput {
	return HashInput{kind: kindBits, bits: bits}
}

// List flattens a sequence of HashInputs left to right.
func List(items ...HashInput) HashInput {
	return HashInput{kind: kindList, children: items}
}

// ToBits returns the little-endian bit decomposition of h: a point
// contributes its X coordinate's fieldBitWidth bits, a field element
// contributes fieldBitWidth bits, bytes expand MSB-first per byte, a bit
// string passes through unchanged, and a list concatenates its children's
// bits in order (ethsnarks eddsa.py's to_bits).
func (h HashInput) ToBits() []byte {
	switch h.kind {
	case kindPoint:
		return h.point.X.BitsN(fieldBitWidth)
	case kindField:
		return h.field.BitsN(fieldBitWidth)
	case kindBytes:
		return bitsFromBytesMSB(h.bytes)
	case kindBits:
		return append([]byte(nil), h.bits...)
	case kindList:
		var out []byte
		for _, c := range h.children {
			out = append(out, c.ToBits()...)
		}

		return out
	default:
		return nil
	}
}

// ToBytes returns the byte encoding of h: a byte string passes through
// unchanged, a list concatenates its children's encodings in order, and a
// point, field element or bit string packs its ToBits() into bytes,
// LSB-first within each byte, zero-padding the final byte if the bit count
// isn't a multiple of 8.
func (h HashInput) ToBytes() []byte {
	switch h.kind {
	case kindBytes:
		return append([]byte(nil), h.bytes...)
	case kindList:
		var out []byte
		for _, c := range h.children {
			out = append(out, c.ToBytes()...)
		}

		return out
	default:
		return bytesFromBitsLSB(h.ToBits())
	}
}

func bitsFromBytesMSB(data []byte) []byte {
	bits := make([]byte, 0, len(data)*8)

	for _, b := range data {
		for i := 7; i >= 0; i-- {
			bits = append(bits, (b>>uint(i))&1)
		}
	}

	return bits
}

func bytesFromBitsLSB(bits []byte) []byte {
	out := make([]byte, (len(bits)+7)/8)

	for i, b := range bits {
		if b == 0 {
			continue
		}

		out[i/8] |= 1 << uint(i%8)
	}

	return out
}

// BytesToFr reduces a big-endian byte string — typically a hash digest over
// an EdDSA_Verify.M or EdDSA_Verify.RAM domain-tagged HashInput — into an
// Fr element mod l.
func BytesToFr(digest []byte) field.Elem[field.LTag] {
	return field.FromBigInt[field.LTag](new(big.Int).SetBytes(digest))
}
