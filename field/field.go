// Package field implements modular arithmetic over the two fixed primes this
// module needs: q, the BN254 SNARK scalar field (BabyJubjub's base field),
// and l, the BabyJubjub subgroup order. It deliberately does not provide a
// general-purpose big-integer API (spec.md §1 Non-goals): every exported
// operation is scoped to Fq or Fr.
package field

import (
	cryptorand "crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/snarkcore/babyjubjub/internal/errs"
)

var (
	zero = big.NewInt(0)
	one  = big.NewInt(1)
)

// String2Int parses a base-10 or 0x-prefixed string into a big.Int, panicking
// on malformed input; used only for the fixed curve-constant literals.
func String2Int(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 0)
	if !ok {
		panic("field: invalid integer literal: " + s)
	}

	return n
}

// ring holds the precomputed values needed for arithmetic modulo a single
// fixed prime, the way internal/field.Field holds pMinus1div2/pMinus2/exp for
// whichever NIST prime it was constructed with. Unlike that type, a ring
// here is a package-level singleton per modulus (q or l) rather than a value
// threaded through call sites.
type ring struct {
	p           *big.Int
	pMinus2     *big.Int // used for Fermat inversion
	pMinus1Div2 *big.Int // used for the Euler-criterion square test
	bitLen      int
}

func newRing(p *big.Int) *ring {
	pMinus2 := new(big.Int).Sub(p, big.NewInt(2))
	pMinus1Div2 := new(big.Int).Sub(p, one)
	pMinus1Div2.Rsh(pMinus1Div2, 1)

	return &ring{
		p:           p,
		pMinus2:     pMinus2,
		pMinus1Div2: pMinus1Div2,
		bitLen:      p.BitLen(),
	}
}

func (r *ring) mod(x *big.Int) *big.Int {
	return x.Mod(x, r.p)
}

func (r *ring) isSquare(x *big.Int) bool {
	if x.Sign() == 0 {
		return true
	}

	return new(big.Int).Exp(x, r.pMinus1Div2, r.p).Cmp(one) == 0
}

// Q is the BN254 scalar field modulus (the SNARK field), and the base field
// BabyJubjub is defined over.
var Q = String2Int("21888242871839275222246405745257275088548364400416034343698204186575808495617")

// L is the BabyJubjub subgroup order.
var L = String2Int("2736030358979909402780800718157159386076813972158567259200215660948447373041")

var (
	qRing = newRing(Q)
	lRing = newRing(L)
)

// ringTag selects which fixed modulus an Elem instance is reduced against.
// This mirrors the teacher's nist.Element[Point] generic parameterization
// (a type parameter supplying curve-specific behavior), specialized here to
// select between the two field moduli this module needs instead of between
// curve implementations.
type ringTag interface {
	ring() *ring
}

// QTag parameterizes Elem to arithmetic modulo Q.
type QTag struct{}

func (QTag) ring() *ring { return qRing }

// LTag parameterizes Elem to arithmetic modulo L.
type LTag struct{}

func (LTag) ring() *ring { return lRing }

func ringOf[T ringTag]() *ring {
	var t T
	return t.ring()
}

// Elem is a value in the prime field selected by T (QTag or L Tag). Fq and Fr
// are its two instantiations.
type Elem[T ringTag] struct {
	n big.Int
}

// Fq is an element of the BN254 scalar field, in [0, Q).
type Fq = Elem[QTag]

// Fr is an element of the BabyJubjub subgroup order field, in [0, L).
type Fr = Elem[LTag]

// FromInt64 reduces i modulo the field order and returns the result.
func FromInt64[T ringTag](i int64) Elem[T] {
	var e Elem[T]
	e.n.Mod(big.NewInt(i), ringOf[T]().p)

	return e
}

// FromBigInt reduces x modulo the field order and returns the result. x is
// not mutated.
func FromBigInt[T ringTag](x *big.Int) Elem[T] {
	var e Elem[T]
	e.n.Mod(x, ringOf[T]().p)

	return e
}

// Random returns a uniformly random element of the field, read from r.
func Random[T ringTag](r io.Reader) (Elem[T], error) {
	rg := ringOf[T]()

	n, err := cryptorand.Int(r, rg.p)
	if err != nil {
		return Elem[T]{}, fmt.Errorf("field: random: %w", err)
	}

	var e Elem[T]
	e.n.Set(n)

	return e, nil
}

// MustRandom is Random sourced from crypto/rand, panicking only on an
// exhausted entropy source (a condition the stdlib documents as effectively
// impossible on supported platforms).
func MustRandom[T ringTag]() Elem[T] {
	e, err := Random[T](cryptorand.Reader)
	if err != nil {
		panic(err)
	}

	return e
}

// Order returns the modulus this field is reduced against.
func (Elem[T]) Order() *big.Int {
	return new(big.Int).Set(ringOf[T]().p)
}

// Int returns a copy of the element's integer representative in [0, p).
func (e Elem[T]) Int() *big.Int {
	return new(big.Int).Set(&e.n)
}

// IsZero reports whether e is the additive identity.
func (e Elem[T]) IsZero() bool {
	return e.n.Sign() == 0
}

// Equal reports whether e and o represent the same field element.
func (e Elem[T]) Equal(o Elem[T]) bool {
	return e.n.Cmp(&o.n) == 0
}

// Cmp returns -1, 0 or +1 as e is numerically less than, equal to, or
// greater than o, comparing their canonical [0, p) integer representatives.
func (e Elem[T]) Cmp(o Elem[T]) int {
	return e.n.Cmp(&o.n)
}

// Add returns e + o.
func (e Elem[T]) Add(o Elem[T]) Elem[T] {
	var out Elem[T]
	out.n.Add(&e.n, &o.n)
	ringOf[T]().mod(&out.n)

	return out
}

// Sub returns e - o.
func (e Elem[T]) Sub(o Elem[T]) Elem[T] {
	var out Elem[T]
	out.n.Sub(&e.n, &o.n)
	ringOf[T]().mod(&out.n)

	return out
}

// Neg returns -e.
func (e Elem[T]) Neg() Elem[T] {
	var out Elem[T]
	out.n.Neg(&e.n)
	ringOf[T]().mod(&out.n)

	return out
}

// Mul returns e * o.
func (e Elem[T]) Mul(o Elem[T]) Elem[T] {
	var out Elem[T]
	out.n.Mul(&e.n, &o.n)
	ringOf[T]().mod(&out.n)

	return out
}

// Pow returns e^n via square-and-multiply (math/big.Int.Exp).
func (e Elem[T]) Pow(n *big.Int) Elem[T] {
	var out Elem[T]
	out.n.Exp(&e.n, n, ringOf[T]().p)

	return out
}

// Invert returns 1/e, failing with errs.ErrZeroInverse if e is zero.
func (e Elem[T]) Invert() (Elem[T], error) {
	if e.IsZero() {
		return Elem[T]{}, errs.ErrZeroInverse
	}

	return e.Pow(ringOf[T]().pMinus2), nil
}

// Div returns e / o (multiplication by the modular inverse of o), failing
// with errs.ErrZeroInverse if o is zero.
func (e Elem[T]) Div(o Elem[T]) (Elem[T], error) {
	inv, err := o.Invert()
	if err != nil {
		return Elem[T]{}, err
	}

	return e.Mul(inv), nil
}

// IsSquare reports whether e is a quadratic residue, via Euler's criterion.
func (e Elem[T]) IsSquare() bool {
	return ringOf[T]().isSquare(&e.n)
}

// Sqrt returns a square root of e via Tonelli-Shanks, failing with
// errs.ErrNonResidue if e is not a quadratic residue. The companion root is
// -result; which of the two is returned is unspecified beyond that it is
// consistent for equal inputs.
func (e Elem[T]) Sqrt() (Elem[T], error) {
	r, err := TonelliShanks(&e.n, ringOf[T]().p)
	if err != nil {
		return Elem[T]{}, err
	}

	var out Elem[T]
	out.n.Set(r)

	return out, nil
}

// BitLen returns the bit length of the field's modulus (254 for Fq, 251 for
// Fr).
func (Elem[T]) BitLen() int {
	return ringOf[T]().bitLen
}

// Bits returns the little-endian (LSB-first) bit decomposition of e, padded
// with trailing zeros to BitLen() bits.
func (e Elem[T]) Bits() []byte {
	return e.BitsN(e.BitLen())
}

// BitsN returns the little-endian bit decomposition of e, zero-padded (or
// truncated, which should never happen for a reduced element and n >=
// BitLen()) to exactly n bits. EdDSA's "EdDSA_Verify.RAM" hash input encoding
// fixes n at 254 regardless of which field the element belongs to (spec.md
// §4.6, §9 Open Question #3): that width must not be derived from BitLen().
func (e Elem[T]) BitsN(n int) []byte {
	bits := make([]byte, n)
	for i := 0; i < n; i++ {
		bits[i] = byte(e.n.Bit(i))
	}

	return bits
}

const byteWidth = 32

// BytesBE returns the element's fixed 32-byte big-endian encoding.
func (e Elem[T]) BytesBE() [byteWidth]byte {
	var out [byteWidth]byte
	e.n.FillBytes(out[:])

	return out
}

// BytesLE returns the element's fixed 32-byte little-endian encoding, used
// for EdDSA's key and Pedersen-hash-input byte encodings (spec.md §6).
func (e Elem[T]) BytesLE() [byteWidth]byte {
	be := e.BytesBE()

	var out [byteWidth]byte
	for i, b := range be {
		out[byteWidth-1-i] = b
	}

	return out
}

// SetBytesBE decodes a 32-byte big-endian buffer into a field element.
// Fails with errs.ErrInvalidEncoding if buf is not exactly 32 bytes.
func SetBytesBE[T ringTag](buf []byte) (Elem[T], error) {
	if len(buf) != byteWidth {
		return Elem[T]{}, errs.ErrInvalidEncoding
	}

	return FromBigInt[T](new(big.Int).SetBytes(buf)), nil
}

// SetBytesLE decodes a 32-byte little-endian buffer into a field element.
// Fails with errs.ErrInvalidEncoding if buf is not exactly 32 bytes.
func SetBytesLE[T ringTag](buf []byte) (Elem[T], error) {
	if len(buf) != byteWidth {
		return Elem[T]{}, errs.ErrInvalidEncoding
	}

	be := make([]byte, byteWidth)
	for i, b := range buf {
		be[byteWidth-1-i] = b
	}

	return FromBigInt[T](new(big.Int).SetBytes(be)), nil
}

// String renders the element's decimal integer representative.
func (e Elem[T]) String() string {
	return e.n.String()
}
