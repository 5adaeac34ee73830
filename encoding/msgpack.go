// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package encoding

import (
	"github.com/vmihailenco/msgpack/v5"

	"github.com/snarkcore/babyjubjub/field"
	"github.com/snarkcore/babyjubjub/internal/errs"
	"github.com/snarkcore/babyjubjub/jubjub"
)

// Point is a msgpack-friendly wrapper around jubjub.Point, wire-encoded as
// its canonical §6 32-byte compressed form. The mandatory byte encoding
// lives on jubjub.Point itself (Compress/Decompress); this wrapper is
// strictly an optional convenience for SNARK tooling that wants a msgpack
// transcript without touching that canonical encoding.
type Point struct {
	jubjub.Point
}

// MarshalMsgpack implements msgpack.CustomEncoder.
func (p Point) MarshalMsgpack() ([]byte, error) {
	c := p.Compress()

	return msgpack.Marshal(c[:])
}

// UnmarshalMsgpack implements msgpack.CustomDecoder.
func (p *Point) UnmarshalMsgpack(data []byte) error {
	var raw []byte
	if err := msgpack.Unmarshal(data, &raw); err != nil {
		return err
	}

	decoded, err := jubjub.Decompress(raw)
	if err != nil {
		return err
	}

	p.Point = decoded

	return nil
}

// Signature is the msgpack wire form of an EdDSA signature: a compressed
// commitment point R and a little-endian S value. S is stored as an Fq
// encoding since it is reduced mod E = h*l, which exceeds l.
type Signature struct {
	R [32]byte
	S [32]byte
}

// NewSignature packs a (R, S) pair into its wire form.
func NewSignature(r jubjub.Point, s field.Elem[field.QTag]) Signature {
	return Signature{R: r.Compress(), S: s.BytesLE()}
}

// Point recovers R from the wire form.
func (s Signature) Point() (jubjub.Point, error) {
	return jubjub.Decompress(s.R[:])
}

// Scalar recovers S from the wire form.
func (s Signature) Scalar() (field.Elem[field.QTag], error) {
	return field.SetBytesLE[field.QTag](s.S[:])
}

// MarshalMsgpack implements msgpack.CustomEncoder.
func (s Signature) MarshalMsgpack() ([]byte, error) {
	return msgpack.Marshal([][]byte{s.R[:], s.S[:]})
}

// UnmarshalMsgpack implements msgpack.CustomDecoder.
func (s *Signature) UnmarshalMsgpack(data []byte) error {
	var parts [][]byte
	if err := msgpack.Unmarshal(data, &parts); err != nil {
		return err
	}

	if len(parts) != 2 {
		return errs.ErrInvalidEncoding
	}

	copy(s.R[:], parts[0])
	copy(s.S[:], parts[1])

	return nil
}
