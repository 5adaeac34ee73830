// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package encoding

import (
	"github.com/snarkcore/babyjubjub/internal/errs"
	"github.com/snarkcore/babyjubjub/jubjub"
)

// GobEncode implements gob.GobEncoder, delegating to the canonical §6
// compressed form since jubjub.Point's internal field representation isn't
// exported for gob's reflection-based default encoder to reach.
func (p Point) GobEncode() ([]byte, error) {
	c := p.Compress()

	return c[:], nil
}

// GobDecode implements gob.GobDecoder.
func (p *Point) GobDecode(data []byte) error {
	decoded, err := jubjub.Decompress(data)
	if err != nil {
		return err
	}

	p.Point = decoded

	return nil
}

// GobEncode implements gob.GobEncoder.
func (s Signature) GobEncode() ([]byte, error) {
	return append(append([]byte{}, s.R[:]...), s.S[:]...), nil
}

// GobDecode implements gob.GobDecoder.
func (s *Signature) GobDecode(data []byte) error {
	if len(data) != 64 {
		return errs.ErrInvalidEncoding
	}

	copy(s.R[:], data[:32])
	copy(s.S[:], data[32:])

	return nil
}
