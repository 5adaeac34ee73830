// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

/*
Package babyjubjub provides zkSNARK-friendly cryptographic primitives over
the BabyJubjub twisted-Edwards curve and the BN254 scalar field.

Subpackages:

- field: modular arithmetic over Fq (the BN254 scalar field) and Fr (the
BabyJubjub subgroup order), including Tonelli-Shanks square roots.

- jubjub: BabyJubjub curve points in affine, extended, projective, and
Montgomery coordinates, with double-and-add, NAF, and windowed-NAF scalar
multiplication and a hash-to-point construction.

- pedersen: the Pedersen hash family over points, scalars, and bytes,
including the windowed "zcash-style" variant.

- mimc: the MiMC block cipher and its Miyaguchi-Preneel compression mode.

- eddsa: Pure-EdDSA and Hash-EdDSA signatures built on Pedersen hashing over
Jubjub.

- encoding: the heterogeneous hash-input glue (HashInput) shared by
pedersen and eddsa.
*/
package babyjubjub
