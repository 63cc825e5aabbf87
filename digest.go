// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bilrost

import "github.com/zeebo/blake3"

// DigestSize is the size of a digest in bytes.
const DigestSize = 32

// Digest returns the BLAKE3 hash of the encoding of m.
//
// Since every value has one encoding, equal values have equal digests
// regardless of how they were built or which marshaler produced them.
func Digest(m Message) [DigestSize]byte {
	return blake3.Sum256(Marshal(m))
}

// DigestKeyed returns the keyed BLAKE3 hash of the encoding of m. Distinct
// keys separate the digests of different domains that may share message
// types. The key must be 32 bytes long.
func DigestKeyed(key []byte, m Message) ([DigestSize]byte, error) {
	var sum [DigestSize]byte
	h, err := blake3.NewKeyed(key)
	if err != nil {
		return sum, err
	}
	h.Write(Marshal(m))
	copy(sum[:], h.Sum(nil))
	return sum, nil
}

// VerifyDigest decodes b into m, requiring it to be the canonical encoding
// of m with no unknown fields, and returns the digest of b. The returned
// digest equals Digest(m).
func VerifyDigest(b []byte, m Message) ([DigestSize]byte, error) {
	if _, err := UnmarshalRestricted(b, m, Canonical); err != nil {
		return [DigestSize]byte{}, err
	}
	return blake3.Sum256(b), nil
}
