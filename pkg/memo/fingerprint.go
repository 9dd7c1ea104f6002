package memo

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Fingerprint is an opaque, comparable digest of an options value. Equal
// options always produce equal fingerprints; distinguishable options
// collide only at cryptographic-hash probability.
type Fingerprint [sha256.Size]byte

// FingerprintOf computes the fingerprint of an options value.
//
// The value is serialized with encoding/json, which is deterministic:
// struct fields appear in declaration order and map keys are sorted. The
// full options value is digested as given; fields that do not affect the
// computation's numerical behavior still change the fingerprint, which can
// cause a recompute but never a wrong result.
func FingerprintOf(v any) (Fingerprint, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return Fingerprint{}, fmt.Errorf("serialize options: %w", err)
	}
	return sha256.Sum256(data), nil
}

// String returns the hex form of the fingerprint.
func (f Fingerprint) String() string {
	return hex.EncodeToString(f[:])
}
