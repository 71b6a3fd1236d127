// Package determinism provides stable identifiers for recommendation inputs.
package determinism

import (
	"crypto/sha256"
	"encoding/hex"

	"aws-recommender/core/types"
)

// Fingerprint identifies a preference vector. Equal answers give equal
// fingerprints, and the engine gives equal rankings for equal fingerprints.
type Fingerprint string

// ContentHash is a SHA-256 hash for content integrity
type ContentHash [32]byte

// ComputeHash computes a content hash from bytes
func ComputeHash(data []byte) ContentHash {
	return sha256.Sum256(data)
}

// Hex returns the hash as a hex string
func (h ContentHash) Hex() string {
	return hex.EncodeToString(h[:])
}

// String implements Stringer
func (h ContentHash) String() string {
	return h.Hex()[:16] + "..."
}

// FingerprintOf hashes the answers in scoring order
func FingerprintOf(prefs types.PreferenceVector) Fingerprint {
	h := sha256.New()
	for _, c := range types.Criteria() {
		h.Write([]byte(c))
		h.Write([]byte{'='})
		h.Write([]byte(prefs.Value(c)))
		h.Write([]byte{0}) // Separator
	}
	return Fingerprint(hex.EncodeToString(h.Sum(nil))[:16])
}
