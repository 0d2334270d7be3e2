package digest

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"

	"laydeck/internal/domain"
)

// size is the digest length in bytes (20 hex chars).
const size = 10

// Fingerprint returns a short hex fingerprint of content.
//
// It hashes with BLAKE2b-256 and truncates to 10 bytes.
func Fingerprint(content []byte) domain.Fingerprint {
	sum := blake2b.Sum256(content)
	return domain.Fingerprint(hex.EncodeToString(sum[:size]))
}
