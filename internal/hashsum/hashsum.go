// Package hashsum provides the default content-digest implementation for
// pkg/imgstore's Hasher capability.
package hashsum

import "crypto/sha256"

// SHA256 computes digests with the standard library's crypto/sha256. It
// has no configuration and no state, so its zero value is ready to use.
type SHA256 struct{}

// Sum256 returns the SHA-256 digest of data.
func (SHA256) Sum256(data []byte) [32]byte {
	return sha256.Sum256(data)
}
