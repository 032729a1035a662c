package checksum

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
)

// Fingerprint returns the hex SHA-256 of an uploaded payload.
func Fingerprint(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// ChecksumMatcher tells whether a payload is the one already held for a slot.
type ChecksumMatcher struct {
	expectedChecksum string
}

// NewChecksumMatcher creates a matcher for a previously stored fingerprint.
func NewChecksumMatcher(expectedChecksum string) *ChecksumMatcher {
	return &ChecksumMatcher{expectedChecksum: expectedChecksum}
}

// Match checks whether data hashes to the expected fingerprint.
func (cm *ChecksumMatcher) Match(data []byte) (bool, error) {
	if cm.expectedChecksum == "" {
		return false, errors.New("expected checksum is not set")
	}
	return Fingerprint(data) == cm.expectedChecksum, nil
}
