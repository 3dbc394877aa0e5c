package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Signer derives deterministic signatures for rendered documents.
// The same canonical input always yields the same output, and any change
// to the input changes the output, so a signature can be re-derived later
// for verification or audit.
type Signer struct {
	key []byte
}

func NewSigner(key string) *Signer {
	return &Signer{key: []byte(key)}
}

// Sign computes the hex-encoded HMAC-SHA256 of the canonical text
func (s *Signer) Sign(canonical string) string {
	mac := hmac.New(sha256.New, s.key)
	mac.Write([]byte(canonical))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify reports whether sig is the signature of canonical under this key
func (s *Signer) Verify(canonical, sig string) bool {
	expected := s.Sign(canonical)
	return hmac.Equal([]byte(expected), []byte(sig))
}
