package booking

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
)

const reviewTokenBytes = 32

// NewReviewToken returns a random URL-safe token and the hash that is stored.
// Only the hash is persisted; the raw token goes to the customer.
func NewReviewToken() (token, hash string, err error) {
	buf := make([]byte, reviewTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", "", err
	}
	token = base64.RawURLEncoding.EncodeToString(buf)
	return token, HashReviewToken(token), nil
}

func HashReviewToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
