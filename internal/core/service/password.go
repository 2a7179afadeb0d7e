package service

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/gaugeworks/gauge-registry/internal/core/domain"
)

// HashPassword returns a bcrypt hash of plain at the default cost.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword checks plain against a stored credential.
//
// The store holds two generations of credentials: bcrypt hashes, and raw
// passwords left over from before the hashing migration. The stored value is
// classified by prefix; a value that looks hashed is verified with bcrypt and
// a mismatch rejects outright, with no plaintext fallback in that branch.
// Only values that do not look hashed compare byte-for-byte.
//
// Only the bcrypt mismatch itself is treated as "verification failed";
// bcrypt reports no other error for a well-formed hash, so nothing else is
// swallowed here.
func VerifyPassword(plain, stored string) bool {
	cred := domain.ParseCredential(stored)
	if cred.IsHashed() {
		return bcrypt.CompareHashAndPassword([]byte(cred.Value), []byte(plain)) == nil
	}
	return plain == cred.Value
}
