package utils

import "golang.org/x/crypto/bcrypt"

// bcryptCost matches the work factor the store has always used.
const bcryptCost = 12

// HashPassword returns the bcrypt hash of a plaintext password. The salt is
// generated per call, so hashing the same input twice yields different
// outputs.
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CheckPasswordHash compares a plaintext password against a stored bcrypt
// hash. A malformed hash simply reports false.
func CheckPasswordHash(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
