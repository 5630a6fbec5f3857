package utils

import (
	"golang.org/x/crypto/bcrypt"
)

const passwordCost = 10

// Crypt hashes a password with bcrypt.
func Crypt(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), passwordCost)
	return string(hashed), err
}

// VerifyPassword reports whether password matches the stored hash.
func VerifyPassword(password, hashedPassword string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}
