package utils

import (
	"net/mail"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// MinPasswordCost is the cheapest bcrypt cost; tests lower PasswordCost to it.
const MinPasswordCost = bcrypt.MinCost

// PasswordCost is the bcrypt cost used by HashPassword.
var PasswordCost = 14

// HashPassword hashes a plain password using bcrypt.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	return string(bytes), err
}

// CheckPasswordHash compares a plain password with a bcrypt hash.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// IsEmail returns true if the string is a valid email address.
func IsEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

// MaskCardNumber keeps the last four digits of a card or account number.
func MaskCardNumber(n string) string {
	n = strings.ReplaceAll(n, " ", "")
	if len(n) <= 4 {
		return n
	}
	return strings.Repeat("*", len(n)-4) + n[len(n)-4:]
}
