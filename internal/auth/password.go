package auth

import (
	"crypto/md5"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher is the only place the password hash algorithm is chosen.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

// NewPasswordHasher returns the hasher registered under name ("md5" or "bcrypt").
func NewPasswordHasher(name string) (PasswordHasher, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "md5":
		return MD5Hasher{}, nil
	case "bcrypt":
		return BcryptHasher{Cost: bcrypt.DefaultCost}, nil
	default:
		return nil, fmt.Errorf("unknown password hasher %q", name)
	}
}

// MD5Hasher produces the legacy unsalted lower-case hex MD5 digest. Existing
// credential rows were written with it.
type MD5Hasher struct{}

func (MD5Hasher) Hash(password string) (string, error) {
	sum := md5.Sum([]byte(password))
	return hex.EncodeToString(sum[:]), nil
}

func (h MD5Hasher) Verify(password, hash string) bool {
	want, _ := h.Hash(password)
	return subtle.ConstantTimeCompare([]byte(want), []byte(strings.ToLower(hash))) == 1
}

// BcryptHasher is the salted, slow replacement for MD5Hasher.
type BcryptHasher struct {
	Cost int
}

func (h BcryptHasher) Hash(password string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func (BcryptHasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
