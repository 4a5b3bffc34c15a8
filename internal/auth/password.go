package auth

import (
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

// PasswordScheme decides how passwords are stored and compared.
type PasswordScheme interface {
	Hash(plain string) (string, error)
	Matches(stored, given string) bool
}

// PlainPasswords stores passwords as entered and compares by equality.
type PlainPasswords struct{}

func (PlainPasswords) Hash(plain string) (string, error) { return plain, nil }

func (PlainPasswords) Matches(stored, given string) bool { return stored == given }

// BcryptPasswords stores bcrypt hashes.
type BcryptPasswords struct {
	Cost int
}

func (b BcryptPasswords) Hash(plain string) (string, error) {
	cost := b.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", errors.Wrap(err, "failed to hash password")
	}
	return string(hash), nil
}

func (BcryptPasswords) Matches(stored, given string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(given)) == nil
}

// NewPasswordScheme returns the scheme registered under name ("plain" or
// "bcrypt").
func NewPasswordScheme(name string) (PasswordScheme, error) {
	switch name {
	case "", "plain":
		return PlainPasswords{}, nil
	case "bcrypt":
		return BcryptPasswords{}, nil
	}
	return nil, errors.Errorf("unknown password scheme %q", name)
}
