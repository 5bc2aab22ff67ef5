package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// Verifier checks submitted login credentials. The login handler depends on
// this capability only, so deployments choose where the credentials live.
type Verifier interface {
	Verify(username, password string) bool
}

// EnvCredentials verifies against a single admin account configured through
// the environment: a username and a bcrypt password hash. No secrets in code.
type EnvCredentials struct {
	Username     string
	PasswordHash string
}

func (c EnvCredentials) Verify(username, password string) bool {
	if subtle.ConstantTimeCompare([]byte(username), []byte(c.Username)) != 1 {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password)) == nil
}
