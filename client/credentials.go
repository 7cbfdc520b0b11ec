package client

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Authenticator supplies the account credentials sent with every
// describe call. The implementation is caller-owned; [Credentials] is
// the plain-value option for accounts held directly.
type Authenticator interface {
	AccountNumber() string
	AccountSecret() string
}

// Credentials is a static Authenticator.
type Credentials struct {
	Number string `env:"DESCRIBE_ACCOUNT_NUMBER"`
	Secret string `env:"DESCRIBE_ACCOUNT_SECRET"`
}

func (c Credentials) AccountNumber() string { return c.Number }

func (c Credentials) AccountSecret() string { return c.Secret }

// CredentialsFromEnv loads account credentials from the
// DESCRIBE_ACCOUNT_NUMBER and DESCRIBE_ACCOUNT_SECRET environment
// variables. Both must be set.
func CredentialsFromEnv() (Credentials, error) {
	var c Credentials
	if err := env.Parse(&c); err != nil {
		return Credentials{}, fmt.Errorf("parse env: %w", err)
	}

	if c.Number == "" || c.Secret == "" {
		return Credentials{}, fmt.Errorf("%w: DESCRIBE_ACCOUNT_NUMBER and DESCRIBE_ACCOUNT_SECRET must be set", ErrMissingCredentials)
	}

	return c, nil
}
