package auth

import "errors"

// ErrEmptySecret is returned when an Authenticator is constructed without
// a configured secret.
var ErrEmptySecret = errors.New("webhook secret must not be empty")

// Authenticator validates webhook credentials against a configured shared
// secret. The expected digest is computed once at construction; Authenticate
// is a pure predicate with no side effects.
type Authenticator struct {
	expected string
}

// NewAuthenticator creates an Authenticator for the given secret.
// An empty secret is a configuration error.
func NewAuthenticator(secret string) (*Authenticator, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	return &Authenticator{expected: Hash(secret)}, nil
}

// Authenticate reports whether the candidate credential matches the
// configured secret.
func (a *Authenticator) Authenticate(candidate string) bool {
	return digestsEqual(a.expected, Hash(candidate))
}

// digestsEqual compares candidate against expected over the full length of
// the expected digest, accumulating differences with XOR instead of
// returning on the first mismatch. The comparison cost is independent of
// where digests diverge, which blunts timing attacks against the credential
// check. Positions past the end of a shorter candidate count as mismatches.
func digestsEqual(expected, candidate string) bool {
	var diff byte
	for i := 0; i < len(expected); i++ {
		c := ^expected[i] // any value differing from expected[i]
		if i < len(candidate) {
			c = candidate[i]
		}
		diff |= expected[i] ^ c
	}
	return diff == 0
}
