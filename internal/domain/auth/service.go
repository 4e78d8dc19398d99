package auth

import "context"

// AuthService authenticates employees and issues access tokens.
type AuthService interface {
	// Login verifies the employee code and password and returns a signed
	// access token.
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)

	// EnsureDefaultAdmin creates the bootstrap admin account when no admin
	// exists yet.
	EnsureDefaultAdmin(ctx context.Context) error
}
