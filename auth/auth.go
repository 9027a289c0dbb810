package auth

import (
	"context"

	"octodash-cli/api"
	"octodash-cli/config"
)

// Session is what a successful sign-in yields
type Session struct {
	User        api.UserInfo
	AccessToken string
}

// AuthProvider interface for authentication implementations
type AuthProvider interface {
	SignIn(ctx context.Context, username, password string) (*Session, error)
}

// ConfigWriter interface for saving authentication configuration
type ConfigWriter interface {
	UpdateAuthConfig(username, password, accessToken string) error
}

// CredentialStore reads back what ConfigWriter saved
type CredentialStore interface {
	Load() (config.Config, error)
}
