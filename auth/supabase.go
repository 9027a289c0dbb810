package auth

import (
	"context"
	"fmt"
	"strings"

	"octodash-cli/api"

	"github.com/supabase-community/supabase-go"
)

// SupabaseAuth implements AuthProvider using Supabase
type SupabaseAuth struct {
	client *supabase.Client
}

// NewSupabaseAuth creates a new Supabase authentication provider
func NewSupabaseAuth(client *supabase.Client) *SupabaseAuth {
	return &SupabaseAuth{client: client}
}

// SignIn authenticates a user with Supabase
func (s *SupabaseAuth) SignIn(ctx context.Context, username, password string) (*Session, error) {
	if s.client == nil {
		return nil, fmt.Errorf("%w: supabase client is not configured", ErrUnknown)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	authResponse, err := s.client.Auth.SignInWithEmailPassword(username, password)
	if err != nil {
		if isRejectedLogin(err) {
			return nil, fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
		}
		return nil, err
	}

	user := api.UserInfo{
		Login: authResponse.User.Email,
		Email: authResponse.User.Email,
	}
	if name, ok := authResponse.User.UserMetadata["name"].(string); ok {
		user.Name = name
	}
	return &Session{User: user, AccessToken: authResponse.AccessToken}, nil
}

// isRejectedLogin recognises gotrue's answer to a wrong email or password
func isRejectedLogin(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "invalid_grant") || strings.Contains(msg, "invalid login credentials")
}
