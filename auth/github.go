package auth

import (
	"context"

	"octodash-cli/api"
)

// GitHubAuth implements AuthProvider against the GitHub REST API.
// The password is expected to be a personal access token.
type GitHubAuth struct {
	client api.ClientInterface
}

// NewGitHubAuth creates a new GitHub authentication provider
func NewGitHubAuth(client api.ClientInterface) *GitHubAuth {
	return &GitHubAuth{client: client}
}

// SignIn verifies the token by fetching the user it belongs to
func (g *GitHubAuth) SignIn(ctx context.Context, username, password string) (*Session, error) {
	user, err := g.client.FetchUser(ctx, username, password)
	if err != nil {
		return nil, err
	}
	return &Session{User: *user, AccessToken: password}, nil
}
