package auth

import (
	"context"
	"errors"
	"testing"

	"octodash-cli/api"
)

type mockAPIClient struct {
	user *api.UserInfo
	err  error
}

func (m *mockAPIClient) FetchUser(ctx context.Context, username, token string) (*api.UserInfo, error) {
	return m.user, m.err
}

func TestGitHubAuth_SignIn(t *testing.T) {
	// Arrange
	provider := NewGitHubAuth(&mockAPIClient{user: &api.UserInfo{Login: "octocat"}})

	// Act
	session, err := provider.SignIn(context.Background(), "octocat", "ghp_token")

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if session.User.Login != "octocat" {
		t.Errorf("Expected login octocat, got %q", session.User.Login)
	}
	if session.AccessToken != "ghp_token" {
		t.Errorf("Expected token to be the password, got %q", session.AccessToken)
	}
}

func TestGitHubAuth_SignIn_Error(t *testing.T) {
	apiErr := &api.StatusError{Code: 401}
	provider := NewGitHubAuth(&mockAPIClient{err: apiErr})

	_, err := provider.SignIn(context.Background(), "octocat", "bad")

	if !errors.Is(err, apiErr) {
		t.Errorf("Expected API error to pass through, got %v", err)
	}
}

func TestSupabaseAuth_NoClient(t *testing.T) {
	provider := NewSupabaseAuth(nil)

	_, err := provider.SignIn(context.Background(), "user@example.com", "pass")

	if !errors.Is(err, ErrUnknown) {
		t.Errorf("Expected ErrUnknown, got %v", err)
	}
}

func TestIsRejectedLogin(t *testing.T) {
	if !isRejectedLogin(errors.New(`response status code 400: {"error":"invalid_grant"}`)) {
		t.Error("Expected invalid_grant to be recognised")
	}
	if isRejectedLogin(errors.New("connection refused")) {
		t.Error("Expected transport error not to be recognised")
	}
}
