package auth

import (
	"context"
	"errors"
	"fmt"

	"octodash-cli/api"
	"octodash-cli/config"

	"go.uber.org/zap"
)

// LoginRepository signs users in and hands stored credentials back for auto-login
type LoginRepository struct {
	provider AuthProvider
	writer   ConfigWriter
	store    CredentialStore
	logger   *zap.Logger
}

// NewLoginRepository creates a repository with dependency injection
func NewLoginRepository(provider AuthProvider, writer ConfigWriter, store CredentialStore, logger *zap.Logger) *LoginRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LoginRepository{
		provider: provider,
		writer:   writer,
		store:    store,
		logger:   logger,
	}
}

// Login signs in and persists the credentials on success
func (r *LoginRepository) Login(ctx context.Context, username, password string) (*api.UserInfo, error) {
	session, err := r.provider.SignIn(ctx, username, password)
	if err != nil {
		r.logger.Info("sign in rejected", zap.String("username", username), zap.Error(err))
		return nil, err
	}

	if err := r.writer.UpdateAuthConfig(username, password, session.AccessToken); err != nil {
		r.logger.Error("failed to save credentials", zap.Error(err))
		return nil, fmt.Errorf("failed to save config: %w", err)
	}

	r.logger.Info("signed in", zap.String("username", username), zap.String("login", session.User.Login))
	user := session.User
	return &user, nil
}

// FetchAutoLogin returns the stored credentials, or nil when nothing is stored
func (r *LoginRepository) FetchAutoLogin(ctx context.Context) (*AutoLoginEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg, err := r.store.Load()
	if errors.Is(err, config.ErrNoConfig) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if cfg.Username == "" || cfg.Password == "" {
		return nil, nil
	}

	return &AutoLoginEvent{
		Enabled:  !cfg.DisableAutoLogin,
		Username: cfg.Username,
		Password: cfg.Password,
	}, nil
}
