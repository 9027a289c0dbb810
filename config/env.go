package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

const (
	ProviderGitHub   = "github"
	ProviderSupabase = "supabase"

	defaultGitHubURL = "https://api.github.com"
)

// These are empty by default. Production builds override them via -ldflags.
var (
	embeddedBaseURL  string
	embeddedProvider string
)

// Env holds settings read from the process environment and an optional .env file
type Env struct {
	Provider    string
	BaseURL     string
	SupabaseURL string
	SupabaseKey string
	LogLevel    string
}

// LoadEnv reads .env (if present) and the environment
func LoadEnv() (Env, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Env{}, fmt.Errorf("failed to load environment: %w", err)
	}

	env := Env{
		Provider:    firstNonEmpty(embeddedProvider, os.Getenv("OCTODASH_PROVIDER"), ProviderGitHub),
		BaseURL:     firstNonEmpty(embeddedBaseURL, os.Getenv("GITHUB_API_URL"), defaultGitHubURL),
		SupabaseURL: os.Getenv("SUPABASE_URL"),
		SupabaseKey: os.Getenv("SUPABASE_KEY"),
		LogLevel:    firstNonEmpty(os.Getenv("OCTODASH_LOG_LEVEL"), "info"),
	}

	if env.Provider != ProviderGitHub && env.Provider != ProviderSupabase {
		return Env{}, fmt.Errorf("unknown provider %q", env.Provider)
	}
	return env, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
