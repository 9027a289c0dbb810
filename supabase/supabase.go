package supabase

import (
	"fmt"

	"github.com/supabase-community/supabase-go"
)

// These two vars are empty by default. We will override them via -ldflags in production builds.
var (
	embeddedSupabaseURL string
	embeddedSupabaseKey string
)

// NewSupabaseClient builds a client, preferring the values embedded at build time
func NewSupabaseClient(supabaseURL, supabaseKey string) (*supabase.Client, error) {
	if embeddedSupabaseURL != "" && embeddedSupabaseKey != "" {
		return supabase.NewClient(embeddedSupabaseURL, embeddedSupabaseKey, nil)
	}

	if supabaseURL == "" || supabaseKey == "" {
		return nil, fmt.Errorf("SUPABASE_URL and SUPABASE_KEY must be set in environment variables")
	}

	return supabase.NewClient(supabaseURL, supabaseKey, nil)
}
