package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"octodash-cli/config"

	"github.com/olekukonko/tablewriter"
)

// WhoamiCmd prints the stored account
type WhoamiCmd struct {
	store interface {
		Load() (config.Config, error)
	}
	out io.Writer
}

// NewWhoamiCmd creates a whoami command backed by the config manager
func NewWhoamiCmd(manager *config.ConfigManager, out io.Writer) *WhoamiCmd {
	return &WhoamiCmd{store: manager, out: out}
}

// Execute runs the whoami command
func (c *WhoamiCmd) Execute(args []string) error {
	cfg, err := c.store.Load()
	if errors.Is(err, config.ErrNoConfig) || (err == nil && cfg.Username == "") {
		fmt.Fprintln(c.out, "Not logged in. Run 'octodash login' first.")
		return nil
	}
	if err != nil {
		return err
	}

	provider := cfg.Provider
	if provider == "" {
		provider = "-"
	}
	autoLogin := "on"
	if cfg.DisableAutoLogin {
		autoLogin = "off"
	}
	updated := "-"
	if !cfg.LastUpdated.IsZero() {
		updated = cfg.LastUpdated.Format(time.RFC3339)
	}

	table := tablewriter.NewWriter(c.out)
	table.Header("Field", "Value")
	rows := [][]string{
		{"Username", cfg.Username},
		{"Token", maskSecret(cfg.AccessToken)},
		{"Provider", provider},
		{"Auto-login", autoLogin},
		{"Last updated", updated},
	}
	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}

// maskSecret keeps only the last four characters visible
func maskSecret(secret string) string {
	if secret == "" {
		return "-"
	}
	if len(secret) <= 4 {
		return "****"
	}
	return strings.Repeat("*", 8) + secret[len(secret)-4:]
}
