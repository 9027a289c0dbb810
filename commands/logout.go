package commands

import (
	"fmt"
	"io"
)

// LogoutCmd removes the stored credentials
type LogoutCmd struct {
	manager interface {
		ClearCredentials() error
	}
	out io.Writer
}

// NewLogoutCmd creates a logout command
func NewLogoutCmd(manager interface{ ClearCredentials() error }, out io.Writer) *LogoutCmd {
	return &LogoutCmd{manager: manager, out: out}
}

// Execute runs the logout command
func (c *LogoutCmd) Execute(args []string) error {
	if err := c.manager.ClearCredentials(); err != nil {
		return fmt.Errorf("failed to clear credentials: %w", err)
	}
	fmt.Fprintln(c.out, "Logged out.")
	return nil
}
