package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"octodash-cli/auth"
	"octodash-cli/tui/login"

	"go.uber.org/zap"
)

// LoginCmd signs in without the TUI and stores the credentials
type LoginCmd struct {
	Username string
	Password string

	repo   login.Repository
	logger *zap.Logger
	in     io.Reader
	out    io.Writer
}

// NewLoginCmd creates a login command reading prompts from in and reporting to out
func NewLoginCmd(repo login.Repository, logger *zap.Logger, in io.Reader, out io.Writer) *LoginCmd {
	return &LoginCmd{
		repo:   repo,
		logger: logger,
		in:     in,
		out:    out,
	}
}

// Execute runs the login command
func (c *LoginCmd) Execute(args []string) error {
	reader := bufio.NewReader(c.in)

	if c.Username == "" {
		username, err := c.prompt(reader, "Enter username: ")
		if err != nil {
			return err
		}
		c.Username = username
	}

	if c.Password == "" {
		password, err := c.prompt(reader, "Enter token: ")
		if err != nil {
			return err
		}
		c.Password = password
	}

	vm := login.NewViewModel(c.repo, login.WithoutAutoLogin(), login.WithLogger(c.logger))
	defer vm.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	states := vm.ObserveViewState(ctx)
	vm.Login(c.Username, c.Password)

	for state := range states {
		switch {
		case state.Err != nil:
			fmt.Fprintf(c.out, "Login failed: %v\n", state.Err)
			return state.Err
		case state.LoginInfo != nil:
			fmt.Fprintf(c.out, "Logged in as %s. Configuration saved.\n", state.LoginInfo.DisplayName())
			return nil
		case state.IsLoading:
			fmt.Fprintln(c.out, "Logging in...")
		}
	}

	return auth.ErrUnknown
}

func (c *LoginCmd) prompt(reader *bufio.Reader, label string) (string, error) {
	fmt.Fprint(c.out, label)
	line, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
