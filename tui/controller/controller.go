package controller

import (
	"octodash-cli/config"
	"octodash-cli/tui/keys"
	"octodash-cli/tui/login"
	"octodash-cli/tui/profile"
	"octodash-cli/tui/state"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Settings is the part of the config the TUI can change
type Settings interface {
	Load() (config.Config, error)
	SetAutoLogin(enabled bool) error
	ClearCredentials() error
}

// Controller manages the overall TUI state and coordinates between components
type Controller struct {
	// State management
	stateMachine *state.Machine
	keyHandler   *keys.Handler

	// Components
	viewModel        *login.ViewModel
	loginComponent   *login.Component
	profileComponent *profile.Component

	// Dependencies
	settings Settings
	logger   *zap.Logger

	// Application state
	version  string
	errorMsg string
	quitting bool
}

// New creates a new TUI controller
func New(viewModel *login.ViewModel, settings Settings, version string, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Controller{
		stateMachine:     state.NewMachine(state.Login),
		keyHandler:       keys.NewHandler(),
		viewModel:        viewModel,
		loginComponent:   login.New(viewModel),
		profileComponent: profile.New(),
		settings:         settings,
		logger:           logger,
		version:          version,
	}
}

// Init initializes the controller and returns initial commands
func (c *Controller) Init() tea.Cmd {
	return c.loginComponent.Init()
}

// Screen returns the screen currently shown
func (c *Controller) Screen() state.Screen {
	return c.stateMachine.Current()
}

// Update handles incoming messages and updates the controller state
func (c *Controller) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle global quit
	if keyMsg, ok := msg.(tea.KeyMsg); ok && c.keyHandler.IsQuit(keyMsg) {
		c.quitting = true
		return c, tea.Quit
	}

	// Handle global messages
	switch msg := msg.(type) {
	case login.ViewStateMsg:
		return c.handleViewState(msg)
	case state.TransitionMsg:
		c.logger.Info("screen changed", zap.String("transition", msg.Transition.String()))
		return c, nil
	case state.ErrorMsg:
		c.errorMsg = msg.Error.Error()
		return c, nil
	}

	// Delegate to screen-specific handlers
	switch c.stateMachine.Current() {
	case state.Login:
		var cmd tea.Cmd
		c.loginComponent, cmd = c.loginComponent.Update(msg)
		return c, cmd
	case state.Profile:
		return c.handleProfileState(msg)
	default:
		return c, nil
	}
}

// handleViewState keeps the login component listening on every screen and
// moves to the profile once a user is signed in
func (c *Controller) handleViewState(msg login.ViewStateMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	c.loginComponent, cmd = c.loginComponent.Update(msg)

	user := c.loginComponent.LoggedInUser()
	if user == nil || c.stateMachine.Current() != state.Login {
		return c, cmd
	}

	c.errorMsg = ""
	c.profileComponent.SetUser(*user, c.autoLoginEnabled())
	return c, tea.Batch(cmd, c.stateMachine.Transition(state.Profile))
}

func (c *Controller) handleProfileState(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case profile.LogoutMsg:
		if err := c.settings.ClearCredentials(); err != nil {
			c.logger.Error("failed to clear credentials", zap.Error(err))
			c.errorMsg = "Failed to clear stored credentials: " + err.Error()
		}
		c.viewModel.Logout()
		c.loginComponent.Reset()
		return c, c.stateMachine.Reset(state.Login)
	case profile.AutoLoginToggledMsg:
		if err := c.settings.SetAutoLogin(msg.Enabled); err != nil {
			c.logger.Error("failed to save auto-login setting", zap.Error(err))
			c.errorMsg = "Failed to save setting: " + err.Error()
		}
		return c, nil
	}

	var cmd tea.Cmd
	if _, ok := msg.(tea.KeyMsg); !ok {
		// Keep the spinner and cursor ticking for when the login screen returns
		c.loginComponent, cmd = c.loginComponent.Update(msg)
		return c, cmd
	}
	c.profileComponent, cmd = c.profileComponent.Update(msg)
	return c, cmd
}

func (c *Controller) autoLoginEnabled() bool {
	cfg, err := c.settings.Load()
	if err != nil {
		return true
	}
	return !cfg.DisableAutoLogin
}
