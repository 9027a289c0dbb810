package login

import (
	"context"
	"strings"

	"octodash-cli/api"
	"octodash-cli/auth"
	"octodash-cli/tui/components/footer"
	"octodash-cli/tui/keys"
	"octodash-cli/tui/styles"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Component renders the login form from the view model's state
type Component struct {
	inputs    []textinput.Model
	focusIdx  int
	state     ViewState
	states    <-chan ViewState
	prefilled *auth.AutoLoginEvent
	viewModel *ViewModel
	keys      *keys.Handler
	footer    *footer.Component
	spinner   spinner.Model
}

// New creates a login component subscribed to vm for as long as vm lives
func New(vm *ViewModel) *Component {
	username := textinput.New()
	username.Placeholder = "Username"
	username.Focus()
	username.CharLimit = 64
	username.Width = 32

	password := textinput.New()
	password.Placeholder = "Token"
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	password.CharLimit = 128
	password.Width = 32

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = styles.HeaderStyle

	return &Component{
		inputs:    []textinput.Model{username, password},
		focusIdx:  0,
		state:     vm.CurrentViewState(),
		states:    vm.ObserveViewState(context.Background()),
		viewModel: vm,
		keys:      keys.NewHandler(),
		footer:    footer.New(),
		spinner:   spin,
	}
}

// Init starts the cursor blink, the spinner and the state subscription
func (c *Component) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, c.spinner.Tick, WaitForViewState(c.states))
}

// Update handles messages for the login component
func (c *Component) Update(msg tea.Msg) (*Component, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case c.keys.IsTab(msg):
			if msg.String() == "shift+tab" {
				c.focusIdx--
			} else {
				c.focusIdx++
			}
			if c.focusIdx > 1 {
				c.focusIdx = 0
			} else if c.focusIdx < 0 {
				c.focusIdx = 1
			}
			c.updateFocus()
			return c, nil
		case c.keys.IsSubmit(msg):
			if c.focusIdx == 1 && !c.state.IsLoading {
				c.viewModel.Login(c.GetUsername(), c.GetPassword())
				return c, nil
			}
			c.focusIdx = 1
			c.updateFocus()
			return c, nil
		default:
			// Pass all other keys to the focused input only
			c.inputs[c.focusIdx], cmd = c.inputs[c.focusIdx].Update(msg)
			return c, cmd
		}
	case ViewStateMsg:
		c.state = msg.State
		c.applyAutoLogin()
		return c, WaitForViewState(c.states)
	case spinner.TickMsg:
		c.spinner, cmd = c.spinner.Update(msg)
		return c, cmd
	}

	// Cursor blink and other input-internal messages
	c.inputs[c.focusIdx], cmd = c.inputs[c.focusIdx].Update(msg)
	return c, cmd
}

// applyAutoLogin copies replayed credentials into the form once per event
func (c *Component) applyAutoLogin() {
	event := c.state.AutoLoginEvent
	if !c.state.UseAutoLoginEvent || event == nil {
		return
	}
	if c.prefilled == event {
		return
	}

	c.inputs[0].SetValue(event.Username)
	c.inputs[1].SetValue(event.Password)
	c.prefilled = event
	c.viewModel.OnAutoLoginEventUsed()
}

// GetUsername returns the current username input
func (c *Component) GetUsername() string {
	return c.inputs[0].Value()
}

// GetPassword returns the current password input
func (c *Component) GetPassword() string {
	return c.inputs[1].Value()
}

// State returns the last state received from the view model
func (c *Component) State() ViewState {
	return c.state
}

// LoggedInUser returns the signed-in user, or nil
func (c *Component) LoggedInUser() *api.UserInfo {
	return c.state.LoginInfo
}

// Reset clears the form and focuses the username field
func (c *Component) Reset() {
	for i := range c.inputs {
		c.inputs[i].SetValue("")
	}
	c.focusIdx = 0
	c.updateFocus()
}

// View renders the login component
func (c *Component) View() string {
	var inputs []string
	for i := range c.inputs {
		input := c.inputs[i].View()
		if i == c.focusIdx {
			input += styles.CursorStyle.Render("█")
		}
		inputs = append(inputs, input)
	}

	content := "Username: " + inputs[0] + "\n" +
		"Token:    " + inputs[1] + "\n" +
		strings.Repeat(" ", 2) + c.footer.View(c.keys.Login()...)

	if c.state.Err != nil {
		content += "\n" + styles.ErrorStyle.Render(c.state.Err.Error())
	}
	if c.state.IsLoading {
		content += "\n" + c.spinner.View() + styles.HeaderStyle.Render("Logging in...")
	}

	return styles.BoxStyle.Render(content)
}

// updateFocus updates which input has focus
func (c *Component) updateFocus() {
	for i := 0; i < len(c.inputs); i++ {
		if i == c.focusIdx {
			c.inputs[i].Focus()
		} else {
			c.inputs[i].Blur()
		}
	}
}
