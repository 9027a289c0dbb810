package profile

import (
	"fmt"
	"strconv"

	"octodash-cli/api"
	"octodash-cli/tui/components/footer"
	"octodash-cli/tui/keys"
	"octodash-cli/tui/styles"

	tea "github.com/charmbracelet/bubbletea"
	btable "github.com/evertras/bubble-table/table"
)

const (
	columnField = "field"
	columnValue = "value"
)

// Component shows the signed-in account
type Component struct {
	table     btable.Model
	user      *api.UserInfo
	autoLogin bool
	keys      *keys.Handler
	footer    *footer.Component
}

// New creates an empty profile component
func New() *Component {
	columns := []btable.Column{
		btable.NewColumn(columnField, "Field", 16),
		btable.NewColumn(columnValue, "Value", 40),
	}

	return &Component{
		table:  btable.New(columns).WithBaseStyle(styles.TableStyle),
		keys:   keys.NewHandler(),
		footer: footer.New(),
	}
}

// SetUser replaces the displayed account
func (c *Component) SetUser(user api.UserInfo, autoLogin bool) {
	c.user = &user
	c.autoLogin = autoLogin
	c.refreshTable()
}

// User returns the displayed account, or nil
func (c *Component) User() *api.UserInfo {
	return c.user
}

// AutoLogin reports the auto-login setting shown on screen
func (c *Component) AutoLogin() bool {
	return c.autoLogin
}

// Update handles Bubble Tea messages
func (c *Component) Update(msg tea.Msg) (*Component, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch {
	case c.keys.IsLogout(keyMsg):
		return c, LogoutCommand()
	case c.keys.IsToggleAutoLogin(keyMsg):
		c.autoLogin = !c.autoLogin
		c.refreshTable()
		return c, AutoLoginToggledCommand(c.autoLogin)
	}
	return c, nil
}

// View renders the profile table
func (c *Component) View() string {
	if c.user == nil {
		return styles.HintStyle.Render("Not signed in")
	}

	header := styles.HeaderStyle.Render(fmt.Sprintf("Signed in as %s", c.user.DisplayName()))
	return header + "\n\n" + c.table.View() + "\n" + c.footer.View(c.keys.Profile()...)
}

// refreshTable rebuilds the rows from the current user
func (c *Component) refreshTable() {
	if c.user == nil {
		c.table = c.table.WithRows(nil)
		return
	}

	fields := [][2]string{
		{"Login", c.user.Login},
		{"Name", c.user.Name},
		{"Email", c.user.Email},
		{"Profile", c.user.HTMLURL},
		{"Public repos", strconv.Itoa(c.user.PublicRepos)},
		{"Followers", strconv.Itoa(c.user.Followers)},
		{"Following", strconv.Itoa(c.user.Following)},
		{"Auto-login", onOff(c.autoLogin)},
	}

	var rows []btable.Row
	for _, f := range fields {
		if f[1] == "" {
			continue
		}
		rows = append(rows, btable.NewRow(btable.RowData{
			columnField: f[0],
			columnValue: f[1],
		}))
	}
	c.table = c.table.WithRows(rows)
}

func onOff(enabled bool) string {
	if enabled {
		return "on"
	}
	return "off"
}
