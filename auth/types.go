package auth

// AutoLoginEvent carries stored credentials to replay at startup
type AutoLoginEvent struct {
	Enabled  bool
	Username string
	Password string
}

// DisabledAutoLogin is used when stored credentials could not be read
func DisabledAutoLogin() *AutoLoginEvent {
	return &AutoLoginEvent{Enabled: false, Username: "", Password: ""}
}
