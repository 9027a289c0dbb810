package login

import (
	"errors"

	"octodash-cli/api"
	"octodash-cli/auth"
)

// ViewState is an immutable snapshot of everything the login screen renders.
// Pointer fields are shared between snapshots and must not be mutated.
type ViewState struct {
	IsLoading         bool
	Err               error
	LoginInfo         *api.UserInfo
	AutoLoginEvent    *auth.AutoLoginEvent
	UseAutoLoginEvent bool
}

// InitialViewState is the state a new store starts from
func InitialViewState() ViewState {
	return ViewState{}
}

// Equal reports whether two snapshots would render the same
func (s ViewState) Equal(other ViewState) bool {
	return s.IsLoading == other.IsLoading &&
		s.UseAutoLoginEvent == other.UseAutoLoginEvent &&
		sameError(s.Err, other.Err) &&
		sameUser(s.LoginInfo, other.LoginInfo) &&
		sameEvent(s.AutoLoginEvent, other.AutoLoginEvent)
}

func sameError(a, b error) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return errors.Is(a, b) && errors.Is(b, a)
}

func sameUser(a, b *api.UserInfo) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func sameEvent(a, b *auth.AutoLoginEvent) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
