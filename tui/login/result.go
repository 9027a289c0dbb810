package login

import (
	"fmt"

	"octodash-cli/api"
)

// ResultKind tags the outcome of one login attempt
type ResultKind int

const (
	// ResultIdle - attempt accepted, nothing in flight yet
	ResultIdle ResultKind = iota

	// ResultLoading - request sent to the repository
	ResultLoading

	// ResultSuccess - repository returned a user
	ResultSuccess

	// ResultFailure - repository or validation returned an error
	ResultFailure
)

// String returns a human-readable representation of the kind
func (k ResultKind) String() string {
	switch k {
	case ResultIdle:
		return "Idle"
	case ResultLoading:
		return "Loading"
	case ResultSuccess:
		return "Success"
	case ResultFailure:
		return "Failure"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// Result is the transient outcome of a login attempt before it is folded into ViewState
type Result struct {
	Kind ResultKind
	Data *api.UserInfo
	Err  error
}

func IdleResult() Result    { return Result{Kind: ResultIdle} }
func LoadingResult() Result { return Result{Kind: ResultLoading} }

func SuccessResult(user *api.UserInfo) Result {
	return Result{Kind: ResultSuccess, Data: user}
}

func FailureResult(err error) Result {
	return Result{Kind: ResultFailure, Err: err}
}

// Reduce folds r into s and returns the new state.
// Both terminal kinds clear IsLoading so the screen stops showing progress.
func (r Result) Reduce(s ViewState) ViewState {
	switch r.Kind {
	case ResultLoading:
		s.IsLoading = true
		s.Err = nil
		s.LoginInfo = nil
	case ResultIdle:
		s.IsLoading = false
		s.Err = nil
		s.LoginInfo = nil
	case ResultFailure:
		s.IsLoading = false
		s.Err = r.Err
		s.LoginInfo = nil
	case ResultSuccess:
		s.IsLoading = false
		s.Err = nil
		s.LoginInfo = r.Data
	}
	return s
}
