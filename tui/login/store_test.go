package login

import (
	"context"
	"testing"
	"time"

	"octodash-cli/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const receiveTimeout = 2 * time.Second

func receive(t *testing.T, ch <-chan ViewState) ViewState {
	t.Helper()
	select {
	case s, ok := <-ch:
		require.True(t, ok, "channel closed unexpectedly")
		return s
	case <-time.After(receiveTimeout):
		t.Fatal("timed out waiting for view state")
		return ViewState{}
	}
}

func assertQuiet(t *testing.T, ch <-chan ViewState) {
	t.Helper()
	select {
	case s, ok := <-ch:
		if ok {
			t.Fatalf("unexpected view state %+v", s)
		}
	case <-time.After(50 * time.Millisecond):
	}
}

func TestStore_ObserveStartsWithCurrent(t *testing.T) {
	store := NewStore(ViewState{IsLoading: true})
	defer store.Close()

	states := store.Observe(context.Background())

	assert.True(t, receive(t, states).IsLoading)
}

func TestStore_LateSubscriberSeesLatest(t *testing.T) {
	store := NewStore(InitialViewState())
	defer store.Close()

	store.Update(LoadingResult().Reduce)
	states := store.Observe(context.Background())

	assert.True(t, receive(t, states).IsLoading)
}

func TestStore_SkipsConsecutiveDuplicates(t *testing.T) {
	store := NewStore(InitialViewState())
	defer store.Close()
	states := store.Observe(context.Background())
	receive(t, states)

	store.Update(LoadingResult().Reduce)
	store.Update(LoadingResult().Reduce)
	store.Update(IdleResult().Reduce)
	store.Update(IdleResult().Reduce)

	assert.True(t, receive(t, states).IsLoading)
	assert.False(t, receive(t, states).IsLoading)
	assertQuiet(t, states)
}

func TestStore_KeepsOrderForSlowReaders(t *testing.T) {
	store := NewStore(InitialViewState())
	defer store.Close()
	states := store.Observe(context.Background())

	user := &api.UserInfo{Login: "octocat"}
	store.Update(IdleResult().Reduce)
	store.Update(LoadingResult().Reduce)
	store.Update(SuccessResult(user).Reduce)

	// initial and Idle are equal, so only one of them is delivered
	assert.False(t, receive(t, states).IsLoading)
	assert.True(t, receive(t, states).IsLoading)
	final := receive(t, states)
	assert.Equal(t, user, final.LoginInfo)
	assert.False(t, final.IsLoading)
}

func TestStore_FanOut(t *testing.T) {
	store := NewStore(InitialViewState())
	defer store.Close()
	first := store.Observe(context.Background())
	second := store.Observe(context.Background())
	receive(t, first)
	receive(t, second)

	store.Update(LoadingResult().Reduce)

	assert.True(t, receive(t, first).IsLoading)
	assert.True(t, receive(t, second).IsLoading)
}

func TestStore_CancelClosesChannel(t *testing.T) {
	store := NewStore(InitialViewState())
	defer store.Close()
	ctx, cancel := context.WithCancel(context.Background())
	states := store.Observe(ctx)
	receive(t, states)

	cancel()

	require.Eventually(t, func() bool {
		select {
		case _, ok := <-states:
			return !ok
		default:
			return false
		}
	}, receiveTimeout, 5*time.Millisecond)

	store.mu.Lock()
	defer store.mu.Unlock()
	assert.Empty(t, store.subs)
}

func TestStore_CloseReleasesSubscribers(t *testing.T) {
	store := NewStore(InitialViewState())
	states := store.Observe(context.Background())
	receive(t, states)

	store.Close()
	store.Close()

	_, ok := <-states
	assert.False(t, ok)

	late := store.Observe(context.Background())
	_, ok = <-late
	assert.False(t, ok)

	updated := store.Update(LoadingResult().Reduce)
	assert.True(t, updated.IsLoading)
	assert.True(t, store.Current().IsLoading)
}
