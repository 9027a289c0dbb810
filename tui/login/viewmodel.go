package login

import (
	"context"
	"errors"
	"sync"

	"octodash-cli/api"
	"octodash-cli/auth"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Repository is the authentication backend the view model drives
type Repository interface {
	Login(ctx context.Context, username, password string) (*api.UserInfo, error)
	FetchAutoLogin(ctx context.Context) (*auth.AutoLoginEvent, error)
}

// Option configures a ViewModel
type Option func(*ViewModel)

// WithLogger sets the logger used for attempt tracing
func WithLogger(logger *zap.Logger) Option {
	return func(vm *ViewModel) {
		if logger != nil {
			vm.logger = logger
		}
	}
}

// WithoutAutoLogin skips fetching and replaying stored credentials
func WithoutAutoLogin() Option {
	return func(vm *ViewModel) {
		vm.autoLogin = false
	}
}

// ViewModel owns the login screen's state and the work that changes it.
// Everything it starts is bound to its lifetime and stopped by Close.
type ViewModel struct {
	repo      Repository
	store     *Store
	logger    *zap.Logger
	autoLogin bool

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	mu     sync.Mutex
	closed bool
}

// NewViewModel creates the view model and, unless disabled, starts the
// auto-login watcher and the one-shot fetch of stored credentials.
func NewViewModel(repo Repository, opts ...Option) *ViewModel {
	ctx, cancel := context.WithCancel(context.Background())
	vm := &ViewModel{
		repo:      repo,
		store:     NewStore(InitialViewState()),
		logger:    zap.NewNop(),
		autoLogin: true,
		ctx:       ctx,
		cancel:    cancel,
	}
	for _, opt := range opts {
		opt(vm)
	}

	if vm.autoLogin {
		states := vm.store.Observe(ctx)
		vm.wg.Add(2)
		go vm.watchAutoLogin(states)
		go vm.fetchAutoLogin()
	}

	return vm
}

// ObserveViewState streams deduplicated states until ctx is done or Close is called
func (vm *ViewModel) ObserveViewState(ctx context.Context) <-chan ViewState {
	return vm.store.Observe(ctx)
}

// CurrentViewState returns the latest snapshot
func (vm *ViewModel) CurrentViewState() ViewState {
	return vm.store.Current()
}

// Login validates the input and, if both fields are set, starts an attempt.
// Idle and Loading are published before Login returns; the outcome follows
// asynchronously.
func (vm *ViewModel) Login(username, password string) {
	if username == "" || password == "" {
		vm.store.Update(func(s ViewState) ViewState {
			s.IsLoading = false
			s.Err = auth.ErrEmptyInput
			s.LoginInfo = nil
			s.AutoLoginEvent = nil
			return s
		})
		return
	}

	vm.mu.Lock()
	if vm.closed {
		vm.mu.Unlock()
		return
	}
	vm.wg.Add(1)
	vm.mu.Unlock()

	log := vm.logger.With(zap.String("attempt", uuid.NewString()), zap.String("username", username))
	vm.apply(IdleResult())
	vm.apply(LoadingResult())
	log.Debug("login started")

	go func() {
		defer vm.wg.Done()

		user, err := vm.repo.Login(vm.ctx, username, password)
		if err == nil && user == nil {
			err = auth.ErrUnknown
		}
		err = auth.HandleError(err)

		if vm.ctx.Err() != nil {
			log.Debug("login outcome dropped", zap.Error(vm.ctx.Err()))
			return
		}
		if err != nil {
			log.Info("login failed", zap.Error(err))
			vm.apply(FailureResult(err))
			return
		}
		log.Info("login succeeded", zap.String("login", user.Login))
		vm.apply(SuccessResult(user))
	}()
}

// OnAutoLoginEventUsed tells the view model the screen has consumed the event
func (vm *ViewModel) OnAutoLoginEventUsed() {
	vm.store.Update(func(s ViewState) ViewState {
		s.IsLoading = false
		s.Err = nil
		s.UseAutoLoginEvent = false
		s.LoginInfo = nil
		return s
	})
}

// Logout forgets the signed-in user and any pending auto-login
func (vm *ViewModel) Logout() {
	vm.store.Update(func(s ViewState) ViewState {
		return InitialViewState()
	})
}

// Close cancels in-flight work, releases all subscribers and waits for
// background goroutines to finish.
func (vm *ViewModel) Close() {
	vm.mu.Lock()
	if vm.closed {
		vm.mu.Unlock()
		return
	}
	vm.closed = true
	vm.mu.Unlock()

	vm.cancel()
	vm.store.Close()
	vm.wg.Wait()
}

func (vm *ViewModel) apply(r Result) {
	vm.store.Update(r.Reduce)
}

// watchAutoLogin replays each new enabled auto-login event once
func (vm *ViewModel) watchAutoLogin(states <-chan ViewState) {
	defer vm.wg.Done()

	var handled *auth.AutoLoginEvent
	for state := range states {
		event := state.AutoLoginEvent
		if event == nil || event == handled {
			continue
		}
		handled = event
		if !event.Enabled {
			vm.logger.Debug("auto-login disabled")
			continue
		}
		vm.logger.Info("replaying stored credentials", zap.String("username", event.Username))
		vm.Login(event.Username, event.Password)
	}
}

func (vm *ViewModel) fetchAutoLogin() {
	defer vm.wg.Done()

	event, err := vm.repo.FetchAutoLogin(vm.ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		vm.logger.Warn("failed to read stored credentials", zap.Error(err))
		event = auth.DisabledAutoLogin()
	}
	if event == nil {
		return
	}

	vm.store.Update(func(s ViewState) ViewState {
		s.IsLoading = false
		s.Err = nil
		s.AutoLoginEvent = event
		s.UseAutoLoginEvent = event.Enabled
		s.LoginInfo = nil
		return s
	})
}
