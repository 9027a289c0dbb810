package login

import (
	"context"
	"sync"
)

// Store holds the latest ViewState and fans every change out to its subscribers.
// Each subscriber has its own ordered queue, so a slow reader never blocks Update
// and never misses an intermediate state.
type Store struct {
	mu     sync.Mutex
	state  ViewState
	subs   map[*subscription]struct{}
	closed bool
}

type subscription struct {
	mu      sync.Mutex
	queue   []ViewState
	last    ViewState
	hasLast bool
	signal  chan struct{}
	done    chan struct{}
}

// NewStore creates a store seeded with initial
func NewStore(initial ViewState) *Store {
	return &Store{
		state: initial,
		subs:  make(map[*subscription]struct{}),
	}
}

// Current returns the latest snapshot
func (s *Store) Current() ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Update atomically replaces the state with transform(current) and notifies subscribers
func (s *Store) Update(transform func(ViewState) ViewState) ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = transform(s.state)
	for sub := range s.subs {
		sub.push(s.state)
	}
	return s.state
}

// Observe returns a channel that yields the current state and then every
// change, skipping values equal to the previous one. The channel is closed
// when ctx is done or the store is closed.
func (s *Store) Observe(ctx context.Context) <-chan ViewState {
	out := make(chan ViewState)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		close(out)
		return out
	}
	sub := &subscription{
		signal: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
	sub.push(s.state)
	s.subs[sub] = struct{}{}
	s.mu.Unlock()

	go s.deliver(ctx, sub, out)
	return out
}

// Close releases every subscriber. Updates after Close only change Current.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	for sub := range s.subs {
		close(sub.done)
		delete(s.subs, sub)
	}
}

func (s *Store) deliver(ctx context.Context, sub *subscription, out chan<- ViewState) {
	defer close(out)

	for {
		next, ok := sub.pop()
		if !ok {
			select {
			case <-sub.signal:
				continue
			case <-sub.done:
				return
			case <-ctx.Done():
				s.unsubscribe(sub)
				return
			}
		}

		select {
		case out <- next:
		case <-sub.done:
			return
		case <-ctx.Done():
			s.unsubscribe(sub)
			return
		}
	}
}

func (s *Store) unsubscribe(sub *subscription) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.subs, sub)
}

func (sub *subscription) push(v ViewState) {
	sub.mu.Lock()
	if sub.hasLast && sub.last.Equal(v) {
		sub.mu.Unlock()
		return
	}
	sub.last = v
	sub.hasLast = true
	sub.queue = append(sub.queue, v)
	sub.mu.Unlock()

	select {
	case sub.signal <- struct{}{}:
	default:
	}
}

func (sub *subscription) pop() (ViewState, bool) {
	sub.mu.Lock()
	defer sub.mu.Unlock()

	if len(sub.queue) == 0 {
		return ViewState{}, false
	}
	v := sub.queue[0]
	sub.queue = sub.queue[1:]
	return v, true
}
