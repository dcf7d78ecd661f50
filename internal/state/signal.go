package state

import (
	"sync"
	"sync/atomic"
)

// Observable is anything that can announce a change to its listeners.
type Observable interface {
	OnChange(fn func()) (unsubscribe func())
}

type subscriber[T any] struct {
	id int
	fn func(T)
}

// Signal holds an immutable snapshot of T. Readers always see a complete
// value; writers replace it wholesale and notify subscribers synchronously.
//
// A Set issued on a signal while that same signal is notifying is queued and
// applied once the current round finishes. Setting other signals from a
// subscriber is allowed.
type Signal[T any] struct {
	current atomic.Pointer[T]

	mu          sync.Mutex
	subscribers []subscriber[T]
	nextID      int
	notifying   bool
	pending     []T
}

func NewSignal[T any](initial T) *Signal[T] {
	s := &Signal[T]{}
	s.current.Store(&initial)

	return s
}

func (s *Signal[T]) Get() T {
	return *s.current.Load()
}

func (s *Signal[T]) Set(value T) {
	s.mu.Lock()
	if s.notifying {
		s.pending = append(s.pending, value)
		s.mu.Unlock()

		return
	}
	s.notifying = true
	s.mu.Unlock()

	for {
		s.current.Store(&value)

		for _, sub := range s.snapshotSubscribers() {
			sub.fn(value)
		}

		s.mu.Lock()
		if len(s.pending) == 0 {
			s.notifying = false
			s.mu.Unlock()

			return
		}

		value = s.pending[0]
		s.pending = s.pending[1:]
		s.mu.Unlock()
	}
}

// Update sets the result of fn applied to the current snapshot.
func (s *Signal[T]) Update(fn func(T) T) {
	s.Set(fn(s.Get()))
}

// Subscribe registers fn to run after every Set. Subscribers run in
// registration order.
func (s *Signal[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.subscribers = append(s.subscribers, subscriber[T]{id: id, fn: fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		for i, sub := range s.subscribers {
			if sub.id == id {
				s.subscribers = append(s.subscribers[:i:i], s.subscribers[i+1:]...)
				return
			}
		}
	}
}

func (s *Signal[T]) OnChange(fn func()) (unsubscribe func()) {
	return s.Subscribe(func(T) { fn() })
}

func (s *Signal[T]) snapshotSubscribers() []subscriber[T] {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]subscriber[T](nil), s.subscribers...)
}
