package state

import "sync"

// Loop serializes store transitions so that concurrent requests observe the
// same ordering a single event loop would give them. Do is not reentrant.
type Loop struct {
	mu sync.Mutex
}

func NewLoop() *Loop {
	return &Loop{}
}

func (l *Loop) Do(fn func()) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fn()
}

// Run is Do for callbacks that return a value.
func Run[T any](l *Loop, fn func() T) T {
	var result T

	l.Do(func() {
		result = fn()
	})

	return result
}
