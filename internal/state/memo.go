package state

// Memo is a derived view recomputed whenever one of its sources changes.
// A Memo is itself Observable, so memos can be chained.
type Memo[T any] struct {
	value   *Signal[T]
	compute func() T
	unsubs  []func()
}

func NewMemo[T any](compute func() T, sources ...Observable) *Memo[T] {
	m := &Memo[T]{
		value:   NewSignal(compute()),
		compute: compute,
	}

	for _, source := range sources {
		m.unsubs = append(m.unsubs, source.OnChange(m.recompute))
	}

	return m
}

func (m *Memo[T]) Get() T {
	return m.value.Get()
}

func (m *Memo[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	return m.value.Subscribe(fn)
}

func (m *Memo[T]) OnChange(fn func()) (unsubscribe func()) {
	return m.value.OnChange(fn)
}

// Stop detaches the memo from its sources; Get keeps returning the last value.
func (m *Memo[T]) Stop() {
	for _, unsub := range m.unsubs {
		unsub()
	}
	m.unsubs = nil
}

func (m *Memo[T]) recompute() {
	m.value.Set(m.compute())
}
