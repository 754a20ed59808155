package reactive

import "sync"

// Accessor reads a signal's current value, tracking it as a dependency of
// whatever computation is currently executing.
type Accessor[T any] func() T

// Setter updates a signal value and notifies subscribers.
type Setter[T any] func(T)

// SetterFunc updates a signal based on its previous value.
type SetterFunc[T any] func(prev T) T

type signalValue[T any] struct {
	value       T
	subscribers map[*computation]struct{}
	mu          sync.RWMutex
}

func (s *signalValue[T]) unsubscribe(c *computation) {
	s.mu.Lock()
	delete(s.subscribers, c)
	s.mu.Unlock()
}

// CreateSignal creates a reactive signal on the global runtime.
func CreateSignal[T any](initial T) (Accessor[T], Setter[T]) {
	return createSignalOn(Global, initial)
}

func createSignalOn[T any](rt *Runtime, initial T) (Accessor[T], Setter[T]) {
	s := &signalValue[T]{value: initial, subscribers: make(map[*computation]struct{})}

	read := func() T {
		s.mu.RLock()
		val := s.value
		s.mu.RUnlock()

		comp := rt.getCurrentComputation()
		if comp != nil {
			s.mu.Lock()
			s.subscribers[comp] = struct{}{}
			s.mu.Unlock()

			comp.mu.Lock()
			comp.subscriptions = append(comp.subscriptions, s)
			comp.mu.Unlock()
		}
		return val
	}

	write := func(newValue T) {
		s.mu.Lock()
		s.value = newValue
		subs := make([]*computation, 0, len(s.subscribers))
		for c := range s.subscribers {
			subs = append(subs, c)
		}
		s.mu.Unlock()

		if rt.getBatchDepth() > 0 {
			for _, c := range subs {
				rt.addPendingComputation(c)
			}
			return
		}
		for _, c := range subs {
			c.execute()
		}
	}

	return read, write
}

// CreateSignalWithEquals creates a signal that skips notification when the
// new value compares equal to the old one under equals.
func CreateSignalWithEquals[T any](initial T, equals func(a, b T) bool) (Accessor[T], Setter[T]) {
	s := &signalValue[T]{value: initial, subscribers: make(map[*computation]struct{})}

	read := func() T {
		s.mu.RLock()
		val := s.value
		s.mu.RUnlock()

		comp := Global.getCurrentComputation()
		if comp != nil {
			s.mu.Lock()
			s.subscribers[comp] = struct{}{}
			s.mu.Unlock()

			comp.mu.Lock()
			comp.subscriptions = append(comp.subscriptions, s)
			comp.mu.Unlock()
		}
		return val
	}

	write := func(newValue T) {
		s.mu.Lock()
		if equals(s.value, newValue) {
			s.mu.Unlock()
			return
		}
		s.value = newValue
		subs := make([]*computation, 0, len(s.subscribers))
		for c := range s.subscribers {
			subs = append(subs, c)
		}
		s.mu.Unlock()

		if Global.getBatchDepth() > 0 {
			for _, c := range subs {
				Global.addPendingComputation(c)
			}
			return
		}
		for _, c := range subs {
			c.execute()
		}
	}

	return read, write
}

// SetWith updates a signal from a function of its previous value.
func SetWith[T any](setter Setter[T], fn SetterFunc[T], getter Accessor[T]) {
	setter(fn(getter()))
}
