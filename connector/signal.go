package connector

import "sync"

// Signal is a one-shot lifecycle event
type Signal struct {
	once      sync.Once
	done      chan struct{}
	mux       sync.Mutex
	callbacks []func()
}

// Done returns a channel closed when the signal fires
func (s *Signal) Done() <-chan struct{} {
	return s.done
}

// Fired returns true if the signal already fired
func (s *Signal) Fired() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}

// On registers a callback; it runs immediately when the signal already fired
func (s *Signal) On(fn func()) {
	s.mux.Lock()
	if s.Fired() {
		s.mux.Unlock()
		fn()
		return
	}
	s.callbacks = append(s.callbacks, fn)
	s.mux.Unlock()
}

// Fire fires the signal, subsequent calls are no-op
func (s *Signal) Fire() {
	s.once.Do(func() {
		s.mux.Lock()
		close(s.done)
		callbacks := s.callbacks
		s.callbacks = nil
		s.mux.Unlock()
		for _, callback := range callbacks {
			callback()
		}
	})
}

// NewSignal creates a signal
func NewSignal() *Signal {
	return &Signal{done: make(chan struct{})}
}
