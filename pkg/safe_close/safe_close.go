// Package safe_close coordinates the shutdown of multiple background
// components. Each component attaches a closure that blocks until the
// close signal fires, then calls done() once its teardown is complete.
package safe_close

import "sync"

type SafeClose struct {
	m sync.Mutex

	closeSignal chan struct{}
	closeErr    error
	closeOnce   sync.Once

	wg sync.WaitGroup
}

func NewSafeClose() *SafeClose {
	return &SafeClose{
		closeSignal: make(chan struct{}),
	}
}

// Attach starts f in its own goroutine. f must call done exactly once
// when its teardown has finished, and should return once closeSignal is
// closed.
func (s *SafeClose) Attach(f func(done func(), closeSignal <-chan struct{})) {
	s.wg.Add(1)
	var doneOnce sync.Once
	done := func() {
		doneOnce.Do(s.wg.Done)
	}
	go f(done, s.closeSignal)
}

// SendCloseSignal fires the close signal. The first error wins; later
// calls keep the original cause.
func (s *SafeClose) SendCloseSignal(err error) {
	s.closeOnce.Do(func() {
		s.m.Lock()
		s.closeErr = err
		s.m.Unlock()
		close(s.closeSignal)
	})
}

// CloseSignal returns the channel closed by SendCloseSignal.
func (s *SafeClose) CloseSignal() <-chan struct{} {
	return s.closeSignal
}

// WaitClosed blocks until every attached component has called done, then
// returns the error passed to the first SendCloseSignal.
func (s *SafeClose) WaitClosed() error {
	s.wg.Wait()
	s.m.Lock()
	defer s.m.Unlock()
	return s.closeErr
}
