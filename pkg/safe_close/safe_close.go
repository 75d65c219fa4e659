package safe_close

import (
	"sync"
)

// SafeClose coordinates the graceful shutdown of multiple goroutines.
// SafeClose 协调多个 goroutine 的优雅关闭
//
// Attached goroutines receive a close signal, finish their work and call
// done(). WaitClosed blocks until all attached goroutines are done.
type SafeClose struct {
	m sync.Mutex

	closeSignal chan struct{}
	closed      bool
	closeErr    error

	wg sync.WaitGroup
}

func NewSafeClose() *SafeClose {
	return &SafeClose{
		closeSignal: make(chan struct{}),
	}
}

// Attach starts f in a new goroutine. f must call done when it has
// finished cleaning up, and must return once closeSignal is closed.
// Attach 在新的 goroutine 中启动 f。f 在清理完成后必须调用 done，
// 且在 closeSignal 关闭后必须返回
func (s *SafeClose) Attach(f func(done func(), closeSignal <-chan struct{})) {
	s.m.Lock()
	defer s.m.Unlock()

	if s.closed {
		return
	}

	s.wg.Add(1)
	done := sync.OnceFunc(s.wg.Done)
	go f(done, s.closeSignal)
}

// SendCloseSignal closes the signal channel. The first non-nil error wins.
// SendCloseSignal 关闭信号通道，第一个非 nil 的错误会被保留
func (s *SafeClose) SendCloseSignal(err error) {
	s.m.Lock()
	defer s.m.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	s.closeErr = err
	close(s.closeSignal)
}

// WaitClosed blocks until all attached goroutines called done, then
// returns the error passed to SendCloseSignal.
// WaitClosed 阻塞直到所有附加的 goroutine 调用 done，
// 返回 SendCloseSignal 传入的错误
func (s *SafeClose) WaitClosed() error {
	s.wg.Wait()

	s.m.Lock()
	defer s.m.Unlock()
	return s.closeErr
}

// CloseSignal returns the close signal channel.
// CloseSignal 返回关闭信号通道
func (s *SafeClose) CloseSignal() <-chan struct{} {
	return s.closeSignal
}
