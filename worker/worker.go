package worker

import (
	"context"
	"sync"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/oomph-ac/webxr/oerror"
	"github.com/sirupsen/logrus"
)

// ErrClosed is returned when work is submitted to a closed Loop.
var ErrClosed = oerror.New("worker: loop closed")

// Loop runs submitted functions one at a time on a single goroutine. Hosts that receive tracking
// data and frame signals on several goroutines submit everything to one Loop so the engine only
// ever has a single writer.
type Loop struct {
	log   *logrus.Logger
	queue chan func()
	done  chan struct{}

	mu     sync.RWMutex
	closed bool
}

// NewLoop starts a Loop that buffers up to size pending functions.
func NewLoop(log *logrus.Logger, size int) *Loop {
	l := &Loop{
		log:   log,
		queue: make(chan func(), size),
		done:  make(chan struct{}),
	}
	go l.run()
	return l
}

func (l *Loop) run() {
	defer close(l.done)
	for f := range l.queue {
		l.exec(f)
	}
}

func (l *Loop) exec(f func()) {
	defer func() {
		if v := recover(); v != nil {
			l.log.Errorf("worker loop recovered from panic: %v", v)
			hub := sentry.CurrentHub().Clone()
			hub.Recover(v)
			hub.Flush(time.Second * 5)
		}
	}()
	f()
}

// Submit queues f without waiting for it to run.
func (l *Loop) Submit(f func()) error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.closed {
		return ErrClosed
	}
	l.queue <- f
	return nil
}

// Do runs f on the loop and waits for its result. If ctx ends first, f may still run later.
func (l *Loop) Do(ctx context.Context, f func() error) error {
	res := make(chan error, 1)
	if err := l.Submit(func() { res <- f() }); err != nil {
		return err
	}
	select {
	case err := <-res:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops accepting work, runs everything already queued and returns once the loop exited.
func (l *Loop) Close() {
	l.mu.Lock()
	if !l.closed {
		l.closed = true
		close(l.queue)
	}
	l.mu.Unlock()
	<-l.done
}
