package render

import (
	"context"
	"sync"
)

// PendingFrame is the continuation returned by a tick in embedded mode. The host resumes it
// once everything drawn for the frame has been flushed; only then is the frame reported ready.
type PendingFrame struct {
	host Host
	once sync.Once
	done chan struct{}
}

func newPendingFrame(host Host) *PendingFrame {
	return &PendingFrame{host: host, done: make(chan struct{})}
}

// Resume signals the host that the frame is ready. Calls after the first are no-ops.
func (f *PendingFrame) Resume() {
	f.once.Do(func() {
		f.host.FrameReady()
		close(f.done)
	})
}

// Wait blocks until flushed is closed or receives, then resumes the frame. If ctx ends first the
// frame stays pending and the context error is returned.
func (f *PendingFrame) Wait(ctx context.Context, flushed <-chan struct{}) error {
	select {
	case <-flushed:
		f.Resume()
		return nil
	case <-f.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Done is closed once the frame has been resumed.
func (f *PendingFrame) Done() <-chan struct{} {
	return f.done
}

func (f *PendingFrame) resumed() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}
