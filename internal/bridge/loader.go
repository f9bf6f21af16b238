package bridge

import (
	"context"
	"log"
	"sync"
)

// Loader hands out the bridge once it has been attached. Waiting is
// unbounded unless the caller's context is cancelled.
type Loader struct {
	mu     sync.RWMutex
	bridge Bridge
	ready  chan struct{}
}

// NewLoader creates a loader with no bridge attached
func NewLoader() *Loader {
	return &Loader{ready: make(chan struct{})}
}

// Attach makes b available to waiters. Attaching again replaces the bridge
// for later callers.
func (l *Loader) Attach(b Bridge) {
	if b == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	first := l.bridge == nil
	l.bridge = b
	if first {
		close(l.ready)
		log.Printf("Native bridge attached")
	}
}

// Ready returns a channel closed once a bridge is attached
func (l *Loader) Ready() <-chan struct{} {
	return l.ready
}

// Current returns the attached bridge without waiting
func (l *Loader) Current() (Bridge, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.bridge, l.bridge != nil
}

// Wait blocks until a bridge is attached or ctx is done
func (l *Loader) Wait(ctx context.Context) (Bridge, error) {
	if b, ok := l.Current(); ok {
		return b, nil
	}

	select {
	case <-l.ready:
		b, _ := l.Current()
		return b, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
