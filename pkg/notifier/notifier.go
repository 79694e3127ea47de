package notifier

import (
	"context"
	"sync"
	"time"

	"github.com/pingcap/errors"
	"go.uber.org/atomic"

	"github.com/hanfei1991/queuelab/pkg/containers"
)

const (
	receiverBufferSize = 16
	flushPollInterval  = 5 * time.Millisecond
)

// Notifier broadcasts events from a single producer to every open
// Receiver, in the order they were notified.
type Notifier[T any] struct {
	mu        sync.RWMutex
	receivers map[int64]*Receiver[T]
	nextID    atomic.Int64
	// pending counts events notified but not yet delivered.
	pending atomic.Int64

	queue *containers.SliceQueue[T]

	closeCh   chan struct{}
	doneCh    chan struct{}
	closeOnce sync.Once
}

// Receiver is one consuming end of a Notifier.
type Receiver[T any] struct {
	id int64
	C  chan T

	stopCh    chan struct{}
	closeOnce sync.Once
	notifier  *Notifier[T]
}

// NewNotifier creates a Notifier and starts its dispatch goroutine.
func NewNotifier[T any]() *Notifier[T] {
	n := &Notifier[T]{
		receivers: make(map[int64]*Receiver[T]),
		queue:     containers.NewSliceQueue[T](),
		closeCh:   make(chan struct{}),
		doneCh:    make(chan struct{}),
	}
	go n.run()
	return n
}

// NewReceiver registers a new Receiver. Events notified before the call
// are not delivered to it.
func (n *Notifier[T]) NewReceiver() *Receiver[T] {
	r := &Receiver[T]{
		id:       n.nextID.Add(1),
		C:        make(chan T, receiverBufferSize),
		stopCh:   make(chan struct{}),
		notifier: n,
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	select {
	case <-n.closeCh:
		close(r.stopCh)
		close(r.C)
	default:
		n.receivers[r.id] = r
	}
	return r
}

// Close unregisters the receiver and closes C.
func (r *Receiver[T]) Close() {
	r.closeOnce.Do(func() {
		// unblocks a pending delivery before we wait for the lock
		close(r.stopCh)

		n := r.notifier
		n.mu.Lock()
		defer n.mu.Unlock()
		if _, ok := n.receivers[r.id]; ok {
			delete(n.receivers, r.id)
			close(r.C)
		}
	})
}

// Notify queues event for delivery. It never blocks.
func (n *Notifier[T]) Notify(event T) {
	n.pending.Inc()
	n.queue.Add(event)
}

// Flush waits until every event notified so far has been handed to the
// receivers.
func (n *Notifier[T]) Flush(ctx context.Context) error {
	ticker := time.NewTicker(flushPollInterval)
	defer ticker.Stop()

	for n.pending.Load() > 0 {
		select {
		case <-ctx.Done():
			return errors.Trace(ctx.Err())
		case <-n.doneCh:
			return nil
		case <-ticker.C:
		}
	}
	return nil
}

// Close stops dispatching and closes every receiver.
func (n *Notifier[T]) Close() {
	n.closeOnce.Do(func() {
		close(n.closeCh)
		<-n.doneCh

		n.mu.Lock()
		defer n.mu.Unlock()
		for id, r := range n.receivers {
			delete(n.receivers, id)
			close(r.C)
		}
	})
}

func (n *Notifier[T]) run() {
	defer close(n.doneCh)

	for {
		select {
		case <-n.closeCh:
			return
		case <-n.queue.C:
		}

		for {
			event, ok := n.queue.Pop()
			if !ok {
				break
			}
			if !n.dispatch(event) {
				return
			}
			n.pending.Dec()
		}
	}
}

// dispatch returns false if the notifier was closed meanwhile.
func (n *Notifier[T]) dispatch(event T) bool {
	n.mu.RLock()
	defer n.mu.RUnlock()

	for _, r := range n.receivers {
		select {
		case <-n.closeCh:
			return false
		case <-r.stopCh:
		case r.C <- event:
		}
	}
	return true
}
