package services

import (
	"sync"
	"sync/atomic"

	"github.com/campushire/campushire/core"
)

// subscriber receives the new current identity after every state change,
// nil meaning anonymous.
type subscriber func(*core.Identity)

// notifier fans out session state changes to subscribers from a single
// dispatch goroutine, so callbacks never run on the goroutine that mutated
// the store. Publishing never blocks: if the buffer is full the event is
// dropped and counted.
type notifier struct {
	mu   sync.Mutex
	next int
	subs map[int]subscriber

	ch        chan *core.Identity
	done      chan struct{}
	wg        sync.WaitGroup
	dropped   atomic.Uint64
	closed    atomic.Bool
	closeOnce sync.Once
}

func newNotifier(buffer int) *notifier {
	if buffer <= 0 {
		buffer = 16
	}

	n := &notifier{
		subs: make(map[int]subscriber),
		ch:   make(chan *core.Identity, buffer),
		done: make(chan struct{}),
	}

	n.wg.Add(1)
	go n.run()

	return n
}

func (n *notifier) run() {
	defer n.wg.Done()

	for {
		select {
		case identity := <-n.ch:
			n.dispatch(identity)
		case <-n.done:
			// Drain whatever was queued before shutdown.
			for {
				select {
				case identity := <-n.ch:
					n.dispatch(identity)
				default:
					return
				}
			}
		}
	}
}

func (n *notifier) dispatch(identity *core.Identity) {
	n.mu.Lock()
	subs := make([]subscriber, 0, len(n.subs))
	for _, fn := range n.subs {
		subs = append(subs, fn)
	}
	n.mu.Unlock()

	for _, fn := range subs {
		fn(identity)
	}
}

func (n *notifier) publish(identity *core.Identity) {
	if n.closed.Load() {
		return
	}

	select {
	case n.ch <- identity:
	case <-n.done:
	default:
		n.dropped.Add(1)
	}
}

// subscribe registers fn and returns its unsubscribe function. Unsubscribing
// twice is harmless.
func (n *notifier) subscribe(fn subscriber) func() {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.next
	n.next++
	n.subs[id] = fn

	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.subs, id)
	}
}

func (n *notifier) close() {
	n.closeOnce.Do(func() {
		n.closed.Store(true)
		close(n.done)
		n.wg.Wait()
	})
}

func (n *notifier) droppedCount() uint64 {
	return n.dropped.Load()
}
