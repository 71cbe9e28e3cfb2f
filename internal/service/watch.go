package service

import "sync"

// Watch subscribes to b and delivers snapshots on a channel that holds only
// the newest one; a slow reader skips intermediate versions instead of
// blocking the writer. stop unsubscribes and closes the channel, so a reader
// blocked on it returns. stop may be called more than once.
func Watch(b Board) (updates <-chan Snapshot, stop func()) {
	ch := make(chan Snapshot, 1)

	// mu orders deliveries against close; a delivery already in flight
	// when cancel runs must not send on a closed channel.
	var mu sync.Mutex
	closed := false

	cancel := b.Subscribe(func(s Snapshot) {
		mu.Lock()
		defer mu.Unlock()
		if closed {
			return
		}
		for {
			select {
			case ch <- s:
				return
			default:
			}
			// Drop the stale snapshot and retry.
			select {
			case <-ch:
			default:
			}
		}
	})

	var once sync.Once
	stop = func() {
		once.Do(func() {
			cancel()
			mu.Lock()
			closed = true
			close(ch)
			mu.Unlock()
		})
	}
	return ch, stop
}
