package bridge

import (
	"sync"

	"github.com/initia-labs/sidecar/aptos"
)

// senderLocks is a keyed mutex. Entries are dropped once no goroutine holds
// or waits for them.
type senderLocks struct {
	mu    sync.Mutex
	locks map[aptos.AccountAddress]*senderLock
}

type senderLock struct {
	mu   sync.Mutex
	refs int
}

func newSenderLocks() *senderLocks {
	return &senderLocks{locks: make(map[aptos.AccountAddress]*senderLock)}
}

// Lock blocks until sender is free and returns the matching unlock func.
func (l *senderLocks) Lock(sender aptos.AccountAddress) (unlock func()) {
	l.mu.Lock()
	lock, ok := l.locks[sender]
	if !ok {
		lock = &senderLock{}
		l.locks[sender] = lock
	}
	lock.refs++
	l.mu.Unlock()

	lock.mu.Lock()

	return func() {
		lock.mu.Unlock()

		l.mu.Lock()
		lock.refs--
		if lock.refs == 0 {
			delete(l.locks, sender)
		}
		l.mu.Unlock()
	}
}

func (l *senderLocks) len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
