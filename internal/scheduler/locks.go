package scheduler

import (
	"fmt"
	"sync"
)

// KeyLocks allows a single running job per key
type KeyLocks struct {
	mu   sync.Mutex
	held map[string]struct{}
}

// NewKeyLocks creates an empty lock set
func NewKeyLocks() *KeyLocks {
	return &KeyLocks{held: make(map[string]struct{})}
}

// TryLock takes the key and reports whether it was free
func (l *KeyLocks) TryLock(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.held[key]; ok {
		return false
	}
	l.held[key] = struct{}{}
	return true
}

// Unlock releases the key
func (l *KeyLocks) Unlock(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.held, key)
}

// Held returns the number of keys currently locked
func (l *KeyLocks) Held() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.held)
}

// ScanKey identifies the scan of a (broker, profile query) pair
func ScanKey(brokerID, profileQueryID int64) string {
	return fmt.Sprintf("%d:%d", brokerID, profileQueryID)
}

// OptOutKey identifies the opt-out of an extracted profile
func OptOutKey(brokerID, profileQueryID, extractedProfileID int64) string {
	return fmt.Sprintf("%d:%d:%d", brokerID, profileQueryID, extractedProfileID)
}
