package storage

import "sync"

// Well-known keys used by the application. Every component that persists
// state goes through these so a logout can wipe exactly the right entries.
const (
	KeyAccessToken       = "accessToken"
	KeyRefreshToken      = "refreshToken"
	KeyUser              = "user"
	KeyCartItems         = "cart_items"
	KeyCurrentOrderID    = "current_order_id"
	KeyPushToken         = "pushToken"
	KeyPreviousPushToken = "previousPushToken"
)

// Store is a small string key-value store, the Go counterpart of the
// platform storage mobile apps get for free. Get returns ("", nil) for a
// missing key; callers treat the empty string as "not set".
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Remove(key string) error
	MultiRemove(keys []string) error
}

// MemoryStore is an in-memory Store, used in tests and as a fallback when
// no storage path is configured.
type MemoryStore struct {
	entries map[string]string
	mu      sync.RWMutex
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]string),
	}
}

// Get returns the value for key, or the empty string if it was never set.
func (s *MemoryStore) Get(key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entries[key], nil
}

// Set stores value under key, overwriting any previous value.
func (s *MemoryStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = value
	return nil
}

// Remove deletes key. Removing a missing key is not an error.
func (s *MemoryStore) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}

// MultiRemove deletes every key in keys.
func (s *MemoryStore) MultiRemove(keys []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, key := range keys {
		delete(s.entries, key)
	}
	return nil
}
