package db

import "sync"

// MemoryStore keeps entries in process memory. Nothing survives a restart;
// it backs tests and the --ephemeral flag.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]string)}
}

func (m *MemoryStore) Close() error { return nil }

func (m *MemoryStore) SetEntry(namespace, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[namespace+"/"+key] = value
	return nil
}

func (m *MemoryStore) GetEntry(namespace, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.entries[namespace+"/"+key], nil
}

func (m *MemoryStore) DeleteEntry(namespace, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, namespace+"/"+key)
	return nil
}
