package auth

import "sync"

// MemoryStore is an in-process Store. Tests use it in place of the keyring.
type MemoryStore struct {
	mu    sync.Mutex
	creds map[string]Credentials
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{creds: make(map[string]Credentials)}
}

func (m *MemoryStore) Load(server string) (Credentials, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.creds[server], nil
}

func (m *MemoryStore) Save(server string, creds Credentials) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.creds[server] = creds
	return nil
}

func (m *MemoryStore) Clear(server string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.creds, server)
	return nil
}
