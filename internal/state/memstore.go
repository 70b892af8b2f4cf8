package state

import "sync"

// MemStore is an in-memory Store used by tests. It mirrors FileStore
// semantics: loads of unknown sessions return the default state, and
// deletes of unknown sessions are no-ops.
type MemStore struct {
	mu       sync.Mutex
	sessions map[string]SessionState
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{sessions: make(map[string]SessionState)}
}

// Load implements Store.
func (m *MemStore) Load(sessionID string) (SessionState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if st, ok := m.sessions[sessionID]; ok {
		return st, nil
	}
	return Default(sessionID), nil
}

// Save implements Store.
func (m *MemStore) Save(st SessionState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[st.SessionID] = st
	return nil
}

// ResetErrors implements Store.
func (m *MemStore) ResetErrors(sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	st, ok := m.sessions[sessionID]
	if !ok {
		st = Default(sessionID)
	}
	st.ErrorCount = 0
	m.sessions[sessionID] = st
	return nil
}

// Delete implements Store.
func (m *MemStore) Delete(sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sessionID)
	return nil
}
