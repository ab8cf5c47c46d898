package game

import "sync"

// Manager keeps the last round played in each chat
type Manager struct {
	rounds map[int64]*Round
	mu     sync.RWMutex
}

// NewManager returns an empty manager
func NewManager() *Manager {
	return &Manager{
		rounds: make(map[int64]*Round),
	}
}

// Get returns the last round of the chat, or nil
func (m *Manager) Get(chatID int64) *Round {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.rounds[chatID]
}

// Set replaces the last round of the chat
func (m *Manager) Set(chatID int64, round *Round) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rounds[chatID] = round
}

// Delete forgets the chat
func (m *Manager) Delete(chatID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rounds, chatID)
}
