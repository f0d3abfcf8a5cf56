package cart

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// Manager hands out one Store per user, hydrating each from its own storage
// key on first access. The storage key is the fixed cart key suffixed with
// the user id, so sign-out can delete exactly one user's blob.
type Manager struct {
	stock      StockFetcher
	newStorage func(key string) Storage
	log        logrus.FieldLogger

	mu     sync.Mutex
	stores map[string]*Store
}

func NewManager(stock StockFetcher, newStorage func(key string) Storage, log logrus.FieldLogger) *Manager {
	return &Manager{
		stock:      stock,
		newStorage: newStorage,
		log:        log,
		stores:     make(map[string]*Store),
	}
}

func (m *Manager) storageKey(userID string) string {
	if userID == "" {
		return DefaultStorageKey
	}
	return DefaultStorageKey + "-" + userID
}

// StoreFor returns the user's cart store, creating and hydrating it on first
// access.
func (m *Manager) StoreFor(userID string) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()

	if store, ok := m.stores[userID]; ok {
		return store
	}

	store := NewStore(m.stock, m.newStorage(m.storageKey(userID)), m.log)
	store.LoadFromStorage()
	m.stores[userID] = store
	return store
}

// Drop forgets the in-memory store for a user. The persisted blob is not
// touched; callers clear it through the store first when that is wanted.
func (m *Manager) Drop(userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.stores, userID)
}
