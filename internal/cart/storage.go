package cart

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// DefaultStorageKey is the fixed key the cart blob is stored under.
const DefaultStorageKey = "mangastore-cart"

// persistedState is the wire shape of the blob: {items, isOpen}. Missing
// fields fall back to empty defaults on load; there is no schema version.
type persistedState struct {
	Items  []Item `json:"items"`
	IsOpen bool   `json:"isOpen"`
}

func encodeState(state State) ([]byte, error) {
	items := state.Items
	if items == nil {
		items = []Item{}
	}
	return json.Marshal(persistedState{Items: items, IsOpen: state.IsOpen})
}

func decodeState(blob []byte) (State, error) {
	var data persistedState
	if err := json.Unmarshal(blob, &data); err != nil {
		return State{}, fmt.Errorf("%w: %v", ErrPersistenceCorrupt, err)
	}
	items := data.Items
	if items == nil {
		items = []Item{}
	}
	return State{Items: items, IsOpen: data.IsOpen}, nil
}

// MemoryStorage keeps blobs in process memory, keyed like the real store.
// Used by tests and as the default when no storage directory is configured.
type MemoryStorage struct {
	mu    sync.Mutex
	key   string
	blobs map[string][]byte
}

func NewMemoryStorage(key string) *MemoryStorage {
	if key == "" {
		key = DefaultStorageKey
	}
	return &MemoryStorage{key: key, blobs: make(map[string][]byte)}
}

func (m *MemoryStorage) Save(state State) error {
	blob, err := encodeState(state)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blobs[m.key] = blob
	return nil
}

func (m *MemoryStorage) Load() (State, bool, error) {
	m.mu.Lock()
	blob, ok := m.blobs[m.key]
	m.mu.Unlock()
	if !ok {
		return State{}, false, nil
	}
	state, err := decodeState(blob)
	if err != nil {
		return State{}, true, err
	}
	return state, true, nil
}

func (m *MemoryStorage) Delete() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.blobs, m.key)
	return nil
}

// SetRaw plants an arbitrary blob under the key, bypassing encoding.
func (m *MemoryStorage) SetRaw(blob []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blobs[m.key] = blob
}

// FileStorage persists the blob as a JSON file named after the key. Writes
// are plain last-writer-wins, matching the original browser storage: two
// concurrent writers are not merged or detected.
type FileStorage struct {
	dir string
	key string
}

func NewFileStorage(dir, key string) *FileStorage {
	if key == "" {
		key = DefaultStorageKey
	}
	return &FileStorage{dir: dir, key: key}
}

func (f *FileStorage) path() string {
	return filepath.Join(f.dir, f.key+".json")
}

func (f *FileStorage) Save(state State) error {
	blob, err := encodeState(state)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(f.path(), blob, 0o644)
}

func (f *FileStorage) Load() (State, bool, error) {
	blob, err := os.ReadFile(f.path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return State{}, false, nil
		}
		return State{}, false, err
	}
	state, err := decodeState(blob)
	if err != nil {
		return State{}, true, err
	}
	return state, true, nil
}

func (f *FileStorage) Delete() error {
	err := os.Remove(f.path())
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
