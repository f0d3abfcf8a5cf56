package cart

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
)

// Store is the cart state container. It is constructed explicitly and
// injected wherever cart state is needed; one instance per application root.
// Every successful mutation writes through to the injected Storage.
type Store struct {
	mu     sync.Mutex
	items  []Item
	isOpen bool

	stock   StockFetcher
	storage Storage
	log     logrus.FieldLogger
}

func NewStore(stock StockFetcher, storage Storage, log logrus.FieldLogger) *Store {
	return &Store{stock: stock, storage: storage, log: log}
}

// State returns a snapshot of the current cart.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *Store) snapshot() State {
	items := make([]Item, len(s.items))
	copy(items, s.items)
	return State{Items: items, IsOpen: s.isOpen}
}

// AddItem inserts the item at quantity 1, or increments an existing line.
// It is the one stock-aware mutation: the remote stock is fetched first, and
// the add fails with StockExceededError when the current quantity has already
// reached it. Nothing is mutated or persisted on failure.
func (s *Store) AddItem(ctx context.Context, info ItemInfo) error {
	available, err := s.stock.FetchStock(ctx, info.ID)
	if err != nil {
		return &StockUnverifiableError{ItemID: info.ID, Title: info.Title, Err: err}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current := 0
	idx := s.indexOf(info.ID)
	if idx >= 0 {
		current = s.items[idx].Quantity
	}
	if current >= available {
		return &StockExceededError{ItemID: info.ID, Title: info.Title, Available: available}
	}

	if idx >= 0 {
		s.items[idx].Quantity++
		s.log.WithFields(logrus.Fields{"title": info.Title, "quantity": s.items[idx].Quantity}).
			Debug("cart quantity incremented")
	} else {
		s.items = append(s.items, Item{
			ID:       info.ID,
			Title:    info.Title,
			Author:   info.Author,
			Price:    info.Price,
			Cover:    info.Cover,
			Slug:     info.Slug,
			Quantity: 1,
		})
		s.log.WithField("title", info.Title).Debug("cart item added")
	}

	s.persist()
	return nil
}

// RemoveItem drops the line unconditionally. Absent ids are a no-op.
func (s *Store) RemoveItem(itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(itemID)
	if idx < 0 {
		return
	}
	s.items = append(s.items[:idx], s.items[idx+1:]...)
	s.persist()
}

// UpdateQuantity sets the line quantity directly. A quantity of zero or less
// removes the line. Stock is not consulted here; it is re-validated at
// checkout.
func (s *Store) UpdateQuantity(itemID string, quantity int) {
	if quantity <= 0 {
		s.RemoveItem(itemID)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(itemID)
	if idx < 0 {
		return
	}
	s.items[idx].Quantity = quantity
	s.persist()
}

func (s *Store) IncrementQuantity(itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(itemID)
	if idx < 0 {
		return
	}
	s.items[idx].Quantity++
	s.persist()
}

// DecrementQuantity lowers the quantity by one; going below 1 removes the
// line instead of persisting a zero.
func (s *Store) DecrementQuantity(itemID string) {
	s.mu.Lock()

	idx := s.indexOf(itemID)
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	if s.items[idx].Quantity > 1 {
		s.items[idx].Quantity--
		s.persist()
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()
	s.RemoveItem(itemID)
}

// ClearCart empties the line items and persists the empty state. The
// persisted blob remains present.
func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.persist()
}

// ClearCartAndStorage empties the cart, closes the drawer, and deletes the
// persisted blob entirely, so no trace of a previous user's cart survives.
func (s *Store) ClearCartAndStorage() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.isOpen = false
	if err := s.storage.Delete(); err != nil {
		s.log.WithError(err).Warn("deleting persisted cart failed")
	}
}

func (s *Store) ToggleCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isOpen = !s.isOpen
}

func (s *Store) OpenCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isOpen = true
}

func (s *Store) CloseCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isOpen = false
}

// SaveToStorage serializes the current state to the injected Storage.
func (s *Store) SaveToStorage() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.persist()
}

// LoadFromStorage hydrates the cart from the persisted blob. Missing blobs
// and parse failures fail soft: the error is logged and the in-memory state
// keeps its pre-call default.
func (s *Store) LoadFromStorage() {
	state, found, err := s.storage.Load()
	if err != nil {
		s.log.WithError(err).Error("loading persisted cart failed")
		return
	}
	if !found {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = state.Items
	s.isOpen = state.IsOpen
}

// persist writes through the current state. Storage failures are logged, not
// surfaced: the cart stays usable even when the local store misbehaves.
// Callers must hold s.mu.
func (s *Store) persist() {
	if err := s.storage.Save(s.snapshot()); err != nil {
		s.log.WithError(err).Error("saving cart failed")
	}
}

// indexOf returns the line index for an item id, or -1. Callers must hold s.mu.
func (s *Store) indexOf(itemID string) int {
	for i, item := range s.items {
		if item.ID == itemID {
			return i
		}
	}
	return -1
}
