package stock

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
)

// Oracle answers stock questions against the remote store and keeps an
// advisory in-memory cache of the last-known counts. The cache has no TTL and
// no invalidation signal; the source of truth is always the remote store at
// the moment of a stock-sensitive call, so callers decide when to re-fetch.
type Oracle struct {
	repo Repository
	log  logrus.FieldLogger

	mu    sync.Mutex
	cache map[string]int
}

func NewOracle(repo Repository, log logrus.FieldLogger) *Oracle {
	return &Oracle{repo: repo, log: log, cache: make(map[string]int)}
}

// FetchStocks bulk-fetches counts for the given ids and merges them into the
// cache non-destructively. Lookup failures are logged and leave the cache as
// it was.
func (o *Oracle) FetchStocks(ctx context.Context, ids []string) {
	if len(ids) == 0 {
		return
	}

	counts, err := o.repo.ListStocks(ctx, ids)
	if err != nil {
		o.log.WithError(err).Error("fetching stock counts failed")
		return
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	for id, count := range counts {
		o.cache[id] = count
	}
}

// FetchStock fetches a single item's live count, overwriting any cached value.
func (o *Oracle) FetchStock(ctx context.Context, id string) (int, error) {
	info, err := o.repo.GetStock(ctx, id)
	if err != nil {
		return 0, err
	}

	o.mu.Lock()
	o.cache[id] = info.Stock
	o.mu.Unlock()
	return info.Stock, nil
}

// Cached returns the last-known count for an item without touching the
// remote store.
func (o *Oracle) Cached(id string) (int, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	count, ok := o.cache[id]
	return count, ok
}

// InStock reports whether the cached count covers the wanted quantity.
func (o *Oracle) InStock(id string, quantity int) bool {
	count, ok := o.Cached(id)
	return ok && count >= quantity
}

// StockMessage returns the display label for an item, based on the cache.
func (o *Oracle) StockMessage(id string, quantity int) string {
	count, ok := o.Cached(id)
	if !ok {
		return "Vérification du stock..."
	}
	return Message(count, quantity)
}
