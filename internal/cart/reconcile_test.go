package cart_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mangastore/internal/cart"
	"mangastore/internal/stock"
)

type fakeStockRepo struct {
	infos      map[string]stock.Info
	getErrs    map[string]error
	updateErrs map[string]error
	updates    map[string]int
}

func newFakeStockRepo() *fakeStockRepo {
	return &fakeStockRepo{
		infos:      map[string]stock.Info{},
		getErrs:    map[string]error{},
		updateErrs: map[string]error{},
		updates:    map[string]int{},
	}
}

func (f *fakeStockRepo) ListStocks(_ context.Context, ids []string) (map[string]int, error) {
	out := make(map[string]int)
	for _, id := range ids {
		if info, ok := f.infos[id]; ok {
			out[id] = info.Stock
		}
	}
	return out, nil
}

func (f *fakeStockRepo) GetStock(_ context.Context, id string) (stock.Info, error) {
	if err, ok := f.getErrs[id]; ok {
		return stock.Info{}, err
	}
	info, ok := f.infos[id]
	if !ok {
		return stock.Info{}, stock.ErrNotFound
	}
	return info, nil
}

func (f *fakeStockRepo) UpdateStock(_ context.Context, id string, count int) error {
	if err, ok := f.updateErrs[id]; ok {
		return err
	}
	f.updates[id] = count
	f.infos[id] = stock.Info{ID: id, Title: f.infos[id].Title, Stock: count}
	return nil
}

func TestReconciler_ValidateCart(t *testing.T) {
	ctx := context.Background()

	t.Run("all lines covered", func(t *testing.T) {
		repo := newFakeStockRepo()
		repo.infos["manga-1"] = stock.Info{ID: "manga-1", Title: "One Piece Tome 1", Stock: 5}
		r := cart.NewReconciler(repo, discardLogger())

		result := r.ValidateCart(ctx, []cart.Item{{ID: "manga-1", Title: "One Piece Tome 1", Quantity: 2}})

		assert.True(t, result.IsValid)
		assert.Empty(t, result.Errors)
	})

	t.Run("insufficient stock names quantities", func(t *testing.T) {
		repo := newFakeStockRepo()
		repo.infos["manga-1"] = stock.Info{ID: "manga-1", Title: "One Piece Tome 1", Stock: 1}
		r := cart.NewReconciler(repo, discardLogger())

		result := r.ValidateCart(ctx, []cart.Item{{ID: "manga-1", Title: "One Piece Tome 1", Quantity: 3}})

		assert.False(t, result.IsValid)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, `Stock insuffisant pour "One Piece Tome 1". Demandé: 3, Disponible: 1`, result.Errors[0])
	})

	t.Run("lookup failure does not stop the scan", func(t *testing.T) {
		repo := newFakeStockRepo()
		repo.getErrs["manga-1"] = errors.New("timeout")
		repo.infos["manga-2"] = stock.Info{ID: "manga-2", Title: "Berserk Tome 1", Stock: 0}
		r := cart.NewReconciler(repo, discardLogger())

		result := r.ValidateCart(ctx, []cart.Item{
			{ID: "manga-1", Title: "One Piece Tome 1", Quantity: 1},
			{ID: "manga-2", Title: "Berserk Tome 1", Quantity: 1},
		})

		assert.False(t, result.IsValid)
		require.Len(t, result.Errors, 2)
		assert.Equal(t, `Impossible de vérifier le stock pour "One Piece Tome 1"`, result.Errors[0])
		assert.Equal(t, `Stock insuffisant pour "Berserk Tome 1". Demandé: 1, Disponible: 0`, result.Errors[1])
	})
}

func TestReconciler_CommitStock(t *testing.T) {
	ctx := context.Background()

	t.Run("decrements each line", func(t *testing.T) {
		repo := newFakeStockRepo()
		repo.infos["manga-1"] = stock.Info{ID: "manga-1", Title: "One Piece Tome 1", Stock: 5}
		repo.infos["manga-2"] = stock.Info{ID: "manga-2", Title: "Berserk Tome 1", Stock: 2}
		r := cart.NewReconciler(repo, discardLogger())

		err := r.CommitStock(ctx, []cart.Item{
			{ID: "manga-1", Quantity: 2},
			{ID: "manga-2", Quantity: 1},
		})

		require.NoError(t, err)
		assert.Equal(t, 3, repo.updates["manga-1"])
		assert.Equal(t, 1, repo.updates["manga-2"])
	})

	t.Run("floors at zero", func(t *testing.T) {
		repo := newFakeStockRepo()
		repo.infos["manga-1"] = stock.Info{ID: "manga-1", Stock: 1}
		r := cart.NewReconciler(repo, discardLogger())

		require.NoError(t, r.CommitStock(ctx, []cart.Item{{ID: "manga-1", Quantity: 4}}))
		assert.Equal(t, 0, repo.updates["manga-1"])
	})

	t.Run("fetch failure skips the line", func(t *testing.T) {
		repo := newFakeStockRepo()
		repo.getErrs["manga-1"] = errors.New("timeout")
		repo.infos["manga-2"] = stock.Info{ID: "manga-2", Stock: 2}
		r := cart.NewReconciler(repo, discardLogger())

		err := r.CommitStock(ctx, []cart.Item{
			{ID: "manga-1", Quantity: 1},
			{ID: "manga-2", Quantity: 1},
		})

		require.NoError(t, err)
		_, touched := repo.updates["manga-1"]
		assert.False(t, touched)
		assert.Equal(t, 1, repo.updates["manga-2"])
	})

	t.Run("write failure surfaces and leaves earlier decrements", func(t *testing.T) {
		repo := newFakeStockRepo()
		repo.infos["manga-1"] = stock.Info{ID: "manga-1", Stock: 5}
		repo.infos["manga-2"] = stock.Info{ID: "manga-2", Title: "Berserk Tome 1", Stock: 5}
		repo.updateErrs["manga-2"] = errors.New("write refused")
		r := cart.NewReconciler(repo, discardLogger())

		err := r.CommitStock(ctx, []cart.Item{
			{ID: "manga-1", Quantity: 1},
			{ID: "manga-2", Title: "Berserk Tome 1", Quantity: 1},
		})

		var remote *cart.RemoteError
		require.ErrorAs(t, err, &remote)
		assert.Equal(t, 4, repo.updates["manga-1"], "earlier decrement stays in place")
	})
}

func TestReconciler_RestoreStock(t *testing.T) {
	ctx := context.Background()

	t.Run("adds quantities back", func(t *testing.T) {
		repo := newFakeStockRepo()
		repo.infos["manga-1"] = stock.Info{ID: "manga-1", Stock: 3}
		r := cart.NewReconciler(repo, discardLogger())

		r.RestoreStock(ctx, []cart.Item{{ID: "manga-1", Quantity: 2}})
		assert.Equal(t, 5, repo.updates["manga-1"])
	})

	t.Run("failures never interrupt the loop", func(t *testing.T) {
		repo := newFakeStockRepo()
		repo.getErrs["manga-1"] = errors.New("timeout")
		repo.infos["manga-2"] = stock.Info{ID: "manga-2", Stock: 1}
		repo.infos["manga-3"] = stock.Info{ID: "manga-3", Stock: 1}
		repo.updateErrs["manga-2"] = errors.New("write refused")
		r := cart.NewReconciler(repo, discardLogger())

		r.RestoreStock(ctx, []cart.Item{
			{ID: "manga-1", Quantity: 1},
			{ID: "manga-2", Quantity: 1},
			{ID: "manga-3", Quantity: 1},
		})

		assert.Equal(t, 2, repo.updates["manga-3"], "later lines still restored")
	})
}
