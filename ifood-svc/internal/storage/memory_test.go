package storage

import (
	"context"
	"fmt"
	"math"
	"sync"
	"testing"

	"ifood/ifood-svc/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_SaveAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRestaurantRepository()

	saved, err := repo.Save(ctx, &domain.Restaurant{Name: "Cafe"})
	require.NoError(t, err)
	require.NotNil(t, saved.ID)
	assert.Equal(t, int64(1), *saved.ID)

	saved.Name = "mutated after save"
	found, err := repo.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Cafe", found.Name)

	found.Name = "Bistro"
	_, err = repo.Save(ctx, found)
	require.NoError(t, err)

	again, err := repo.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Bistro", again.Name)
}

func TestMemoryRepository_UpdateMissing(t *testing.T) {
	repo := NewMemoryDishRepository()
	_, err := repo.Save(context.Background(), &domain.Dish{ID: ptr(int64(5)), Name: "Taco"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = repo.FindByID(context.Background(), 5)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMemoryRepository_Paging(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryDishRepository()
	for i := range 25 {
		_, err := repo.Save(ctx, &domain.Dish{Name: fmt.Sprintf("dish-%d", i), Price: decimal.NewFromInt(int64(i))})
		require.NoError(t, err)
	}

	first, err := repo.FindAll(ctx, domain.PageRequest{Page: 0, Size: 20})
	require.NoError(t, err)
	assert.Len(t, first, 20)
	assert.Equal(t, int64(1), *first[0].ID)

	second, err := repo.FindAll(ctx, domain.PageRequest{Page: 1, Size: 20})
	require.NoError(t, err)
	assert.Len(t, second, 5)

	beyond, err := repo.FindAll(ctx, domain.PageRequest{Page: 9, Size: 20})
	require.NoError(t, err)
	assert.Empty(t, beyond)

	far, err := repo.FindAll(ctx, domain.PageRequest{Page: math.MaxInt/2 + 1, Size: 2})
	require.NoError(t, err)
	assert.Empty(t, far)

	var streamed int
	for _, err := range repo.Stream(ctx, domain.PageRequest{Page: math.MaxInt, Size: 20}) {
		require.NoError(t, err)
		streamed++
	}
	assert.Zero(t, streamed)

	desc, err := repo.FindAll(ctx, domain.Unpaged(domain.SortOrder{Property: "id", Descending: true}))
	require.NoError(t, err)
	assert.Equal(t, int64(25), *desc[0].ID)

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(25), total)
}

func TestMemoryRepository_StreamAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryPaymentRepository()
	for i := range 3 {
		_, err := repo.Save(ctx, &domain.Payment{Amount: decimal.NewFromInt(int64(i + 1)), PaymentType: domain.PaymentTypeCash})
		require.NoError(t, err)
	}

	var amounts []string
	for p, err := range repo.Stream(ctx, domain.Unpaged()) {
		require.NoError(t, err)
		amounts = append(amounts, p.Amount.String())
	}
	assert.Equal(t, []string{"1", "2", "3"}, amounts)

	require.NoError(t, repo.DeleteByID(ctx, 2))
	require.NoError(t, repo.DeleteByID(ctx, 2))
	exists, err := repo.ExistsByID(ctx, 2)
	require.NoError(t, err)
	assert.False(t, exists)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	for _, err := range repo.Stream(cancelled, domain.Unpaged()) {
		assert.ErrorIs(t, err, context.Canceled)
	}
}

func TestMemoryRepository_ConcurrentSaves(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryCustomerRepository()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Save(ctx, &domain.Customer{Name: fmt.Sprintf("c%d", i), Email: "x@y"})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(50), total)
}
