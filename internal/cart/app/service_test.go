package app

import (
	"context"
	"sync"
	"testing"

	"github.com/dwikikusuma/storefront/internal/cart/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockRepo struct {
	m     sync.Mutex
	carts map[string]domain.Cart
	err   error
}

func newMockRepo() *mockRepo {
	return &mockRepo{carts: make(map[string]domain.Cart)}
}

func (m *mockRepo) Get(_ context.Context, shopperID string) (domain.Cart, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return domain.Cart{}, m.err
	}
	cart, ok := m.carts[shopperID]
	if !ok {
		return domain.Cart{}, ErrCartNotFound
	}
	return cart, nil
}

func (m *mockRepo) Upsert(_ context.Context, cart domain.Cart) (domain.Cart, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return domain.Cart{}, m.err
	}
	m.carts[cart.ShopperID] = cart
	return cart, nil
}

func TestAddItem(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMockRepo())

	t.Run("creates the cart lazily", func(t *testing.T) {
		cart, err := svc.AddItem(ctx, "shopper-1", "p1", 2)
		require.NoError(t, err)
		require.Len(t, cart.Items, 1)
		assert.Equal(t, int64(2), cart.Items[0].Quantity)
	})

	t.Run("merges duplicate products by summing", func(t *testing.T) {
		cart, err := svc.AddItem(ctx, "shopper-1", "p1", 3)
		require.NoError(t, err)
		require.Len(t, cart.Items, 1)
		assert.Equal(t, int64(5), cart.Items[0].Quantity)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		_, err := svc.AddItem(ctx, "shopper-1", "p1", 0)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestSetItemQuantity(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMockRepo())

	_, err := svc.AddItem(ctx, "shopper-1", "p1", 2)
	require.NoError(t, err)

	t.Run("updates the line", func(t *testing.T) {
		cart, err := svc.SetItemQuantity(ctx, "shopper-1", "p1", 9)
		require.NoError(t, err)
		assert.Equal(t, int64(9), cart.Items[0].Quantity)
	})

	t.Run("zero removes the line", func(t *testing.T) {
		cart, err := svc.SetItemQuantity(ctx, "shopper-1", "p1", 0)
		require.NoError(t, err)
		assert.Empty(t, cart.Items)
	})

	t.Run("unknown product is not in cart", func(t *testing.T) {
		_, err := svc.SetItemQuantity(ctx, "shopper-1", "p404", 1)
		assert.ErrorIs(t, err, ErrNotInCart)
	})

	t.Run("absent cart is not in cart", func(t *testing.T) {
		_, err := svc.SetItemQuantity(ctx, "nobody", "p1", 1)
		assert.ErrorIs(t, err, ErrNotInCart)
	})
}

func TestReplaceLines(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMockRepo())

	_, err := svc.AddItem(ctx, "shopper-1", "p1", 2)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "shopper-1", "p2", 1)
	require.NoError(t, err)

	cart, err := svc.ReplaceLines(ctx, "shopper-1", []domain.LineItem{{ProductID: "p2", Quantity: 1}})
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "p2", cart.Items[0].ProductID)

	cart, err = svc.Clear(ctx, "shopper-1")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestCount(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMockRepo())

	n, err := svc.Count(ctx, "nobody")
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	_, err = svc.AddItem(ctx, "shopper-1", "p1", 2)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "shopper-1", "p2", 3)
	require.NoError(t, err)

	n, err = svc.Count(ctx, "shopper-1")
	require.NoError(t, err)
	assert.Equal(t, int64(5), n)
}

func TestGetCartWhenAbsent(t *testing.T) {
	svc := NewService(newMockRepo())

	cart, err := svc.GetCart(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Equal(t, "nobody", cart.ShopperID)
	assert.Empty(t, cart.Items)
}
