package services

import (
	"testing"

	"github.com/CrisantoUpiicsa/ReservaBarSystemv01/entity"
	"github.com/CrisantoUpiicsa/ReservaBarSystemv01/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMenuService(t *testing.T) *MenuService {
	t.Helper()
	return NewMenuService(repository.NewMenuRepository(setupTestDB(t)))
}

func TestMenuItemCreateRejectsMissingCategory(t *testing.T) {
	svc := newMenuService(t)

	missing := uint(42)
	err := svc.CreateItem(&entity.MenuItem{Name: "Negroni", Price: "11.00", CategoryID: &missing})
	assert.ErrorIs(t, err, ErrCategoryMissing)

	// nothing reached the store
	items, err := svc.Items(nil)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestMenuItemCreateWithoutCategory(t *testing.T) {
	svc := newMenuService(t)

	require.NoError(t, svc.CreateItem(&entity.MenuItem{Name: "Still Water", Price: "2.00"}))
}

func TestMenuItemUpdateRejectsMissingCategory(t *testing.T) {
	svc := newMenuService(t)

	category := entity.MenuCategory{Name: "Cocktails"}
	require.NoError(t, svc.CreateCategory(&category))

	item := entity.MenuItem{Name: "Negroni", Price: "11.00", CategoryID: &category.ID}
	require.NoError(t, svc.CreateItem(&item))

	_, err := svc.UpdateItem(item.ID, map[string]any{"category_id": uint(42)})
	assert.ErrorIs(t, err, ErrCategoryMissing)

	// the record keeps its original category after the rejection
	got, err := svc.UpdateItem(item.ID, map[string]any{})
	require.NoError(t, err)
	require.NotNil(t, got.CategoryID)
	assert.Equal(t, category.ID, *got.CategoryID)
}
