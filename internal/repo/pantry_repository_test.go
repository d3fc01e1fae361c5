package repo

import (
	"context"
	"testing"
	"time"

	"github.com/KSONG-cloud/pantry-tracker-2/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedItem(t *testing.T, db *gorm.DB, userID int64, name string, groupID int64) *model.PantryItem {
	t.Helper()
	ctx := context.Background()
	food, err := NewFoodRepository(db).GetOrCreate(ctx, name)
	require.NoError(t, err)
	item := &model.PantryItem{
		UserID:      userID,
		FoodID:      food.ID,
		FoodGroupID: groupID,
		AddedDate:   model.NewDate(2025, time.January, 10),
		Quantity:    3,
	}
	created, err := NewPantryRepository(db).Create(ctx, item)
	require.NoError(t, err)
	return created
}

func TestPantryRepo_ListByUser_JoinsNameAndSkipsRemoved(t *testing.T) {
	db := newTestDB(t)
	r := NewPantryRepository(db)
	ctx := context.Background()

	a := seedItem(t, db, 1, "Milk", 10)
	b := seedItem(t, db, 1, "Eggs", 10)
	seedItem(t, db, 2, "Butter", 10) // чужой пользователь

	require.NoError(t, r.SoftDelete(ctx, 1, b.ID))

	items, err := r.ListByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, a.ID, items[0].ID)
	assert.Equal(t, "Milk", items[0].FoodName)
	assert.Equal(t, int64(3), items[0].Quantity)
}

func TestPantryRepo_Patch_UpdatesOnlyGivenColumns(t *testing.T) {
	db := newTestDB(t)
	r := NewPantryRepository(db)
	ctx := context.Background()

	it := seedItem(t, db, 1, "Milk", 10)

	updated, err := r.Patch(ctx, 1, it.ID, map[string]any{
		"quantity":      int64(5),
		"foodgroup_id":  int64(22),
		"expiry_date":   model.NewDate(2025, time.June, 1),
		"bestbefore_date": nil,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), updated.Quantity)
	assert.Equal(t, int64(22), updated.FoodGroupID)
	require.NotNil(t, updated.ExpiryDate)
	assert.Equal(t, "2025-06-01", updated.ExpiryDate.String())
	assert.Nil(t, updated.BestBeforeDate)
	// added_date не трогали
	assert.Equal(t, "2025-01-10", updated.AddedDate.String())
}

func TestPantryRepo_Patch_NotFound(t *testing.T) {
	db := newTestDB(t)
	r := NewPantryRepository(db)
	ctx := context.Background()

	_, err := r.Patch(ctx, 1, 999, map[string]any{"quantity": int64(1)})
	assert.ErrorIs(t, err, ErrNotFound)

	// чужая строка выглядит как отсутствующая
	it := seedItem(t, db, 2, "Milk", 10)
	_, err = r.Patch(ctx, 1, it.ID, map[string]any{"quantity": int64(1)})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPantryRepo_SoftDelete_IdempotencyAndNotFound(t *testing.T) {
	db := newTestDB(t)
	r := NewPantryRepository(db)
	ctx := context.Background()

	it := seedItem(t, db, 1, "Milk", 10)
	require.NoError(t, r.SoftDelete(ctx, 1, it.ID))

	// повторное удаление — строка уже спрятана
	assert.ErrorIs(t, r.SoftDelete(ctx, 1, it.ID), ErrNotFound)
	assert.ErrorIs(t, r.SoftDelete(ctx, 1, 12345), ErrNotFound)
}
