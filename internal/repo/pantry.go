package repo

import (
	"context"
	"errors"

	"github.com/KSONG-cloud/pantry-tracker-2/internal/model"
	"gorm.io/gorm"
)

// ErrNotFound возвращается, когда затронутых строк нет (id не существует,
// чужой user_id или строка уже удалена).
var ErrNotFound = errors.New("record not found")

// PantryRepository — доступ к строкам пантри пользователя.
type PantryRepository interface {
	// ListByUser возвращает неудалённые строки пользователя с именем продукта.
	ListByUser(ctx context.Context, userID int64) ([]model.PantryItem, error)

	// GetByID возвращает одну неудалённую строку пользователя.
	GetByID(ctx context.Context, userID, id int64) (*model.PantryItem, error)

	// Create вставляет строку и возвращает её с заполненным id.
	Create(ctx context.Context, item *model.PantryItem) (*model.PantryItem, error)

	// Patch применяет частичное обновление (колонка → значение) и возвращает
	// обновлённую строку.
	Patch(ctx context.Context, userID, id int64, updates map[string]any) (*model.PantryItem, error)

	// SoftDelete помечает строку removed=true.
	SoftDelete(ctx context.Context, userID, id int64) error
}

type pantryRepo struct {
	db *gorm.DB
}

// NewPantryRepository создаёт реализацию репозитория пантри.
func NewPantryRepository(db *gorm.DB) PantryRepository {
	return &pantryRepo{db: db}
}

// row с присоединённым food_name; gorm кладёт лишнюю колонку в FoodName через Scan.
type pantryRow struct {
	model.PantryItem
	FoodName string
}

func (r *pantryRepo) ListByUser(ctx context.Context, userID int64) ([]model.PantryItem, error) {
	var rows []pantryRow
	err := r.db.WithContext(ctx).
		Table("pantry").
		Select("pantry.*, food.food_name AS food_name").
		Joins("JOIN food ON pantry.food_id = food.id").
		Where("pantry.user_id = ? AND pantry.removed = ?", userID, false).
		Order("pantry.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	items := make([]model.PantryItem, 0, len(rows))
	for _, row := range rows {
		it := row.PantryItem
		it.FoodName = row.FoodName
		items = append(items, it)
	}
	return items, nil
}

func (r *pantryRepo) GetByID(ctx context.Context, userID, id int64) (*model.PantryItem, error) {
	var row pantryRow
	err := r.db.WithContext(ctx).
		Table("pantry").
		Select("pantry.*, food.food_name AS food_name").
		Joins("JOIN food ON pantry.food_id = food.id").
		Where("pantry.id = ? AND pantry.user_id = ? AND pantry.removed = ?", id, userID, false).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	it := row.PantryItem
	it.FoodName = row.FoodName
	return &it, nil
}

func (r *pantryRepo) Create(ctx context.Context, item *model.PantryItem) (*model.PantryItem, error) {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (r *pantryRepo) Patch(ctx context.Context, userID, id int64, updates map[string]any) (*model.PantryItem, error) {
	if len(updates) == 0 {
		return r.GetByID(ctx, userID, id)
	}
	tx := r.db.WithContext(ctx).
		Model(&model.PantryItem{}).
		Where("id = ? AND user_id = ? AND removed = ?", id, userID, false).
		Updates(updates)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.GetByID(ctx, userID, id)
}

func (r *pantryRepo) SoftDelete(ctx context.Context, userID, id int64) error {
	tx := r.db.WithContext(ctx).
		Model(&model.PantryItem{}).
		Where("id = ? AND user_id = ? AND removed = ?", id, userID, false).
		Update("removed", true)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
