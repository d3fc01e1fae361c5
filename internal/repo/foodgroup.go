package repo

import (
	"context"
	"errors"

	"github.com/KSONG-cloud/pantry-tracker-2/internal/model"
	"gorm.io/gorm"
)

// ErrSystemGroup возвращается при попытке удалить защищённую системную группу.
var ErrSystemGroup = errors.New("system group cannot be deleted")

// FoodGroupRepository — доступ к группам продуктов пользователя.
type FoodGroupRepository interface {
	// ListByUser возвращает группы пользователя по display_order
	// (системные первыми).
	ListByUser(ctx context.Context, userID int64) ([]model.FoodGroup, error)

	// GetByID возвращает одну группу пользователя.
	GetByID(ctx context.Context, userID, id int64) (*model.FoodGroup, error)

	// EnsureUnassigned гарантирует существование ровно одной системной группы
	// "Unassigned" у пользователя и возвращает её.
	EnsureUnassigned(ctx context.Context, userID int64) (*model.FoodGroup, error)

	// Create вставляет несистемную группу со следующим плотным display_order.
	Create(ctx context.Context, userID int64, name string) (*model.FoodGroup, error)

	// DeleteAndReindex в одной транзакции: переносит строки пантри удаляемой
	// группы в Unassigned, удаляет группу, сдвигает display_order верхних
	// несистемных групп на единицу вниз и возвращает обновлённый список.
	DeleteAndReindex(ctx context.Context, userID, id int64) ([]model.FoodGroup, error)
}

type foodGroupRepo struct {
	db *gorm.DB
}

// NewFoodGroupRepository создаёт реализацию репозитория групп.
func NewFoodGroupRepository(db *gorm.DB) FoodGroupRepository {
	return &foodGroupRepo{db: db}
}

func (r *foodGroupRepo) ListByUser(ctx context.Context, userID int64) ([]model.FoodGroup, error) {
	var groups []model.FoodGroup
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("is_system DESC, display_order").
		Find(&groups).Error
	if err != nil {
		return nil, err
	}
	return groups, nil
}

func (r *foodGroupRepo) GetByID(ctx context.Context, userID, id int64) (*model.FoodGroup, error) {
	var g model.FoodGroup
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Take(&g).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &g, nil
}

func (r *foodGroupRepo) EnsureUnassigned(ctx context.Context, userID int64) (*model.FoodGroup, error) {
	var g model.FoodGroup
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_system = ?", userID, true).
		Take(&g).Error
	if err == nil {
		return &g, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	g = model.FoodGroup{
		UserID:       userID,
		Name:         model.UnassignedGroupName,
		DisplayOrder: 0, // системная группа вне пользовательского порядка
		IsSystem:     true,
	}
	if err := r.db.WithContext(ctx).Create(&g).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *foodGroupRepo) Create(ctx context.Context, userID int64, name string) (*model.FoodGroup, error) {
	var g model.FoodGroup
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.FoodGroup{}).
			Where("user_id = ? AND is_system = ?", userID, false).
			Count(&count).Error; err != nil {
			return err
		}
		g = model.FoodGroup{
			UserID:       userID,
			Name:         name,
			DisplayOrder: count + 1,
			IsSystem:     false,
		}
		return tx.Create(&g).Error
	})
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *foodGroupRepo) DeleteAndReindex(ctx context.Context, userID, id int64) ([]model.FoodGroup, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var g model.FoodGroup
		if err := tx.Where("id = ? AND user_id = ?", id, userID).Take(&g).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if g.IsSystem {
			return ErrSystemGroup
		}

		var unassigned model.FoodGroup
		if err := tx.Where("user_id = ? AND is_system = ?", userID, true).
			Take(&unassigned).Error; err != nil {
			return err
		}

		// Осиротевшие строки пантри уходят в Unassigned.
		if err := tx.Model(&model.PantryItem{}).
			Where("user_id = ? AND foodgroup_id = ?", userID, id).
			Update("foodgroup_id", unassigned.ID).Error; err != nil {
			return err
		}

		if err := tx.Delete(&g).Error; err != nil {
			return err
		}

		// Закрываем дыру в display_order.
		return tx.Model(&model.FoodGroup{}).
			Where("user_id = ? AND is_system = ? AND display_order > ?", userID, false, g.DisplayOrder).
			Update("display_order", gorm.Expr("display_order - 1")).Error
	})
	if err != nil {
		return nil, err
	}
	return r.ListByUser(ctx, userID)
}
