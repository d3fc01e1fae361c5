package repo

import (
	"context"
	"errors"
	"strings"

	"github.com/KSONG-cloud/pantry-tracker-2/internal/model"
	"gorm.io/gorm"
)

// FoodRepository — словарь канонических имён продуктов.
type FoodRepository interface {
	// List возвращает весь словарь имён.
	List(ctx context.Context) ([]model.Food, error)

	// GetOrCreate ищет имя без учёта регистра; новая каноническая строка
	// создаётся только если совпадения нет.
	GetOrCreate(ctx context.Context, name string) (*model.Food, error)
}

type foodRepo struct {
	db *gorm.DB
}

// NewFoodRepository создаёт реализацию репозитория словаря продуктов.
func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepo{db: db}
}

func (r *foodRepo) List(ctx context.Context) ([]model.Food, error) {
	var foods []model.Food
	if err := r.db.WithContext(ctx).Order("id").Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}

func (r *foodRepo) GetOrCreate(ctx context.Context, name string) (*model.Food, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("food name cannot be empty")
	}

	var food model.Food
	err := r.db.WithContext(ctx).
		Where("LOWER(food_name) = LOWER(?)", name).
		First(&food).Error
	if err == nil {
		return &food, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	food = model.Food{FoodName: name}
	if err := r.db.WithContext(ctx).Create(&food).Error; err != nil {
		return nil, err
	}
	return &food, nil
}
