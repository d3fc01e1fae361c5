package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/KSONG-cloud/pantry-tracker-2/internal/model"
	"github.com/KSONG-cloud/pantry-tracker-2/internal/opt"
	"github.com/KSONG-cloud/pantry-tracker-2/internal/repo"
)

// ErrValidation помечает ошибки входных данных; хендлеры отвечают на них 400.
var ErrValidation = errors.New("validation")

// ErrNotFound реэкспорт для хендлеров, чтобы не тянуть repo напрямую.
var ErrNotFound = repo.ErrNotFound

// AddFoodItemInput — вход создания строки пантри. Имя уже нормализовано
// клиентом; сервер дополнительно дедуплицирует его в словаре без учёта регистра.
type AddFoodItemInput struct {
	FoodName       string
	FoodGroupID    int64
	Quantity       int64
	Units          *string
	AddedDate      model.Date
	ExpiryDate     *model.Date
	BestBeforeDate *model.Date
}

// FoodItemEdit — частичное обновление строки пантри. Каждое поле различает
// "не прислано", "прислано null" и "прислано значение".
type FoodItemEdit struct {
	FoodName       opt.Optional[string]
	FoodGroupID    opt.Optional[int64]
	Quantity       opt.Optional[int64]
	Units          opt.Optional[string]
	AddedDate      opt.Optional[model.Date]
	ExpiryDate     opt.Optional[model.Date]
	BestBeforeDate opt.Optional[model.Date]
}

// PantryService инкапсулирует бизнес-логику работы со строками пантри.
type PantryService struct {
	pantry repo.PantryRepository
	foods  repo.FoodRepository
}

func NewPantryService(pantry repo.PantryRepository, foods repo.FoodRepository) *PantryService {
	return &PantryService{pantry: pantry, foods: foods}
}

// List возвращает неудалённые строки пользователя.
func (s *PantryService) List(ctx context.Context, userID int64) ([]model.PantryItem, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: invalid user id", ErrValidation)
	}
	return s.pantry.ListByUser(ctx, userID)
}

// FoodMap возвращает словарь канонических имён.
func (s *PantryService) FoodMap(ctx context.Context) ([]model.Food, error) {
	return s.foods.List(ctx)
}

// Add создаёт строку пантри, при необходимости заводя каноническое имя.
func (s *PantryService) Add(ctx context.Context, userID int64, in AddFoodItemInput) (*model.PantryItem, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: invalid user id", ErrValidation)
	}
	if strings.TrimSpace(in.FoodName) == "" {
		return nil, fmt.Errorf("%w: food name is required", ErrValidation)
	}
	if in.Quantity < 0 {
		return nil, fmt.Errorf("%w: quantity must be >= 0", ErrValidation)
	}
	if in.AddedDate.IsZero() {
		return nil, fmt.Errorf("%w: added date is required", ErrValidation)
	}

	food, err := s.foods.GetOrCreate(ctx, in.FoodName)
	if err != nil {
		return nil, err
	}

	item := &model.PantryItem{
		UserID:         userID,
		FoodID:         food.ID,
		FoodGroupID:    in.FoodGroupID,
		AddedDate:      in.AddedDate,
		ExpiryDate:     in.ExpiryDate,
		BestBeforeDate: in.BestBeforeDate,
		Quantity:       in.Quantity,
		Units:          in.Units,
	}
	created, err := s.pantry.Create(ctx, item)
	if err != nil {
		return nil, err
	}
	created.FoodName = food.FoodName
	return created, nil
}

// Edit применяет частичное обновление. Смена food_name переразрешает food_id
// через словарь.
func (s *PantryService) Edit(ctx context.Context, userID, id int64, edit FoodItemEdit) (*model.PantryItem, error) {
	if userID <= 0 || id <= 0 {
		return nil, fmt.Errorf("%w: invalid id", ErrValidation)
	}

	updates := map[string]any{}

	if edit.FoodName.Set {
		if !edit.FoodName.Valid || strings.TrimSpace(edit.FoodName.Value) == "" {
			return nil, fmt.Errorf("%w: food name cannot be empty", ErrValidation)
		}
		food, err := s.foods.GetOrCreate(ctx, edit.FoodName.Value)
		if err != nil {
			return nil, err
		}
		updates["food_id"] = food.ID
	}
	if edit.FoodGroupID.Set {
		if !edit.FoodGroupID.Valid {
			return nil, fmt.Errorf("%w: foodgroup_id cannot be null", ErrValidation)
		}
		updates["foodgroup_id"] = edit.FoodGroupID.Value
	}
	if edit.Quantity.Set {
		if !edit.Quantity.Valid {
			return nil, fmt.Errorf("%w: quantity cannot be null", ErrValidation)
		}
		if edit.Quantity.Value < 0 {
			return nil, fmt.Errorf("%w: quantity must be >= 0", ErrValidation)
		}
		updates["quantity"] = edit.Quantity.Value
	}
	if edit.Units.Set {
		if edit.Units.Valid {
			updates["units"] = edit.Units.Value
		} else {
			updates["units"] = nil
		}
	}
	if edit.AddedDate.Set {
		if !edit.AddedDate.Valid || edit.AddedDate.Value.IsZero() {
			return nil, fmt.Errorf("%w: added date cannot be null", ErrValidation)
		}
		updates["added_date"] = edit.AddedDate.Value
	}
	if edit.ExpiryDate.Set {
		if edit.ExpiryDate.Valid {
			updates["expiry_date"] = edit.ExpiryDate.Value
		} else {
			updates["expiry_date"] = nil
		}
	}
	if edit.BestBeforeDate.Set {
		if edit.BestBeforeDate.Valid {
			updates["bestbefore_date"] = edit.BestBeforeDate.Value
		} else {
			updates["bestbefore_date"] = nil
		}
	}

	return s.pantry.Patch(ctx, userID, id, updates)
}

// Delete мягко удаляет строку пантри.
func (s *PantryService) Delete(ctx context.Context, userID, id int64) error {
	if userID <= 0 || id <= 0 {
		return fmt.Errorf("%w: invalid id", ErrValidation)
	}
	return s.pantry.SoftDelete(ctx, userID, id)
}
