package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/KSONG-cloud/pantry-tracker-2/internal/model"
	"github.com/KSONG-cloud/pantry-tracker-2/internal/repo"
)

// ErrSystemGroup реэкспорт для хендлеров.
var ErrSystemGroup = repo.ErrSystemGroup

// FoodGroupService инкапсулирует бизнес-логику групп продуктов.
type FoodGroupService struct {
	groups repo.FoodGroupRepository
}

func NewFoodGroupService(groups repo.FoodGroupRepository) *FoodGroupService {
	return &FoodGroupService{groups: groups}
}

// List возвращает группы пользователя, гарантируя существование Unassigned.
func (s *FoodGroupService) List(ctx context.Context, userID int64) ([]model.FoodGroup, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: invalid user id", ErrValidation)
	}
	if _, err := s.groups.EnsureUnassigned(ctx, userID); err != nil {
		return nil, err
	}
	return s.groups.ListByUser(ctx, userID)
}

// Create заводит несистемную группу со следующим display_order.
func (s *FoodGroupService) Create(ctx context.Context, userID int64, name string) (*model.FoodGroup, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: invalid user id", ErrValidation)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: group name is required", ErrValidation)
	}
	return s.groups.Create(ctx, userID, name)
}

// Delete удаляет группу с серверным переиндексированием и возвращает
// обновлённый список групп (клиент заменяет им локальное состояние целиком).
func (s *FoodGroupService) Delete(ctx context.Context, userID, id int64) ([]model.FoodGroup, error) {
	if userID <= 0 || id <= 0 {
		return nil, fmt.Errorf("%w: invalid id", ErrValidation)
	}
	// Unassigned должна существовать до переноса осиротевших строк.
	if _, err := s.groups.EnsureUnassigned(ctx, userID); err != nil {
		return nil, err
	}
	return s.groups.DeleteAndReindex(ctx, userID, id)
}
