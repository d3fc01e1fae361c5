package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/KSONG-cloud/pantry-tracker-2/internal/model"
	"github.com/KSONG-cloud/pantry-tracker-2/internal/opt"
	"github.com/KSONG-cloud/pantry-tracker-2/internal/repo"
	"github.com/KSONG-cloud/pantry-tracker-2/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Minimal mocks
type mockPantryRepo struct{ mock.Mock }

func (m *mockPantryRepo) ListByUser(ctx context.Context, userID int64) ([]model.PantryItem, error) {
	args := m.Called(ctx, userID)
	if v, ok := args.Get(0).([]model.PantryItem); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockPantryRepo) GetByID(ctx context.Context, userID, id int64) (*model.PantryItem, error) {
	args := m.Called(ctx, userID, id)
	if v, ok := args.Get(0).(*model.PantryItem); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockPantryRepo) Create(ctx context.Context, item *model.PantryItem) (*model.PantryItem, error) {
	args := m.Called(ctx, item)
	if v, ok := args.Get(0).(*model.PantryItem); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockPantryRepo) Patch(ctx context.Context, userID, id int64, updates map[string]any) (*model.PantryItem, error) {
	args := m.Called(ctx, userID, id, updates)
	if v, ok := args.Get(0).(*model.PantryItem); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockPantryRepo) SoftDelete(ctx context.Context, userID, id int64) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

var _ repo.PantryRepository = (*mockPantryRepo)(nil)

type mockFoodRepo struct{ mock.Mock }

func (m *mockFoodRepo) List(ctx context.Context) ([]model.Food, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.Food); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockFoodRepo) GetOrCreate(ctx context.Context, name string) (*model.Food, error) {
	args := m.Called(ctx, name)
	if v, ok := args.Get(0).(*model.Food); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.FoodRepository = (*mockFoodRepo)(nil)

func TestPantryService_Add_ResolvesFoodName(t *testing.T) {
	pr := new(mockPantryRepo)
	fr := new(mockFoodRepo)
	svc := service.NewPantryService(pr, fr)

	fr.On("GetOrCreate", mock.Anything, "Milk").
		Return(&model.Food{ID: 7, FoodName: "Milk"}, nil).Once()
	pr.On("Create", mock.Anything, mock.MatchedBy(func(it *model.PantryItem) bool {
		return it.FoodID == 7 && it.UserID == 1 && it.Quantity == 2
	})).Return(&model.PantryItem{ID: 100, UserID: 1, FoodID: 7, Quantity: 2}, nil).Once()

	created, err := svc.Add(context.Background(), 1, service.AddFoodItemInput{
		FoodName:    "Milk",
		FoodGroupID: 10,
		Quantity:    2,
		AddedDate:   model.NewDate(2025, time.May, 1),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(100), created.ID)
	assert.Equal(t, "Milk", created.FoodName)
	pr.AssertExpectations(t)
	fr.AssertExpectations(t)
}

func TestPantryService_Add_Validation(t *testing.T) {
	svc := service.NewPantryService(new(mockPantryRepo), new(mockFoodRepo))
	ctx := context.Background()

	_, err := svc.Add(ctx, 0, service.AddFoodItemInput{FoodName: "Milk"})
	assert.ErrorIs(t, err, service.ErrValidation)

	_, err = svc.Add(ctx, 1, service.AddFoodItemInput{FoodName: "  "})
	assert.ErrorIs(t, err, service.ErrValidation)

	_, err = svc.Add(ctx, 1, service.AddFoodItemInput{
		FoodName: "Milk", Quantity: -1, AddedDate: model.Today(),
	})
	assert.ErrorIs(t, err, service.ErrValidation)
}

func TestPantryService_Edit_BuildsSparseUpdate(t *testing.T) {
	pr := new(mockPantryRepo)
	fr := new(mockFoodRepo)
	svc := service.NewPantryService(pr, fr)

	fr.On("GetOrCreate", mock.Anything, "Green Beans").
		Return(&model.Food{ID: 9, FoodName: "Green Beans"}, nil).Once()
	pr.On("Patch", mock.Anything, int64(1), int64(5), mock.MatchedBy(func(u map[string]any) bool {
		if u["food_id"] != int64(9) || u["quantity"] != int64(4) {
			return false
		}
		// явный null стирает дату
		v, present := u["expiry_date"]
		return present && v == nil
	})).Return(&model.PantryItem{ID: 5, Quantity: 4}, nil).Once()

	edit := service.FoodItemEdit{
		FoodName:   opt.Of("Green Beans"),
		Quantity:   opt.Of(int64(4)),
		ExpiryDate: opt.Null[model.Date](),
	}
	updated, err := svc.Edit(context.Background(), 1, 5, edit)
	require.NoError(t, err)
	assert.Equal(t, int64(4), updated.Quantity)
	pr.AssertExpectations(t)
}

func TestPantryService_Edit_NullRequiredFieldRejected(t *testing.T) {
	svc := service.NewPantryService(new(mockPantryRepo), new(mockFoodRepo))

	_, err := svc.Edit(context.Background(), 1, 5, service.FoodItemEdit{
		Quantity: opt.Null[int64](),
	})
	assert.ErrorIs(t, err, service.ErrValidation)

	_, err = svc.Edit(context.Background(), 1, 5, service.FoodItemEdit{
		FoodGroupID: opt.Null[int64](),
	})
	assert.ErrorIs(t, err, service.ErrValidation)
}

func TestPantryService_Delete_PassesThrough(t *testing.T) {
	pr := new(mockPantryRepo)
	svc := service.NewPantryService(pr, new(mockFoodRepo))

	pr.On("SoftDelete", mock.Anything, int64(1), int64(3)).Return(repo.ErrNotFound).Once()
	err := svc.Delete(context.Background(), 1, 3)
	assert.ErrorIs(t, err, service.ErrNotFound)
	pr.AssertExpectations(t)
}
