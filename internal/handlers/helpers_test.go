package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/KSONG-cloud/pantry-tracker-2/internal/config"
	"github.com/KSONG-cloud/pantry-tracker-2/internal/handlers"
	"github.com/KSONG-cloud/pantry-tracker-2/internal/middleware"
	"github.com/KSONG-cloud/pantry-tracker-2/internal/model"
	"github.com/KSONG-cloud/pantry-tracker-2/internal/repo"
	"github.com/KSONG-cloud/pantry-tracker-2/internal/service"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
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

type mockGroupRepo struct{ mock.Mock }

func (m *mockGroupRepo) ListByUser(ctx context.Context, userID int64) ([]model.FoodGroup, error) {
	args := m.Called(ctx, userID)
	if v, ok := args.Get(0).([]model.FoodGroup); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockGroupRepo) GetByID(ctx context.Context, userID, id int64) (*model.FoodGroup, error) {
	args := m.Called(ctx, userID, id)
	if v, ok := args.Get(0).(*model.FoodGroup); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockGroupRepo) EnsureUnassigned(ctx context.Context, userID int64) (*model.FoodGroup, error) {
	args := m.Called(ctx, userID)
	if v, ok := args.Get(0).(*model.FoodGroup); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockGroupRepo) Create(ctx context.Context, userID int64, name string) (*model.FoodGroup, error) {
	args := m.Called(ctx, userID, name)
	if v, ok := args.Get(0).(*model.FoodGroup); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockGroupRepo) DeleteAndReindex(ctx context.Context, userID, id int64) ([]model.FoodGroup, error) {
	args := m.Called(ctx, userID, id)
	if v, ok := args.Get(0).([]model.FoodGroup); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.FoodGroupRepository = (*mockGroupRepo)(nil)

// --- Helpers ---
func newTestRouter(t *testing.T, pr repo.PantryRepository, fr repo.FoodRepository, gr repo.FoodGroupRepository) http.Handler {
	t.Helper()
	cfg := &config.Config{AuthSecret: "test-secret"}
	logger := zap.NewNop().Sugar()

	pantrySvc := service.NewPantryService(pr, fr)
	groupSvc := service.NewFoodGroupService(gr)

	h := handlers.NewHandler(pantrySvc, groupSvc, logger, cfg)
	return h.Router
}

func addAuthCookie(t *testing.T, req *http.Request, userID int64, secret string) {
	t.Helper()
	rr := httptest.NewRecorder()
	_ = middleware.SetLoginCookie(rr, userID, secret)
	for _, c := range rr.Result().Cookies() {
		req.AddCookie(c)
	}
}
