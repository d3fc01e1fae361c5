package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/KSONG-cloud/pantry-tracker-2/internal/model"
	"github.com/KSONG-cloud/pantry-tracker-2/internal/repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPantry_List(t *testing.T) {
	pr := new(mockPantryRepo)
	router := newTestRouter(t, pr, new(mockFoodRepo), new(mockGroupRepo))

	t.Run("ok", func(t *testing.T) {
		pr.ExpectedCalls = nil
		pr.On("ListByUser", mock.Anything, int64(1)).Return([]model.PantryItem{
			{ID: 5, UserID: 1, FoodID: 2, FoodName: "Milk", Quantity: 3,
				AddedDate: model.NewDate(2025, time.April, 1)},
		}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/users/1/pantry", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var items []map[string]any
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &items))
		require.Len(t, items, 1)
		assert.Equal(t, "Milk", items[0]["food_name"])
		assert.Equal(t, "2025-04-01", items[0]["added_date"])
		// null-даты сериализуются как null
		assert.Nil(t, items[0]["expiry_date"])
	})

	t.Run("invalid user id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/users/abc/pantry", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "message")
	})

	t.Run("session user mismatch", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/users/1/pantry", nil)
		addAuthCookie(t, req, 2, "test-secret")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}

func TestPantry_Add(t *testing.T) {
	pr := new(mockPantryRepo)
	fr := new(mockFoodRepo)
	router := newTestRouter(t, pr, fr, new(mockGroupRepo))

	t.Run("created", func(t *testing.T) {
		fr.On("GetOrCreate", mock.Anything, "Green Beans").
			Return(&model.Food{ID: 9, FoodName: "Green Beans"}, nil).Once()
		pr.On("Create", mock.Anything, mock.MatchedBy(func(it *model.PantryItem) bool {
			return it.UserID == 1 && it.FoodID == 9 && it.Quantity == 2
		})).Return(&model.PantryItem{ID: 77, UserID: 1, FoodID: 9, Quantity: 2,
			AddedDate: model.NewDate(2025, time.April, 1)}, nil).Once()

		body := `{"id":-3,"food_name":"Green Beans","foodgroup_id":10,"quantity":2,"added_date":"2025-04-01"}`
		req := httptest.NewRequest(http.MethodPost, "/users/1/pantry", strings.NewReader(body))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusCreated, rr.Code)
		var created map[string]any
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
		assert.Equal(t, float64(77), created["id"])
		assert.Equal(t, "Green Beans", created["food_name"])
	})

	t.Run("validation error", func(t *testing.T) {
		body := `{"food_name":"","quantity":1,"added_date":"2025-04-01"}`
		req := httptest.NewRequest(http.MethodPost, "/users/1/pantry", strings.NewReader(body))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestPantry_Edit(t *testing.T) {
	pr := new(mockPantryRepo)
	fr := new(mockFoodRepo)
	router := newTestRouter(t, pr, fr, new(mockGroupRepo))

	t.Run("sparse patch with explicit null", func(t *testing.T) {
		pr.On("Patch", mock.Anything, int64(1), int64(5), mock.MatchedBy(func(u map[string]any) bool {
			if u["quantity"] != int64(4) {
				return false
			}
			v, present := u["expiry_date"]
			if !present || v != nil {
				return false
			}
			// отсутствующие поля не попадают в update
			_, hasGroup := u["foodgroup_id"]
			return !hasGroup
		})).Return(&model.PantryItem{ID: 5, UserID: 1, Quantity: 4,
			AddedDate: model.NewDate(2025, time.April, 1)}, nil).Once()

		body := `{"id":5,"quantity":4,"expiry_date":null}`
		req := httptest.NewRequest(http.MethodPatch, "/users/1/pantry/5", bytes.NewReader([]byte(body)))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		pr.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		pr.On("Patch", mock.Anything, int64(1), int64(99), mock.Anything).
			Return(nil, repo.ErrNotFound).Once()

		req := httptest.NewRequest(http.MethodPatch, "/users/1/pantry/99", strings.NewReader(`{"quantity":1}`))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestPantry_Delete(t *testing.T) {
	pr := new(mockPantryRepo)
	router := newTestRouter(t, pr, new(mockFoodRepo), new(mockGroupRepo))

	pr.On("SoftDelete", mock.Anything, int64(1), int64(5)).Return(nil).Once()

	req := httptest.NewRequest(http.MethodPatch, "/users/1/pantry/5/delete", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"removed":true`)
	pr.AssertExpectations(t)
}

func TestFoodMap(t *testing.T) {
	fr := new(mockFoodRepo)
	router := newTestRouter(t, new(mockPantryRepo), fr, new(mockGroupRepo))

	fr.On("List", mock.Anything).Return([]model.Food{{ID: 1, FoodName: "Milk"}}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/foodmap", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Milk")
}
