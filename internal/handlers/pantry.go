package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/KSONG-cloud/pantry-tracker-2/internal/model"
	"github.com/KSONG-cloud/pantry-tracker-2/internal/opt"
	"github.com/KSONG-cloud/pantry-tracker-2/internal/service"
	"go.uber.org/zap"
)

// PantryHandler обрабатывает CRUD строк пантри.
type PantryHandler struct {
	Service *service.PantryService
	Logger  *zap.SugaredLogger
}

// NewPantryHandler создаёт хендлер пантри
func NewPantryHandler(svc *service.PantryService, logger *zap.SugaredLogger) *PantryHandler {
	return &PantryHandler{Service: svc, Logger: logger}
}

// addFoodItemRequest — тело POST /users/{userId}/pantry. Клиент присылает
// optimistic-версию строки; отрицательный temp id игнорируется.
type addFoodItemRequest struct {
	FoodName       string      `json:"food_name"`
	FoodGroupID    int64       `json:"foodgroup_id"`
	Quantity       int64       `json:"quantity"`
	Units          *string     `json:"units"`
	AddedDate      model.Date  `json:"added_date"`
	ExpiryDate     *model.Date `json:"expiry_date"`
	BestBeforeDate *model.Date `json:"bestbefore_date"`
}

// editFoodItemRequest — тело PATCH: присутствие каждого поля значимо.
type editFoodItemRequest struct {
	FoodName       opt.Optional[string]     `json:"food_name"`
	FoodGroupID    opt.Optional[int64]      `json:"foodgroup_id"`
	Quantity       opt.Optional[int64]      `json:"quantity"`
	Units          opt.Optional[string]     `json:"units"`
	AddedDate      opt.Optional[model.Date] `json:"added_date"`
	ExpiryDate     opt.Optional[model.Date] `json:"expiry_date"`
	BestBeforeDate opt.Optional[model.Date] `json:"bestbefore_date"`
}

// FoodMap отдаёт словарь канонических имён продуктов.
func (h *PantryHandler) FoodMap(w http.ResponseWriter, r *http.Request) {
	foods, err := h.Service.FoodMap(r.Context())
	if err != nil {
		h.Logger.Errorw("FoodMap: service error", "error", err)
		status, msg := serviceError(err)
		writeMessage(w, status, msg)
		return
	}
	writeJSON(w, http.StatusOK, foods)
}

// List отдаёт неудалённые строки пантри пользователя.
func (h *PantryHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, status, msg := userIDFromRequest(r)
	if status != 0 {
		writeMessage(w, status, msg)
		return
	}

	items, err := h.Service.List(r.Context(), userID)
	if err != nil {
		h.Logger.Errorw("List: service error", "user_id", userID, "error", err)
		status, msg := serviceError(err)
		writeMessage(w, status, msg)
		return
	}
	if items == nil {
		items = []model.PantryItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

// Add создаёт строку пантри и возвращает её с серверным id.
func (h *PantryHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID, status, msg := userIDFromRequest(r)
	if status != 0 {
		writeMessage(w, status, msg)
		return
	}

	var req addFoodItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Add: invalid request body", "error", err)
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.Service.Add(r.Context(), userID, service.AddFoodItemInput{
		FoodName:       req.FoodName,
		FoodGroupID:    req.FoodGroupID,
		Quantity:       req.Quantity,
		Units:          req.Units,
		AddedDate:      req.AddedDate,
		ExpiryDate:     req.ExpiryDate,
		BestBeforeDate: req.BestBeforeDate,
	})
	if err != nil {
		h.Logger.Warnw("Add: service error", "user_id", userID, "error", err)
		status, msg := serviceError(err)
		writeMessage(w, status, msg)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// Edit применяет частичное обновление и возвращает обновлённую строку.
func (h *PantryHandler) Edit(w http.ResponseWriter, r *http.Request) {
	userID, status, msg := userIDFromRequest(r)
	if status != 0 {
		writeMessage(w, status, msg)
		return
	}
	id, ok := idParam(r)
	if !ok {
		writeMessage(w, http.StatusBadRequest, "Invalid item id")
		return
	}

	var req editFoodItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Edit: invalid request body", "error", err)
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.Service.Edit(r.Context(), userID, id, service.FoodItemEdit{
		FoodName:       req.FoodName,
		FoodGroupID:    req.FoodGroupID,
		Quantity:       req.Quantity,
		Units:          req.Units,
		AddedDate:      req.AddedDate,
		ExpiryDate:     req.ExpiryDate,
		BestBeforeDate: req.BestBeforeDate,
	})
	if err != nil {
		h.Logger.Warnw("Edit: service error", "user_id", userID, "id", id, "error", err)
		status, msg := serviceError(err)
		writeMessage(w, status, msg)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// Delete мягко удаляет строку пантри.
func (h *PantryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, status, msg := userIDFromRequest(r)
	if status != 0 {
		writeMessage(w, status, msg)
		return
	}
	id, ok := idParam(r)
	if !ok {
		writeMessage(w, http.StatusBadRequest, "Invalid item id")
		return
	}

	if err := h.Service.Delete(r.Context(), userID, id); err != nil {
		h.Logger.Warnw("Delete: service error", "user_id", userID, "id", id, "error", err)
		status, msg := serviceError(err)
		writeMessage(w, status, msg)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"id": id, "removed": true})
}
