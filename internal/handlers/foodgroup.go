package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/KSONG-cloud/pantry-tracker-2/internal/model"
	"github.com/KSONG-cloud/pantry-tracker-2/internal/service"
	"go.uber.org/zap"
)

// FoodGroupHandler обрабатывает CRUD групп продуктов.
type FoodGroupHandler struct {
	Service *service.FoodGroupService
	Logger  *zap.SugaredLogger
}

// NewFoodGroupHandler создаёт хендлер групп
func NewFoodGroupHandler(svc *service.FoodGroupService, logger *zap.SugaredLogger) *FoodGroupHandler {
	return &FoodGroupHandler{Service: svc, Logger: logger}
}

type addFoodGroupRequest struct {
	Name string `json:"name"`
}

// List отдаёт группы пользователя (системная Unassigned гарантирована).
func (h *FoodGroupHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, status, msg := userIDFromRequest(r)
	if status != 0 {
		writeMessage(w, status, msg)
		return
	}

	groups, err := h.Service.List(r.Context(), userID)
	if err != nil {
		h.Logger.Errorw("List groups: service error", "user_id", userID, "error", err)
		status, msg := serviceError(err)
		writeMessage(w, status, msg)
		return
	}
	if groups == nil {
		groups = []model.FoodGroup{}
	}
	writeJSON(w, http.StatusOK, groups)
}

// Add создаёт несистемную группу и возвращает её с серверным id.
func (h *FoodGroupHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID, status, msg := userIDFromRequest(r)
	if status != 0 {
		writeMessage(w, status, msg)
		return
	}

	var req addFoodGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Add group: invalid request body", "error", err)
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.Service.Create(r.Context(), userID, req.Name)
	if err != nil {
		h.Logger.Warnw("Add group: service error", "user_id", userID, "error", err)
		status, msg := serviceError(err)
		writeMessage(w, status, msg)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// Delete удаляет группу; ответ — полный обновлённый список групп после
// серверного переиндексирования.
func (h *FoodGroupHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, status, msg := userIDFromRequest(r)
	if status != 0 {
		writeMessage(w, status, msg)
		return
	}
	id, ok := idParam(r)
	if !ok {
		writeMessage(w, http.StatusBadRequest, "Invalid group id")
		return
	}

	groups, err := h.Service.Delete(r.Context(), userID, id)
	if err != nil {
		h.Logger.Warnw("Delete group: service error", "user_id", userID, "id", id, "error", err)
		status, msg := serviceError(err)
		writeMessage(w, status, msg)
		return
	}
	writeJSON(w, http.StatusOK, groups)
}
