package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/KSONG-cloud/pantry-tracker-2/internal/config"
	"github.com/KSONG-cloud/pantry-tracker-2/internal/middleware"
	"github.com/KSONG-cloud/pantry-tracker-2/internal/service"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	pantryService *service.PantryService,
	groupService *service.FoodGroupService,
	logger *zap.SugaredLogger,
	cfg *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(cfg.AuthSecret))

	// Handlers
	pantryHandler := NewPantryHandler(pantryService, logger)
	groupHandler := NewFoodGroupHandler(groupService, logger)
	sessionHandler := NewSessionHandler(logger, cfg)

	// Food dictionary
	r.Get("/foodmap", pantryHandler.FoodMap)

	r.Route("/users/{userId}", func(r chi.Router) {
		r.Post("/session", sessionHandler.Open)

		// Pantry routes
		r.Get("/pantry", pantryHandler.List)
		r.Post("/pantry", pantryHandler.Add)
		r.Patch("/pantry/{id}", pantryHandler.Edit)
		r.Patch("/pantry/{id}/delete", pantryHandler.Delete)

		// Food group routes
		r.Get("/foodgroups", groupHandler.List)
		r.Post("/foodgroups", groupHandler.Add)
		r.Delete("/foodgroups/{id}/delete", groupHandler.Delete)
	})

	return &Handler{Router: r}
}

// errorResponse — единый конверт ошибок: {"message": "..."}.
type errorResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Message: msg})
}

// userIDFromRequest извлекает user id из пути. Если запрос пришёл с валидной
// cookie сессии, её user id обязан совпадать с путевым.
func userIDFromRequest(r *http.Request) (int64, int, string) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userId"), 10, 64)
	if err != nil || userID <= 0 {
		return 0, http.StatusBadRequest, "Invalid user id"
	}
	if uid, ok := middleware.GetUserIDFromContext(r.Context()); ok && uid != userID {
		return 0, http.StatusForbidden, "Session user mismatch"
	}
	return userID, 0, ""
}

func idParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil && id > 0
}

// serviceError маппит ошибки сервиса в HTTP-статус и сообщение.
func serviceError(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrValidation):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, "Not found"
	case errors.Is(err, service.ErrSystemGroup):
		return http.StatusBadRequest, "Cannot delete the Unassigned group"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
