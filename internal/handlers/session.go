package handlers

import (
	"net/http"
	"strconv"

	"github.com/KSONG-cloud/pantry-tracker-2/internal/config"
	"github.com/KSONG-cloud/pantry-tracker-2/internal/middleware"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// SessionHandler выдаёт подписанную cookie сессии для user id из пути.
// Это транспортная обвязка, а не модель аутентификации: инструмент
// однопользовательский, cookie лишь связывает клиента с его user id.
type SessionHandler struct {
	Logger *zap.SugaredLogger
	Config *config.Config
}

// NewSessionHandler создаёт хендлер сессий
func NewSessionHandler(logger *zap.SugaredLogger, cfg *config.Config) *SessionHandler {
	return &SessionHandler{Logger: logger, Config: cfg}
}

// Open ставит cookie auth_token для указанного пользователя.
func (h *SessionHandler) Open(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userId"), 10, 64)
	if err != nil || userID <= 0 {
		writeMessage(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	if err := middleware.SetLoginCookie(w, userID, h.Config.AuthSecret); err != nil {
		h.Logger.Errorw("Open session: failed to sign cookie", "user_id", userID, "error", err)
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"user_id": userID})
}
