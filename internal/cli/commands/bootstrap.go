package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/KSONG-cloud/pantry-tracker-2/internal/cli/api"
	"github.com/KSONG-cloud/pantry-tracker-2/internal/cli/pantry"
	"github.com/KSONG-cloud/pantry-tracker-2/internal/cli/repo"
	"github.com/KSONG-cloud/pantry-tracker-2/internal/cli/repo/fs"
	"github.com/KSONG-cloud/pantry-tracker-2/internal/config"
)

// Команды работают с хранилищами через интерфейсы repo;
// в тестах переменные подменяются на in-memory реализации.
var (
	sessionStore repo.SessionStore     = fs.SessionFSStore{}
	userStore    repo.UserContextStore = fs.SessionFSStore{}
)

// resolveUserID выбирает активного пользователя: сохранённый командой use
// контекст имеет приоритет над значением из конфига.
func resolveUserID(cfg *config.Config) int64 {
	if id, err := userStore.LoadUserID(); err == nil && id > 0 {
		return id
	}
	return cfg.UserID
}

// newAPIClient собирает клиент API с сохранённым сессионным токеном (если есть).
func newAPIClient(cfg *config.Config) *api.Client {
	token, _ := sessionStore.Load()
	return api.New(cfg.ServerURL, token)
}

// openController собирает контроллер и загружает состояние с сервера.
func openController(ctx context.Context, cfg *config.Config) (*pantry.Controller, error) {
	c := pantry.NewController(
		newAPIClient(cfg),
		pantry.NewState(),
		pantry.NewTempIDs(),
		zap.NewNop().Sugar(),
		resolveUserID(cfg),
	)
	if err := c.Load(ctx); err != nil {
		return nil, err
	}
	return c, nil
}
