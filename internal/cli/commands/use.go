package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/KSONG-cloud/pantry-tracker-2/internal/config"
)

type useCmd struct{}

func (useCmd) Name() string { return "use" }
func (useCmd) Description() string {
	return "Открыть сессию для пользователя и запомнить его"
}
func (useCmd) Usage() string { return "use <user-id>" }

func (useCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	userID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || userID <= 0 {
		return ErrUsage
	}

	client := newAPIClient(cfg)
	token, err := client.OpenSession(ctx, userID)
	if err != nil {
		return err
	}

	if err := sessionStore.Save(token); err != nil {
		return err
	}
	if err := userStore.SaveUserID(userID); err != nil {
		return err
	}
	fmt.Fprintf(Out, "✓ Сессия открыта для пользователя %d\n", userID)
	return nil
}

func init() { RegisterCmd(useCmd{}) }
