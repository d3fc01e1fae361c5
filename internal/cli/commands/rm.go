package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/KSONG-cloud/pantry-tracker-2/internal/config"
)

type rmCmd struct{}

func (rmCmd) Name() string { return "rm" }
func (rmCmd) Description() string {
	return "Удалить запись из пантри"
}
func (rmCmd) Usage() string { return "rm <id>" }

func (rmCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return ErrUsage
	}

	c, err := openController(ctx, cfg)
	if err != nil {
		return err
	}
	if err := c.DeleteFoodItem(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(Out, "✓ Удалено: [%d]\n", id)
	return nil
}

func init() { RegisterCmd(rmCmd{}) }
