package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/KSONG-cloud/pantry-tracker-2/internal/config"
)

type mvCmd struct{}

func (mvCmd) Name() string { return "mv" }
func (mvCmd) Description() string {
	return "Перенести запись в другую группу"
}
func (mvCmd) Usage() string { return "mv <item-id> <group-id>" }

func (mvCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	itemID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return ErrUsage
	}
	groupID, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return ErrUsage
	}

	c, err := openController(ctx, cfg)
	if err != nil {
		return err
	}
	if err := c.MoveItemToGroup(ctx, itemID, groupID); err != nil {
		return err
	}
	fmt.Fprintf(Out, "✓ Запись [%d] перенесена в группу [%d]\n", itemID, groupID)
	return nil
}

func init() { RegisterCmd(mvCmd{}) }
