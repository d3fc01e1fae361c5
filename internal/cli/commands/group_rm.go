package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/KSONG-cloud/pantry-tracker-2/internal/config"
)

type groupRmCmd struct{}

func (groupRmCmd) Name() string { return "group-rm" }
func (groupRmCmd) Description() string {
	return "Удалить группу; её записи переезжают в Unassigned"
}
func (groupRmCmd) Usage() string { return "group-rm <id>" }

func (groupRmCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
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
	if err := c.DeleteFoodGroup(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(Out, "✓ Группа [%d] удалена\n", id)
	return nil
}

func init() { RegisterCmd(groupRmCmd{}) }
