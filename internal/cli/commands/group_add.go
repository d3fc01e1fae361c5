package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/KSONG-cloud/pantry-tracker-2/internal/config"
)

type groupAddCmd struct{}

func (groupAddCmd) Name() string { return "group-add" }
func (groupAddCmd) Description() string {
	return "Создать группу продуктов"
}
func (groupAddCmd) Usage() string { return "group-add <name>" }

func (groupAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) == 0 {
		return ErrUsage
	}
	name := strings.Join(args, " ")

	c, err := openController(ctx, cfg)
	if err != nil {
		return err
	}
	created, err := c.AddFoodGroup(ctx, name)
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "✓ Создана группа [%d] %s\n", created.ID, created.Name)
	return nil
}

func init() { RegisterCmd(groupAddCmd{}) }
