package commands

import (
	"context"
	"fmt"

	"github.com/KSONG-cloud/pantry-tracker-2/internal/config"
)

type groupsCmd struct{}

func (groupsCmd) Name() string { return "groups" }
func (groupsCmd) Description() string {
	return "Показать группы продуктов"
}
func (groupsCmd) Usage() string { return "groups" }

func (groupsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}

	c, err := openController(ctx, cfg)
	if err != nil {
		return err
	}

	for _, g := range c.State().Groups() {
		system := ""
		if g.IsSystem {
			system = " (system)"
		}
		fmt.Fprintf(Out, "- [%d] %s  order=%d%s\n", g.ID, g.Name, g.DisplayOrder, system)
	}
	return nil
}

func init() { RegisterCmd(groupsCmd{}) }
