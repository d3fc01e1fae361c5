package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/KSONG-cloud/pantry-tracker-2/internal/config"
)

type qtyCmd struct{}

func (qtyCmd) Name() string { return "qty" }
func (qtyCmd) Description() string {
	return "Изменить количество на дельту (насыщение в нуле)"
}
func (qtyCmd) Usage() string { return "qty <id> <delta>" }

func (qtyCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return ErrUsage
	}
	delta, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil || delta == 0 {
		return ErrUsage
	}

	c, err := openController(ctx, cfg)
	if err != nil {
		return err
	}
	if err := c.ChangeQuantity(ctx, id, delta); err != nil {
		return err
	}

	for _, it := range c.State().Items() {
		if it.ID == id {
			fmt.Fprintf(Out, "✓ %s: количество %d\n", it.FoodName, it.Quantity)
			break
		}
	}
	return nil
}

func init() { RegisterCmd(qtyCmd{}) }
