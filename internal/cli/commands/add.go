package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/KSONG-cloud/pantry-tracker-2/internal/cli/pantry"
	"github.com/KSONG-cloud/pantry-tracker-2/internal/config"
	srv "github.com/KSONG-cloud/pantry-tracker-2/internal/model"
)

type addCmd struct{}

func (addCmd) Name() string { return "add" }
func (addCmd) Description() string {
	return "Добавить продукт в пантри"
}
func (addCmd) Usage() string {
	return "add <name> [--group id] [--qty n] [--units u] [--expiry YYYY-MM-DD] [--bestbefore YYYY-MM-DD]"
}

func (addCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	group := fs.Int64("group", 0, "id группы (0 — Unassigned)")
	qty := fs.Int64("qty", 1, "количество")
	units := fs.String("units", "", "единицы измерения")
	expiry := fs.String("expiry", "", "срок годности YYYY-MM-DD")
	bestbefore := fs.String("bestbefore", "", "best before YYYY-MM-DD")
	if err := fs.Parse(args); err != nil || fs.NArg() != 1 {
		return ErrUsage
	}

	in := pantry.AddItemInput{
		FoodName:    fs.Arg(0),
		FoodGroupID: *group,
		Quantity:    *qty,
	}
	if *units != "" {
		in.Units = units
	}
	if *expiry != "" {
		d, err := srv.ParseDate(*expiry)
		if err != nil {
			return ErrUsage
		}
		in.ExpiryDate = &d
	}
	if *bestbefore != "" {
		d, err := srv.ParseDate(*bestbefore)
		if err != nil {
			return ErrUsage
		}
		in.BestBeforeDate = &d
	}

	c, err := openController(ctx, cfg)
	if err != nil {
		return err
	}
	if in.FoodGroupID == 0 {
		// без явной группы запись попадает в системную Unassigned
		for _, g := range c.State().Groups() {
			if g.IsSystem {
				in.FoodGroupID = g.ID
				break
			}
		}
	}

	created, err := c.AddFoodItem(ctx, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "✓ Добавлено: [%d] %s ×%d\n", created.ID, created.FoodName, created.Quantity)
	return nil
}

func init() { RegisterCmd(addCmd{}) }
