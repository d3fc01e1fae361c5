package commands

import (
	"context"
	"fmt"
	"sort"

	"github.com/KSONG-cloud/pantry-tracker-2/internal/config"
)

type foodsCmd struct{}

func (foodsCmd) Name() string { return "foods" }
func (foodsCmd) Description() string {
	return "Показать словарь канонических имён продуктов"
}
func (foodsCmd) Usage() string { return "foods" }

func (foodsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}

	foods, err := newAPIClient(cfg).GetFoodMap(ctx)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(foods))
	for name := range foods {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(Out, "- [%d] %s\n", foods[name], name)
	}
	fmt.Fprintf(Out, "Всего: %d\n", len(names))
	return nil
}

func init() { RegisterCmd(foodsCmd{}) }
