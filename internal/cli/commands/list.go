package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/KSONG-cloud/pantry-tracker-2/internal/cli/freshness"
	"github.com/KSONG-cloud/pantry-tracker-2/internal/cli/model"
	"github.com/KSONG-cloud/pantry-tracker-2/internal/cli/sortfilter"
	"github.com/KSONG-cloud/pantry-tracker-2/internal/config"
)

type listCmd struct{}

func (listCmd) Name() string { return "list" }
func (listCmd) Description() string {
	return "Показать пантри по группам с метками свежести"
}
func (listCmd) Usage() string {
	return "list [--search q] [--fresh levels] [--sort key] [--dir asc|desc]"
}

func (listCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	search := fs.String("search", "", "подстрока имени (без учёта регистра)")
	fresh := fs.String("fresh", "", "уровни свежести через запятую: expired|critical|warning|ok|fresh")
	sortKey := fs.String("sort", string(sortfilter.SortAdded), "ключ сортировки: added|alpha|expiry_bestbefore|quantity")
	dir := fs.String("dir", "asc", "направление: asc|desc")
	if err := fs.Parse(args); err != nil || fs.NArg() != 0 {
		return ErrUsage
	}

	key, ok := sortfilter.ParseSortKey(*sortKey)
	if !ok {
		return ErrUsage
	}
	if *dir != "asc" && *dir != "desc" {
		return ErrUsage
	}

	var levels []freshness.Level
	if *fresh != "" {
		for _, part := range strings.Split(*fresh, ",") {
			level, ok := freshness.ParseLevel(strings.TrimSpace(part))
			if !ok {
				return ErrUsage
			}
			levels = append(levels, level)
		}
	}

	c, err := openController(ctx, cfg)
	if err != nil {
		return err
	}

	now := time.Now()
	items := c.State().Items()
	items = sortfilter.FilterByFreshness(items, levels, now)
	items = sortfilter.FilterBySearch(items, *search)
	items = sortfilter.SortBy(items, key, *dir == "desc", now)

	renderGrouped(Out, items, c.State().Groups(), now)
	return nil
}

// renderGrouped печатает записи, раскладывая их по группам в серверном
// порядке. Пустые группы не показываются.
func renderGrouped(w io.Writer, items []model.FoodItem, groups []model.FoodGroup, now time.Time) {
	if len(items) == 0 {
		fmt.Fprintln(w, "Пантри пуста")
		return
	}

	byGroup := sortfilter.GroupByFoodGroup(items)
	total := 0
	for _, g := range groups {
		rows := byGroup[g.ID]
		if len(rows) == 0 {
			continue
		}
		fmt.Fprintf(w, "%s:\n", g.Name)
		for _, it := range rows {
			fmt.Fprintln(w, renderItem(it, now))
			total++
		}
	}
	// записи с неизвестной группой всё равно показываем
	known := make(map[int64]bool, len(groups))
	for _, g := range groups {
		known[g.ID] = true
	}
	for _, it := range items {
		if !known[it.FoodGroupID] {
			fmt.Fprintln(w, renderItem(it, now))
			total++
		}
	}
	fmt.Fprintf(w, "Всего: %d\n", total)
}

func renderItem(it model.FoodItem, now time.Time) string {
	level := freshness.ClassifyItem(it, now)
	qty := fmt.Sprintf("×%d", it.Quantity)
	if it.Units != nil && *it.Units != "" {
		qty += " " + *it.Units
	}
	label := freshness.ItemLabel(it, now)
	return fmt.Sprintf("  [%d] %s%-8s%s %s %s — %s",
		it.ID, freshness.Color(level), level, freshness.ColorReset, it.FoodName, qty, label)
}

func init() { RegisterCmd(listCmd{}) }
