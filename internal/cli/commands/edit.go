package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/KSONG-cloud/pantry-tracker-2/internal/cli/model"
	"github.com/KSONG-cloud/pantry-tracker-2/internal/config"
	"github.com/KSONG-cloud/pantry-tracker-2/internal/opt"
	srv "github.com/KSONG-cloud/pantry-tracker-2/internal/model"
)

type editCmd struct{}

func (editCmd) Name() string { return "edit" }
func (editCmd) Description() string {
	return "Изменить поля записи; значение none очищает поле"
}
func (editCmd) Usage() string {
	return "edit <id> [--name n] [--group id] [--qty n] [--units u|none] [--expiry date|none] [--bestbefore date|none]"
}

// dateFlag переводит значение флага в tri-state: не задан — поле не трогаем,
// none — явный null, иначе — дата.
func dateFlag(value string) (opt.Optional[model.Date], error) {
	if value == "" {
		return opt.Optional[model.Date]{}, nil
	}
	if value == "none" {
		return opt.Null[model.Date](), nil
	}
	d, err := srv.ParseDate(value)
	if err != nil {
		return opt.Optional[model.Date]{}, err
	}
	return opt.Of(d), nil
}

func (editCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("edit", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	name := fs.String("name", "", "новое имя продукта")
	group := fs.Int64("group", 0, "id новой группы")
	qty := fs.Int64("qty", -1, "новое количество")
	units := fs.String("units", "", "единицы измерения (none — очистить)")
	expiry := fs.String("expiry", "", "срок годности (none — очистить)")
	bestbefore := fs.String("bestbefore", "", "best before (none — очистить)")
	if err := fs.Parse(args); err != nil || fs.NArg() != 1 {
		return ErrUsage
	}
	id, err := strconv.ParseInt(fs.Arg(0), 10, 64)
	if err != nil {
		return ErrUsage
	}

	edit := model.FoodEdit{ID: id}
	if *name != "" {
		edit.FoodName = opt.Of(*name)
	}
	if *group != 0 {
		edit.FoodGroupID = opt.Of(*group)
	}
	if *qty >= 0 {
		edit.Quantity = opt.Of(*qty)
	}
	if *units == "none" {
		edit.Units = opt.Null[string]()
	} else if *units != "" {
		edit.Units = opt.Of(*units)
	}
	if edit.ExpiryDate, err = dateFlag(*expiry); err != nil {
		return ErrUsage
	}
	if edit.BestBeforeDate, err = dateFlag(*bestbefore); err != nil {
		return ErrUsage
	}
	if edit.IsEmpty() {
		return ErrUsage
	}

	c, err := openController(ctx, cfg)
	if err != nil {
		return err
	}
	if err := c.ChangeFoodItem(ctx, edit); err != nil {
		return err
	}
	fmt.Fprintf(Out, "✓ Обновлено: [%d]\n", id)
	return nil
}

func init() { RegisterCmd(editCmd{}) }
