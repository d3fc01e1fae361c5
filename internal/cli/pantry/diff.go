package pantry

import (
	"github.com/KSONG-cloud/pantry-tracker-2/internal/cli/model"
	"github.com/KSONG-cloud/pantry-tracker-2/internal/opt"
)

// DiffFoodItem строит частичный диф от orig к edited: в него попадают
// только реально изменившиеся поля. Обнулённая nullable-дата кодируется
// явным null.
func DiffFoodItem(orig, edited model.FoodItem) model.FoodEdit {
	e := model.FoodEdit{ID: orig.ID}

	if edited.FoodName != orig.FoodName {
		e.FoodName = opt.Of(edited.FoodName)
	}
	if edited.FoodGroupID != orig.FoodGroupID {
		e.FoodGroupID = opt.Of(edited.FoodGroupID)
	}
	if edited.Quantity != orig.Quantity {
		e.Quantity = opt.Of(edited.Quantity)
	}
	if !strPtrEqual(edited.Units, orig.Units) {
		if edited.Units == nil {
			e.Units = opt.Null[string]()
		} else {
			e.Units = opt.Of(*edited.Units)
		}
	}
	if !edited.AddedDate.Equal(orig.AddedDate) {
		e.AddedDate = opt.Of(edited.AddedDate)
	}
	if d, changed := diffDate(orig.ExpiryDate, edited.ExpiryDate); changed {
		e.ExpiryDate = d
	}
	if d, changed := diffDate(orig.BestBeforeDate, edited.BestBeforeDate); changed {
		e.BestBeforeDate = d
	}
	return e
}

func diffDate(orig, edited *model.Date) (opt.Optional[model.Date], bool) {
	switch {
	case orig == nil && edited == nil:
		return opt.Optional[model.Date]{}, false
	case edited == nil:
		return opt.Null[model.Date](), true
	case orig == nil || !orig.Equal(*edited):
		return opt.Of(*edited), true
	}
	return opt.Optional[model.Date]{}, false
}

func strPtrEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
