// Package sortfilter реализует конвейер выборки для списка продуктов:
// фильтры по свежести и подстроке, сортировка по нескольким ключам.
package sortfilter

import (
	"math"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/KSONG-cloud/pantry-tracker-2/internal/cli/freshness"
	"github.com/KSONG-cloud/pantry-tracker-2/internal/cli/model"
)

// SortKey — ключ сортировки списка.
type SortKey string

const (
	SortAdded            SortKey = "added"
	SortAlpha            SortKey = "alpha"
	SortExpiryBestBefore SortKey = "expiry_bestbefore"
	SortQuantity         SortKey = "quantity"
)

// ParseSortKey validates a user-supplied sort key.
func ParseSortKey(s string) (SortKey, bool) {
	switch SortKey(s) {
	case SortAdded, SortAlpha, SortExpiryBestBefore, SortQuantity:
		return SortKey(s), true
	}
	return "", false
}

// FilterByFreshness оставляет записи, чей уровень свежести входит в levels.
// Пустой набор — тождественный фильтр; порядок записей сохраняется.
func FilterByFreshness(items []model.FoodItem, levels []freshness.Level, now time.Time) []model.FoodItem {
	if len(levels) == 0 {
		return items
	}
	allowed := make(map[freshness.Level]bool, len(levels))
	for _, l := range levels {
		allowed[l] = true
	}
	out := make([]model.FoodItem, 0, len(items))
	for _, it := range items {
		if allowed[freshness.ClassifyItem(it, now)] {
			out = append(out, it)
		}
	}
	return out
}

// FilterBySearch оставляет записи, чьё имя содержит query (без учёта регистра).
// Пустой или пробельный запрос — тождественный фильтр.
func FilterBySearch(items []model.FoodItem, query string) []model.FoodItem {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return items
	}
	out := make([]model.FoodItem, 0, len(items))
	for _, it := range items {
		if strings.Contains(strings.ToLower(it.FoodName), q) {
			out = append(out, it)
		}
	}
	return out
}

// SortBy возвращает отсортированную КОПИЮ списка; исходный срез не меняется.
// Направление desc инвертирует порядок ключа, вторичный ключ — id по возрастанию.
func SortBy(items []model.FoodItem, key SortKey, descending bool, now time.Time) []model.FoodItem {
	out := make([]model.FoodItem, len(items))
	copy(out, items)

	var less func(a, b model.FoodItem) int
	switch key {
	case SortAlpha:
		coll := collate.New(language.English, collate.IgnoreCase)
		less = func(a, b model.FoodItem) int {
			return coll.CompareString(a.FoodName, b.FoodName)
		}
	case SortQuantity:
		less = func(a, b model.FoodItem) int {
			switch {
			case a.Quantity < b.Quantity:
				return -1
			case a.Quantity > b.Quantity:
				return 1
			}
			return 0
		}
	case SortExpiryBestBefore:
		less = func(a, b model.FoodItem) int {
			da, db := dateDistance(a, now), dateDistance(b, now)
			switch {
			case da < db:
				return -1
			case da > db:
				return 1
			}
			return 0
		}
	default: // SortAdded
		less = func(a, b model.FoodItem) int {
			ta, tb := a.AddedDate.Time().UnixMilli(), b.AddedDate.Time().UnixMilli()
			switch {
			case ta < tb:
				return -1
			case ta > tb:
				return 1
			}
			return 0
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		c := less(out[i], out[j])
		if descending {
			c = -c
		}
		if c != 0 {
			return c < 0
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// dateDistance — расстояние в миллисекундах до ближайшей из expiry/bestbefore.
// Записи без обеих дат уходят в конец при сортировке по возрастанию.
func dateDistance(it model.FoodItem, now time.Time) float64 {
	var target *model.Date
	if it.ExpiryDate != nil && !it.ExpiryDate.IsZero() {
		target = it.ExpiryDate
	} else if it.BestBeforeDate != nil && !it.BestBeforeDate.IsZero() {
		target = it.BestBeforeDate
	}
	if target == nil {
		return math.Inf(1)
	}
	return float64(target.Time().UnixMilli() - now.UnixMilli())
}

// GroupByFoodGroup раскладывает записи по группам, сохраняя порядок внутри группы.
func GroupByFoodGroup(items []model.FoodItem) map[int64][]model.FoodItem {
	out := make(map[int64][]model.FoodItem)
	for _, it := range items {
		out[it.FoodGroupID] = append(out[it.FoodGroupID], it)
	}
	return out
}
