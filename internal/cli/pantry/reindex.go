package pantry

import "github.com/KSONG-cloud/pantry-tracker-2/internal/cli/model"

// ReindexAfterDelete возвращает копию groups, в которой несистемные группы
// с display_order выше удалённого сдвинуты на единицу вниз. Порядок после
// удаления остаётся плотным: 1..N без дыр.
func ReindexAfterDelete(groups []model.FoodGroup, deletedOrder int64) []model.FoodGroup {
	out := make([]model.FoodGroup, len(groups))
	copy(out, groups)
	for i := range out {
		if !out[i].IsSystem && out[i].DisplayOrder > deletedOrder {
			out[i].DisplayOrder--
		}
	}
	return out
}
