package model

import (
	"encoding/json"

	"github.com/KSONG-cloud/pantry-tracker-2/internal/model"
	"github.com/KSONG-cloud/pantry-tracker-2/internal/opt"
)

// Date — дневная дата, общая с серверным форматом ("2006-01-02").
type Date = model.Date

// UnassignedGroupName — имя системной группы по умолчанию.
const UnassignedGroupName = model.UnassignedGroupName

// Today возвращает текущий календарный день.
func Today() Date { return model.Today() }

// FoodItem — клиентская модель единицы еды, как она ходит по проводу.
// Отрицательный ID означает optimistic-запись, ещё не подтверждённую сервером.
type FoodItem struct {
	ID             int64   `json:"id"`
	FoodID         int64   `json:"food_id"`
	FoodGroupID    int64   `json:"foodgroup_id"`
	ExpiryDate     *Date   `json:"expiry_date"`
	BestBeforeDate *Date   `json:"bestbefore_date"`
	AddedDate      Date    `json:"added_date"`
	Quantity       int64   `json:"quantity"`
	Units          *string `json:"units"`
	UserID         int64   `json:"user_id"`
	FoodName       string  `json:"food_name"`
}

// FoodGroup — клиентская модель группы продуктов.
type FoodGroup struct {
	ID           int64  `json:"id"`
	UserID       int64  `json:"user_id"`
	Name         string `json:"name"`
	DisplayOrder int64  `json:"display_order"`
	IsSystem     bool   `json:"is_system"`
}

// FoodEdit — частичный диф для PATCH-а. Каждое поле различает
// "не менялось" (absent), "установить null" и "установить значение";
// в JSON попадают только присутствующие поля плюс id.
type FoodEdit struct {
	ID             int64
	FoodName       opt.Optional[string]
	FoodGroupID    opt.Optional[int64]
	Quantity       opt.Optional[int64]
	Units          opt.Optional[string]
	AddedDate      opt.Optional[Date]
	ExpiryDate     opt.Optional[Date]
	BestBeforeDate opt.Optional[Date]
}

// IsEmpty сообщает, что диф не несёт ни одного изменения.
func (e FoodEdit) IsEmpty() bool {
	return !e.FoodName.Set && !e.FoodGroupID.Set && !e.Quantity.Set &&
		!e.Units.Set && !e.AddedDate.Set && !e.ExpiryDate.Set && !e.BestBeforeDate.Set
}

// MarshalJSON кодирует только присутствующие поля.
func (e FoodEdit) MarshalJSON() ([]byte, error) {
	out := map[string]any{"id": e.ID}
	put := func(key string, set bool, v json.Marshaler) {
		if set {
			out[key] = v
		}
	}
	put("food_name", e.FoodName.Set, e.FoodName)
	put("foodgroup_id", e.FoodGroupID.Set, e.FoodGroupID)
	put("quantity", e.Quantity.Set, e.Quantity)
	put("units", e.Units.Set, e.Units)
	put("added_date", e.AddedDate.Set, e.AddedDate)
	put("expiry_date", e.ExpiryDate.Set, e.ExpiryDate)
	put("bestbefore_date", e.BestBeforeDate.Set, e.BestBeforeDate)
	return json.Marshal(out)
}

// UnmarshalJSON — обратная сторона для тестов и симметрии с сервером.
func (e *FoodEdit) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID             int64                `json:"id"`
		FoodName       opt.Optional[string] `json:"food_name"`
		FoodGroupID    opt.Optional[int64]  `json:"foodgroup_id"`
		Quantity       opt.Optional[int64]  `json:"quantity"`
		Units          opt.Optional[string] `json:"units"`
		AddedDate      opt.Optional[Date]   `json:"added_date"`
		ExpiryDate     opt.Optional[Date]   `json:"expiry_date"`
		BestBeforeDate opt.Optional[Date]   `json:"bestbefore_date"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*e = FoodEdit{
		ID:             raw.ID,
		FoodName:       raw.FoodName,
		FoodGroupID:    raw.FoodGroupID,
		Quantity:       raw.Quantity,
		Units:          raw.Units,
		AddedDate:      raw.AddedDate,
		ExpiryDate:     raw.ExpiryDate,
		BestBeforeDate: raw.BestBeforeDate,
	}
	return nil
}

// Apply накладывает диф на копию item (optimistic-слияние).
func (e FoodEdit) Apply(item FoodItem) FoodItem {
	if e.FoodName.Set && e.FoodName.Valid {
		item.FoodName = e.FoodName.Value
	}
	if e.FoodGroupID.Set && e.FoodGroupID.Valid {
		item.FoodGroupID = e.FoodGroupID.Value
	}
	if e.Quantity.Set && e.Quantity.Valid {
		item.Quantity = e.Quantity.Value
	}
	if e.Units.Set {
		item.Units = e.Units.Ptr()
	}
	if e.AddedDate.Set && e.AddedDate.Valid {
		item.AddedDate = e.AddedDate.Value
	}
	if e.ExpiryDate.Set {
		item.ExpiryDate = e.ExpiryDate.Ptr()
	}
	if e.BestBeforeDate.Set {
		item.BestBeforeDate = e.BestBeforeDate.Ptr()
	}
	return item
}
