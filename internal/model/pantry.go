package model

import "time"

// PantryItem — серверная модель единицы еды в пантри пользователя.
// Удаление мягкое: строка помечается removed и исключается из выборок.
type PantryItem struct {
	ID     int64 `gorm:"primaryKey" json:"id"`
	UserID int64 `gorm:"not null;index" json:"user_id"`

	FoodID int64 `gorm:"not null;index" json:"food_id"`
	// Связь со словарём имён
	Food *Food `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`

	FoodGroupID int64 `gorm:"column:foodgroup_id;not null;index" json:"foodgroup_id"`

	ExpiryDate     *Date `gorm:"type:date" json:"expiry_date"`
	BestBeforeDate *Date `gorm:"column:bestbefore_date;type:date" json:"bestbefore_date"`
	AddedDate      Date  `gorm:"type:date;not null" json:"added_date"`

	Quantity int64   `gorm:"not null;default:0" json:"quantity"`
	Units    *string `json:"units"`

	Removed bool `gorm:"not null;default:false" json:"-"`

	// Денормализованное имя для отображения, заполняется из food при выборке.
	FoodName string `gorm:"-" json:"food_name"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (PantryItem) TableName() string { return "pantry" }
