package model

import "time"

// UnassignedGroupName — имя защищённой системной группы. Ровно одна такая
// группа существует у каждого пользователя и не может быть удалена.
const UnassignedGroupName = "Unassigned"

// FoodGroup — пользовательская группа продуктов. display_order несистемных
// групп — плотная последовательность 1..N без пропусков.
type FoodGroup struct {
	ID           int64  `gorm:"primaryKey" json:"id"`
	UserID       int64  `gorm:"not null;index" json:"user_id"`
	Name         string `gorm:"not null" json:"name"`
	DisplayOrder int64  `gorm:"column:display_order;not null" json:"display_order"`
	IsSystem     bool   `gorm:"column:is_system;not null;default:false" json:"is_system"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (FoodGroup) TableName() string { return "foodgroup" }
