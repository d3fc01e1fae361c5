package model

// Food — строка словаря канонических имён продуктов. Имена дедуплицируются
// без учёта регистра на уровне репозитория.
type Food struct {
	ID       int64  `gorm:"primaryKey" json:"id"`
	FoodName string `gorm:"not null;index" json:"food_name"`
}

func (Food) TableName() string { return "food" }
