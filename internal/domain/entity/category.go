package entity

// Category представляет категорию викторин. Имена уникальны без учета
// регистра (уникальный индекс по LOWER(name) в схеме), наружу категория
// адресуется именем, а не числовым ключом.
type Category struct {
	ID   uint   `gorm:"column:category_id;primaryKey" json:"category_id"`
	Name string `gorm:"size:80;not null" json:"name"`
}

// TableName определяет имя таблицы для GORM
func (Category) TableName() string {
	return "categories"
}
