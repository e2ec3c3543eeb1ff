package models

// Category groups products in the catalog.
type Category struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"type:varchar(50);not null"`

	Products []Product `json:"-" gorm:"foreignKey:CategoryID"`
}

// TableName overrides the default pluralization.
func (Category) TableName() string {
	return "categories"
}
