package models

type Category struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:10;not null;unique" validate:"required,max=10"`

	Notes []Note `gorm:"foreignKey:CategoryID" validate:"-"`
}
