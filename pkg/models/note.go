package models

type Note struct {
	ID         uint   `gorm:"primaryKey"`
	Text       string `gorm:"type:text;not null" validate:"required"`
	CategoryID uint   `gorm:"not null" validate:"required"`

	Category Category `gorm:"foreignKey:CategoryID" validate:"-"`
}
