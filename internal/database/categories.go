package database

import (
	"notekeeper/pkg/models"
)

// SearchCategoriesByName returns every category with the exact given name;
// the unique constraint means at most one row in practice.
func (db *DB) SearchCategoriesByName(name string) ([]models.Category, error) {
	var categories []models.Category
	result := db.gorm.Where("name = ?", name).Find(&categories)
	if result.Error != nil {
		return nil, result.Error
	}

	return categories, nil
}

// FindCategoryByName returns exactly one category. Zero matches is
// ErrCategoryNotFound, more than one is ErrMultipleCategories. Resolved
// names are cached, so repeated lookups skip the database round-trip.
func (db *DB) FindCategoryByName(name string) (*models.Category, error) {
	if cached, ok := db.cache.Get(name); ok {
		return &cached, nil
	}

	var categories []models.Category
	result := db.gorm.Where("name = ?", name).Limit(2).Find(&categories)
	if result.Error != nil {
		return nil, result.Error
	}

	switch len(categories) {
	case 0:
		return nil, ErrCategoryNotFound
	case 1:
		db.cache.Add(name, categories[0])
		return &categories[0], nil
	default:
		return nil, ErrMultipleCategories
	}
}
