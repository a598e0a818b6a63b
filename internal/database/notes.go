package database

import (
	"notekeeper/pkg/models"
)

// NotesForCategory returns all notes whose category_id equals the given id,
// with the owning category resolved.
func (db *DB) NotesForCategory(categoryID uint) ([]models.Note, error) {
	var notes []models.Note
	result := db.gorm.Where("category_id = ?", categoryID).Preload("Category").Order("id ASC").Find(&notes)
	if result.Error != nil {
		return nil, result.Error
	}

	return notes, nil
}

// NotesCountForCategory counts the notes in a category without loading them.
func (db *DB) NotesCountForCategory(categoryID uint) (int64, error) {
	var count int64
	result := db.gorm.Model(&models.Note{}).Where("category_id = ?", categoryID).Count(&count)
	return count, result.Error
}
