package database

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestNotesForCategory(t *testing.T) {
	db, mock := newTestDB(t)

	t.Run("with notes", func(t *testing.T) {
		noteRows := sqlmock.NewRows([]string{"id", "text", "category_id"}).
			AddRow(1, "Buy milk", 1)
		mock.ExpectQuery("SELECT \\* FROM `notes` WHERE category_id = \\?").
			WillReturnRows(noteRows)

		categoryRows := sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "Work")
		mock.ExpectQuery("SELECT \\* FROM `categories` WHERE `categories`.`id` = \\?").
			WithArgs(1).
			WillReturnRows(categoryRows)

		notes, err := db.NotesForCategory(1)

		assert.NoError(t, err)
		assert.Len(t, notes, 1)
		assert.Equal(t, "Buy milk", notes[0].Text)
		assert.Equal(t, "Work", notes[0].Category.Name)
	})

	t.Run("empty category", func(t *testing.T) {
		mock.ExpectQuery("SELECT \\* FROM `notes` WHERE category_id = \\?").
			WillReturnRows(sqlmock.NewRows([]string{"id", "text", "category_id"}))

		notes, err := db.NotesForCategory(2)

		assert.NoError(t, err)
		assert.Empty(t, notes)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotesCountForCategory(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `notes` WHERE category_id = \\?").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := db.NotesCountForCategory(1)

	assert.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
