package database

import (
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
)

// Sentinel errors returned by the operations in this package.
var (
	ErrInvalidRecord      = errors.New("record failed validation")
	ErrDuplicateName      = errors.New("name already exists")
	ErrMissingCategory    = errors.New("note references a missing category")
	ErrMissingField       = errors.New("required column is empty")
	ErrCategoryNotFound   = errors.New("category not found")
	ErrMultipleCategories = errors.New("multiple categories share the name")
)

// MySQL server error numbers for the constraints the schema declares.
const (
	mysqlErrDuplicateEntry  = 1062
	mysqlErrNoReferencedRow = 1452
	mysqlErrBadNull         = 1048
)

func classify(err error) error {
	if err == nil {
		return nil
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		switch mysqlErr.Number {
		case mysqlErrDuplicateEntry:
			return fmt.Errorf("%w: %s", ErrDuplicateName, mysqlErr.Message)
		case mysqlErrNoReferencedRow:
			return fmt.Errorf("%w: %s", ErrMissingCategory, mysqlErr.Message)
		case mysqlErrBadNull:
			return fmt.Errorf("%w: %s", ErrMissingField, mysqlErr.Message)
		}
	}

	return err
}
