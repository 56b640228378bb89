package links

import (
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

var (
	// ErrDuplicateKey is returned when a link with the same url already exists
	ErrDuplicateKey = errors.New("link already exists")

	// ErrNotFound is returned when an operation targets a url that is not stored
	ErrNotFound = errors.New("link not found")

	// ErrInvalidInput is returned for arguments no statement could accept, such as an empty url
	ErrInvalidInput = errors.New("invalid input")

	// ErrQueryFailed wraps any other storage failure
	ErrQueryFailed = errors.New("query failed")
)

func queryError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrQueryFailed, op, err)
}

// isDuplicate reports whether err is a primary key or unique constraint
// violation. gorm translates these when TranslateError is on; the sqlite3
// check covers connections opened without it.
func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	return false
}
