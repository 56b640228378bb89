package models

import "gorm.io/gorm"

const createLinksTable = `CREATE TABLE IF NOT EXISTS links (
	link            TEXT PRIMARY KEY,
	solved_count    INTEGER NOT NULL,
	is_solved       INTEGER NOT NULL,
	is_skipped      INTEGER NOT NULL
)`

// EnsureSchema creates the links table if it does not exist and repairs rows
// that have both status flags set.
// The table layout is fixed so databases written by earlier versions keep
// working; it is created with plain DDL rather than AutoMigrate.
func EnsureSchema(db *gorm.DB) error {
	if err := db.Exec(createLinksTable).Error; err != nil {
		return err
	}

	return db.Model(&Link{}).
		Where("is_solved = ? AND is_skipped = ?", true, true).
		Update("is_skipped", false).Error
}
