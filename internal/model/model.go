package model

import (
	"gorm.io/gorm"
)

// AutoMigrate migrates all tables
// AutoMigrate 迁移全部表结构
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Note{},
		&Tag{},
		&NoteTag{},
		&NoteShare{},
	)
}
