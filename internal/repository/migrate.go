package repository

import (
	"gorm.io/gorm"

	"cathub/internal/model"
)

// AutoMigrate creates or updates the user and cat relations. Users go first
// so the owner foreign key has something to reference.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&model.User{}, &catRecord{})
}
