// Package model contains the GORM mappings of the database tables.
package model

import "time"

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID               int64  `gorm:"primaryKey;autoIncrement"`
	Name             string `gorm:"type:varchar(100);not null"`
	Email            string `gorm:"type:varchar(255)"`
	PreferredCuisine string `gorm:"type:varchar(100)"`
	CreatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
