package model

import (
	"time"
)

// User is a board owner. Users are created lazily the first time a board
// write names them and are never updated or deleted afterwards.
type User struct {
	ID        int64     `gorm:"primaryKey"`
	Name      string    `gorm:"size:50;uniqueIndex;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}
