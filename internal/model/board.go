package model

import (
	"time"
)

// Grid dimensions of a stored board state.
const (
	GridSize    = 50
	StateLength = GridSize * GridSize

	// MaxNameLength bounds both board and user names.
	MaxNameLength = 50
)

// Board is a flattened binary grid snapshot. BoardName is unique per owner,
// not globally; the composite constraint is enforced by the database schema.
type Board struct {
	ID          int64     `gorm:"primaryKey"`
	BoardName   string    `gorm:"size:50;not null;uniqueIndex:uq_boards_owner_name"`
	BoardState  string    `gorm:"not null"`
	OwnerID     int64     `gorm:"not null;uniqueIndex:uq_boards_owner_name"`
	CreatedTime time.Time `gorm:"not null;index"`

	Owner User `gorm:"foreignKey:OwnerID"`
}
