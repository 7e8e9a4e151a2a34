package entity

import (
	"time"

	"github.com/google/uuid"
)

// Brand is looked up by its natural key (the unique name) when car payloads
// reference it. The uniqueIndex is the authoritative backstop for the
// service-level pre-check.
type Brand struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null" validate:"required"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Brand) TableName() string {
	return "brands"
}
