package entity

import (
	"time"

	"github.com/google/uuid"
)

// Country carries two natural keys: name and isoCode. Both are checked on
// create and reported together when they collide.
type Country struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null" validate:"required"`
	IsoCode   string    `json:"iso_code" gorm:"column:iso_code;uniqueIndex;not null" validate:"required"`
	// FlagURL is required but may be the empty string until a flag image is
	// uploaded.
	FlagURL   *string   `json:"flag_url" gorm:"column:flag_url;not null" validate:"notnil"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Country) TableName() string {
	return "countries"
}
