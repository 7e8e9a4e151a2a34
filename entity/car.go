package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Car is the catalog aggregate. Brand and Country are non-owning references
// resolved by name at the service layer; Components is an unordered set of
// strings stored as a JSON array.
type Car struct {
	ID           uuid.UUID                   `json:"id" gorm:"type:uuid;primaryKey"`
	BrandID      uuid.UUID                   `json:"-" gorm:"type:uuid;not null" validate:"required"`
	Brand        Brand                       `json:"brand" gorm:"foreignKey:BrandID" validate:"-"`
	Model        string                      `json:"model" gorm:"not null" validate:"required"`
	Color        string                      `json:"color" gorm:"not null" validate:"required"`
	Registration time.Time                   `json:"registration" gorm:"not null" validate:"required"`
	CountryID    uuid.UUID                   `json:"-" gorm:"type:uuid;not null" validate:"required"`
	Country      Country                     `json:"country" gorm:"foreignKey:CountryID" validate:"-"`
	Components   datatypes.JSONSlice[string] `json:"components" validate:"notnil"`
	// DeleteFlag marks the car for the scheduled purge instead of removing
	// the row immediately.
	DeleteFlag bool      `json:"delete" gorm:"not null;default:false"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Car) TableName() string {
	return "cars"
}
