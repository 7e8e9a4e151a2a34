package dto

import (
	"time"

	"github.com/RamonMR95/auto-api/entity"
	"github.com/RamonMR95/auto-api/service"
)

type NameRef struct {
	Name string `json:"name"`
}

// CarRequest is the car payload of both POST and PUT: brand and country are
// referenced by natural-key name.
type CarRequest struct {
	Brand        NameRef   `json:"brand"`
	Model        string    `json:"model"`
	Color        string    `json:"color"`
	Registration time.Time `json:"registration"`
	Country      NameRef   `json:"country"`
	Components   []string  `json:"components"`
}

func (r *CarRequest) ToInput() service.CarInput {
	return service.CarInput{
		BrandName:    r.Brand.Name,
		Model:        r.Model,
		Color:        r.Color,
		Registration: r.Registration,
		CountryName:  r.Country.Name,
		Components:   r.Components,
	}
}

// CarPage is the pagination envelope of GET /cars.
type CarPage struct {
	Page       int          `json:"page"`
	PerPage    int          `json:"per_page"`
	PageCount  int64        `json:"page_count"`
	TotalCount int64        `json:"total_count"`
	Cars       []entity.Car `json:"cars"`
}
