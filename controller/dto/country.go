package dto

import "github.com/RamonMR95/auto-api/entity"

type CountryRequest struct {
	Name    string  `json:"name"`
	IsoCode string  `json:"iso_code"`
	FlagURL *string `json:"flag_url"`
}

func (r *CountryRequest) ToEntity() *entity.Country {
	return &entity.Country{
		Name:    r.Name,
		IsoCode: r.IsoCode,
		FlagURL: r.FlagURL,
	}
}
