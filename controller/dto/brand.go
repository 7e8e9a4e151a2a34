package dto

import "github.com/RamonMR95/auto-api/entity"

type BrandRequest struct {
	Name string `json:"name"`
}

func (r *BrandRequest) ToEntity() *entity.Brand {
	return &entity.Brand{Name: r.Name}
}
