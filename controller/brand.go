package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RamonMR95/auto-api/apperror"
	"github.com/RamonMR95/auto-api/controller/dto"
)

func (ctrl *Controller) ListBrands(c *gin.Context) {
	brands, err := ctrl.BrandService.List(c.Request.Context())
	if err != nil {
		respondError(c, err, http.StatusNotFound)
		return
	}
	c.JSON(http.StatusOK, brands)
}

func (ctrl *Controller) GetBrandByID(c *gin.Context) {
	brand, err := ctrl.BrandService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, http.StatusNotFound)
		return
	}
	c.JSON(http.StatusOK, brand)
}

func (ctrl *Controller) CreateBrand(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.BrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Brand] Failed to bind CreateBrand request: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"Invalid request payload"}})
		return
	}

	brand, err := ctrl.BrandService.Create(ctx, req.ToEntity())
	if err != nil {
		respondError(c, err, http.StatusNotFound)
		return
	}
	c.JSON(http.StatusCreated, brand)
}

func (ctrl *Controller) UpdateBrand(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.BrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Brand] Failed to bind UpdateBrand request: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"Invalid request payload"}})
		return
	}

	brand, err := ctrl.BrandService.Update(ctx, req.ToEntity(), c.Param("id"))
	if err != nil {
		respondError(c, err, http.StatusNotFound)
		return
	}
	c.JSON(http.StatusOK, brand)
}

func (ctrl *Controller) DeleteBrand(c *gin.Context) {
	if err := ctrl.BrandService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if apperror.IsNotFound(err) {
			c.Status(http.StatusNotFound)
			return
		}
		respondError(c, err, http.StatusNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}
