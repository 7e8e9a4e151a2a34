package controller

import (
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/RamonMR95/auto-api/apperror"
	"github.com/RamonMR95/auto-api/controller/dto"
)

func (ctrl *Controller) ListCountries(c *gin.Context) {
	countries, err := ctrl.CountryService.List(c.Request.Context())
	if err != nil {
		respondError(c, err, http.StatusNotFound)
		return
	}
	c.JSON(http.StatusOK, countries)
}

func (ctrl *Controller) GetCountryByID(c *gin.Context) {
	country, err := ctrl.CountryService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, http.StatusNotFound)
		return
	}
	c.JSON(http.StatusOK, country)
}

func (ctrl *Controller) CreateCountry(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CountryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Country] Failed to bind CreateCountry request: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"Invalid request payload"}})
		return
	}

	country, err := ctrl.CountryService.Create(ctx, req.ToEntity())
	if err != nil {
		respondError(c, err, http.StatusNotFound)
		return
	}
	c.JSON(http.StatusCreated, country)
}

func (ctrl *Controller) UpdateCountry(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CountryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Country] Failed to bind UpdateCountry request: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"Invalid request payload"}})
		return
	}

	country, err := ctrl.CountryService.Update(ctx, req.ToEntity(), c.Param("id"))
	if err != nil {
		respondError(c, err, http.StatusNotFound)
		return
	}
	c.JSON(http.StatusOK, country)
}

// UploadCountryFlag handles PUT /countries/:id/flag: the image lands in the
// flag bucket and the country's flag_url is rewritten to point at it.
func (ctrl *Controller) UploadCountryFlag(c *gin.Context) {
	ctx := c.Request.Context()
	rawID := c.Param("id")

	fileHeader, err := c.FormFile("flag")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"The flag image is required"}})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Country] Failed to open flag upload: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	defer file.Close()

	objectName := fmt.Sprintf("%s%s", rawID, filepath.Ext(fileHeader.Filename))
	contentType := fileHeader.Header.Get("Content-Type")

	flagURL, err := ctrl.Infra.Minio.UploadFlag(ctx, objectName, file, fileHeader.Size, contentType)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Country] Failed to upload flag image: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload flag image"})
		return
	}

	country, err := ctrl.CountryService.SetFlagURL(ctx, rawID, flagURL)
	if err != nil {
		respondError(c, err, http.StatusNotFound)
		return
	}
	c.JSON(http.StatusOK, country)
}

func (ctrl *Controller) DeleteCountry(c *gin.Context) {
	if err := ctrl.CountryService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if apperror.IsNotFound(err) {
			c.Status(http.StatusNotFound)
			return
		}
		respondError(c, err, http.StatusNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}
