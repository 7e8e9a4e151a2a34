package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/RamonMR95/auto-api/apperror"
	"github.com/RamonMR95/auto-api/controller/dto"
)

// ListCars handles GET /cars with pagination, filtering and sorting. The
// page >= 1 and size >= 0 bounds are enforced here, not in the service.
func (ctrl *Controller) ListCars(c *gin.Context) {
	ctx := c.Request.Context()

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"Invalid page parameter"}})
		return
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", "5"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"Invalid size parameter"}})
		return
	}
	filterBy := c.DefaultQuery("filterBy", "")
	orderBy := c.DefaultQuery("orderBy", "")

	if page < 1 || size < 0 {
		c.Status(http.StatusBadRequest)
		return
	}

	cars, err := ctrl.CarService.ListPaginated(ctx, page, size, filterBy, orderBy)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Car] Failed to list cars: %v", err)
		respondError(c, err, http.StatusNotFound)
		return
	}

	totalCount, err := ctrl.CarService.CountFiltered(ctx, filterBy)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Car] Failed to count cars: %v", err)
		respondError(c, err, http.StatusNotFound)
		return
	}

	perPage := len(cars)
	pageCount := int64(1)
	if perPage > 0 && size > 0 {
		pageCount = totalCount/int64(size) + 1
	}
	if int64(page) > pageCount {
		c.Status(http.StatusBadRequest)
		return
	}

	c.JSON(http.StatusOK, dto.CarPage{
		Page:       page,
		PerPage:    perPage,
		PageCount:  pageCount,
		TotalCount: totalCount,
		Cars:       cars,
	})
}

func (ctrl *Controller) GetCarByID(c *gin.Context) {
	car, err := ctrl.CarService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, http.StatusNotFound)
		return
	}
	c.JSON(http.StatusOK, car)
}

func (ctrl *Controller) CreateCar(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Car] Failed to bind CreateCar request: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"Invalid request payload"}})
		return
	}

	// An unresolved brand/country name is a client error on create.
	car, err := ctrl.CarService.Create(ctx, req.ToInput())
	if err != nil {
		respondError(c, err, http.StatusBadRequest)
		return
	}
	c.JSON(http.StatusCreated, car)
}

func (ctrl *Controller) UpdateCar(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Car] Failed to bind UpdateCar request: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"Invalid request payload"}})
		return
	}

	car, err := ctrl.CarService.Update(ctx, req.ToInput(), c.Param("id"))
	if err != nil {
		respondError(c, err, http.StatusNotFound)
		return
	}
	c.JSON(http.StatusOK, car)
}

// MarkCarForDeletion handles DELETE /cars/:id. The row survives until the
// purge scheduler sweeps it.
func (ctrl *Controller) MarkCarForDeletion(c *gin.Context) {
	if err := ctrl.CarService.MarkForDeletion(c.Request.Context(), c.Param("id")); err != nil {
		if apperror.IsNotFound(err) {
			c.Status(http.StatusNotFound)
			return
		}
		respondError(c, err, http.StatusNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}

// PurgeCar handles DELETE /cars/:id/purge, the direct hard delete.
func (ctrl *Controller) PurgeCar(c *gin.Context) {
	if err := ctrl.CarService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if apperror.IsNotFound(err) {
			c.Status(http.StatusNotFound)
			return
		}
		respondError(c, err, http.StatusNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}
