package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RamonMR95/auto-api/apperror"
)

// respondError maps the service error taxonomy to HTTP. notFoundStatus lets
// car create keep the original contract where an unresolvable brand/country
// name is a 400, not a 404.
func respondError(c *gin.Context, err error, notFoundStatus int) {
	var validation *apperror.ValidationError
	var notUnique *apperror.NotUniqueKeyError
	var invalidID *apperror.InvalidIDError

	switch {
	case errors.As(err, &validation), errors.As(err, &notUnique), errors.As(err, &invalidID):
		c.JSON(http.StatusBadRequest, apperror.Payload(err))
	case apperror.IsNotFound(err):
		c.JSON(notFoundStatus, apperror.Payload(err))
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
