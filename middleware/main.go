package middlewares

import (
	"github.com/gin-gonic/gin"

	"github.com/RamonMR95/auto-api/controller"
)

type Middlewares struct {
	CORSMiddleware    gin.HandlerFunc
	AuthMiddleware    gin.HandlerFunc
	MetricsMiddleware gin.HandlerFunc
}

func NewMiddlewares(ctrl *controller.Controller) (*Middlewares, error) {
	cors := CORSMiddleware(ctrl.Config.EnvConfig)
	auth := AuthMiddleware(ctrl.Config.EnvConfig)
	metrics := MetricsMiddleware()

	return &Middlewares{
		CORSMiddleware:    cors,
		AuthMiddleware:    auth,
		MetricsMiddleware: metrics,
	}, nil
}
