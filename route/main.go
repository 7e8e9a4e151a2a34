package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/RamonMR95/auto-api/controller"
	middlewares "github.com/RamonMR95/auto-api/middleware"
)

func SetupRouter(ctrl *controller.Controller) *gin.Engine {
	r := gin.Default()
	middles, err := middlewares.NewMiddlewares(ctrl)
	if err != nil {
		panic(err)
	}

	r.Use(middles.CORSMiddleware)
	r.Use(middles.MetricsMiddleware)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	apiRoutes := r.Group("/api/v1")
	{
		apiRoutes.Use(middles.AuthMiddleware)

		carRoutes := apiRoutes.Group("/cars")
		{
			carRoutes.GET("", ctrl.ListCars)
			carRoutes.GET("/:id", ctrl.GetCarByID)
			carRoutes.POST("", ctrl.CreateCar)
			carRoutes.PUT("/:id", ctrl.UpdateCar)
			carRoutes.DELETE("/:id", ctrl.MarkCarForDeletion)
			carRoutes.DELETE("/:id/purge", ctrl.PurgeCar)
		}

		brandRoutes := apiRoutes.Group("/brands")
		{
			brandRoutes.GET("", ctrl.ListBrands)
			brandRoutes.GET("/:id", ctrl.GetBrandByID)
			brandRoutes.POST("", ctrl.CreateBrand)
			brandRoutes.PUT("/:id", ctrl.UpdateBrand)
			brandRoutes.DELETE("/:id", ctrl.DeleteBrand)
		}

		countryRoutes := apiRoutes.Group("/countries")
		{
			countryRoutes.GET("", ctrl.ListCountries)
			countryRoutes.GET("/:id", ctrl.GetCountryByID)
			countryRoutes.POST("", ctrl.CreateCountry)
			countryRoutes.PUT("/:id", ctrl.UpdateCountry)
			countryRoutes.PUT("/:id/flag", ctrl.UploadCountryFlag)
			countryRoutes.DELETE("/:id", ctrl.DeleteCountry)
		}
	}
	return r
}
