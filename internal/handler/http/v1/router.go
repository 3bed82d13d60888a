package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/", h.root)
	api.GET("/latest", h.getLatest)
	api.GET("/datasets", h.listDatasets)

	// Маршруты для существующего dashboard-клиента, формат ответов менять нельзя
	legacy := api.Group("/legacy")
	{
		legacy.GET("/latest", h.getLegacyLatest)
		legacy.GET("/nbhood", h.getLegacyNeighborhood)
		legacy.GET("/district", h.getLegacyDistrict)
		legacy.GET("/catsum", h.getLegacyCategorySummary)
		legacy.GET("/crime", h.getLegacyCrime)
		legacy.GET("/coords", h.getLegacyCoords)
		legacy.GET("/range", h.getLegacyRange)
		legacy.GET("/trends", h.getLegacyTrends)
	}

	crime := api.Group("/crime")
	{
		crime.GET("/", h.getCrimePoints)
		crime.GET("/detailed", h.getCrimeDetailed)
		crime.GET("/:geometry", h.getCrimeByGeometry)
	}

	// Заглушка permalink
	api.POST("/save", h.savePermalink)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
