package handler

import (
	"github.com/firstoffice/service-office/internal/application"
	"github.com/firstoffice/service-office/internal/platform/middleware"
	"github.com/firstoffice/service-office/internal/platform/response"
	"github.com/gin-gonic/gin"
)

// CatalogHandler handles HTTP requests for browsing cities and offices.
type CatalogHandler struct {
	service *application.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(service *application.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// RegisterRoutes registers all catalog routes on the given router group.
func (h *CatalogHandler) RegisterRoutes(r *gin.RouterGroup, apiKey string) {
	api := r.Group("/api")
	api.Use(middleware.APIKeyMiddleware(apiKey))
	{
		api.GET("/cities", h.ListCities)
		api.GET("/city/:slug", h.GetCity)
		api.GET("/offices", h.ListOffices)
		api.GET("/office/:slug", h.GetOffice)
	}
}

// ListCities handles GET /api/cities.
func (h *CatalogHandler) ListCities(c *gin.Context) {
	result, err := h.service.ListCities(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// GetCity handles GET /api/city/:slug.
func (h *CatalogHandler) GetCity(c *gin.Context) {
	result, err := h.service.GetCityBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// ListOffices handles GET /api/offices.
func (h *CatalogHandler) ListOffices(c *gin.Context) {
	page, limit := parsePagination(c)

	result, err := h.service.ListOffices(c.Request.Context(), page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paginated(c, result.Items, result.Total, result.Page, result.Limit)
}

// GetOffice handles GET /api/office/:slug.
func (h *CatalogHandler) GetOffice(c *gin.Context) {
	result, err := h.service.GetOfficeBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
