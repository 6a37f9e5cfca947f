package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/GlamourSalonSA/salon-booking/internal/cache"
	"github.com/GlamourSalonSA/salon-booking/internal/httperr"
	"github.com/GlamourSalonSA/salon-booking/internal/httpresp"
)

// CatalogHandler serves the public service/category listing. Reads go
// through the redis cache; a cache outage degrades to the database.
type CatalogHandler struct {
	catalog *cache.CatalogCache
}

func NewCatalogHandler(catalog *cache.CatalogCache) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.catalog.Services(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "catalog_unavailable", "Could not load services.")
		return
	}
	httpresp.List(c, services)
}

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalog.Categories(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "catalog_unavailable", "Could not load categories.")
		return
	}
	httpresp.List(c, categories)
}
