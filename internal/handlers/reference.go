package handlers

import (
	"net/http"

	"realestate-backoffice/internal/services"

	"github.com/gin-gonic/gin"
)

// ReferenceHandler serves the deal and property type dictionaries.
type ReferenceHandler struct {
	referenceService *services.ReferenceService
}

func NewReferenceHandler(referenceService *services.ReferenceService) *ReferenceHandler {
	return &ReferenceHandler{referenceService: referenceService}
}

// Register mounts /deal-types and /property-types under rg.
func (h *ReferenceHandler) Register(rg *gin.RouterGroup) {
	dealTypes := rg.Group("/deal-types")
	dealTypes.GET("", h.DealTypes)
	dealTypes.GET("/search/by-name", h.DealTypesByName)
	dealTypes.GET("/:id", h.DealType)

	propertyTypes := rg.Group("/property-types")
	propertyTypes.GET("", h.PropertyTypes)
	propertyTypes.GET("/search/by-name", h.PropertyTypesByName)
	propertyTypes.GET("/:id", h.PropertyType)
}

func (h *ReferenceHandler) DealTypes(c *gin.Context) {
	types, err := h.referenceService.DealTypes(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, types)
}

func (h *ReferenceHandler) DealType(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}
	t, err := h.referenceService.DealType(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *ReferenceHandler) DealTypesByName(c *gin.Context) {
	types, err := h.referenceService.DealTypesByName(c.Request.Context(), c.Query("name"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, types)
}

func (h *ReferenceHandler) PropertyTypes(c *gin.Context) {
	types, err := h.referenceService.PropertyTypes(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, types)
}

func (h *ReferenceHandler) PropertyType(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}
	t, err := h.referenceService.PropertyType(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *ReferenceHandler) PropertyTypesByName(c *gin.Context) {
	types, err := h.referenceService.PropertyTypesByName(c.Request.Context(), c.Query("name"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, types)
}
