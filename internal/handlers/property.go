package handlers

import (
	"net/http"

	"realestate-backoffice/internal/models"
	"realestate-backoffice/internal/services"

	"github.com/gin-gonic/gin"
)

type PropertyHandler struct {
	propertyService *services.PropertyService
}

func NewPropertyHandler(propertyService *services.PropertyService) *PropertyHandler {
	return &PropertyHandler{propertyService: propertyService}
}

func (h *PropertyHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.GET("/count", h.Count)
	rg.GET("/for-table", h.ListForTable)
	rg.GET("/with-details", h.ListWithDetails)
	rg.GET("/with-details/search", h.SearchWithDetails)
	rg.GET("/search", h.Search)
	rg.GET("/search/by-price-range", h.FindByPriceRange)
	rg.GET("/search/by-city/:cityId", h.FindByCity)
	rg.GET("/search/by-type/:typeId", h.FindByType)
	rg.GET("/:id", h.Get)
	rg.GET("/:id/with-details", h.GetWithDetails)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

func (h *PropertyHandler) List(c *gin.Context) {
	properties, err := h.propertyService.GetAll(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, properties)
}

func (h *PropertyHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}
	property, err := h.propertyService.GetByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, property)
}

func (h *PropertyHandler) Create(c *gin.Context) {
	var property models.Property
	if err := bindJSON(c, &property); err != nil {
		fail(c, err)
		return
	}
	id, err := h.propertyService.Create(c.Request.Context(), &property)
	if err != nil {
		fail(c, err)
		return
	}
	propertyMessages.respondCreated(c, id)
}

func (h *PropertyHandler) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}
	var updates map[string]interface{}
	if err := bindJSON(c, &updates); err != nil {
		fail(c, err)
		return
	}
	updated, err := h.propertyService.Update(c.Request.Context(), id, updates)
	if err != nil {
		fail(c, err)
		return
	}
	propertyMessages.respondUpdated(c, updated)
}

func (h *PropertyHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}
	deleted, err := h.propertyService.Delete(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	propertyMessages.respondDeleted(c, deleted)
}

func propertyCriteria(c *gin.Context) (models.PropertySearch, error) {
	q := newQueryParser(c)
	criteria := models.PropertySearch{
		MinPrice:       q.float("minPrice"),
		MaxPrice:       q.float("maxPrice"),
		CityID:         q.int64("cityId"),
		PropertyTypeID: q.int64("propertyTypeId"),
		DistrictID:     q.int64("districtId"),
		StreetID:       q.int64("streetId"),
	}
	return criteria, q.err()
}

// Search answers with the compact table rows.
func (h *PropertyHandler) Search(c *gin.Context) {
	criteria, err := propertyCriteria(c)
	if err != nil {
		fail(c, err)
		return
	}
	properties, err := h.propertyService.SearchForTable(c.Request.Context(), criteria)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, properties)
}

func (h *PropertyHandler) FindByPriceRange(c *gin.Context) {
	q := newQueryParser(c)
	minPrice, maxPrice := q.requiredFloat("minPrice"), q.requiredFloat("maxPrice")
	if err := q.err(); err != nil {
		fail(c, err)
		return
	}
	properties, err := h.propertyService.FindByPriceRange(c.Request.Context(), minPrice, maxPrice)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, properties)
}

func (h *PropertyHandler) FindByCity(c *gin.Context) {
	cityID, err := pathID(c, "cityId")
	if err != nil {
		fail(c, err)
		return
	}
	properties, err := h.propertyService.FindByCity(c.Request.Context(), cityID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, properties)
}

func (h *PropertyHandler) FindByType(c *gin.Context) {
	typeID, err := pathID(c, "typeId")
	if err != nil {
		fail(c, err)
		return
	}
	properties, err := h.propertyService.FindByPropertyType(c.Request.Context(), typeID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, properties)
}

func (h *PropertyHandler) Count(c *gin.Context) {
	n, err := h.propertyService.Count(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": n})
}

func (h *PropertyHandler) ListWithDetails(c *gin.Context) {
	properties, err := h.propertyService.GetAllWithDetails(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, properties)
}

func (h *PropertyHandler) GetWithDetails(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}
	property, err := h.propertyService.GetWithDetails(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, property)
}

func (h *PropertyHandler) SearchWithDetails(c *gin.Context) {
	criteria, err := propertyCriteria(c)
	if err != nil {
		fail(c, err)
		return
	}
	properties, err := h.propertyService.SearchWithDetails(c.Request.Context(), criteria)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, properties)
}

func (h *PropertyHandler) ListForTable(c *gin.Context) {
	properties, err := h.propertyService.GetAllForTable(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, properties)
}
