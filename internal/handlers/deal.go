package handlers

import (
	"context"
	"net/http"

	"realestate-backoffice/internal/models"
	"realestate-backoffice/internal/services"

	"github.com/gin-gonic/gin"
)

type DealHandler struct {
	dealService *services.DealService
}

func NewDealHandler(dealService *services.DealService) *DealHandler {
	return &DealHandler{dealService: dealService}
}

func (h *DealHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.GET("/count", h.Count)
	rg.GET("/total-amount", h.TotalAmount)
	rg.GET("/for-table", h.ListForTable)
	rg.GET("/with-details", h.ListWithDetails)
	rg.GET("/with-details/search", h.SearchWithDetails)
	rg.GET("/search", h.Search)
	rg.GET("/search/by-date", h.FindByDate)
	rg.GET("/search/by-date-range", h.FindByDateRange)
	rg.GET("/search/by-cost-range", h.FindByCostRange)
	rg.GET("/search/by-realtor/:id", h.byID(h.dealService.FindByRealtor))
	rg.GET("/search/by-client/:id", h.byID(h.dealService.FindByClient))
	rg.GET("/search/by-property/:id", h.byID(h.dealService.FindByProperty))
	rg.GET("/search/by-type/:id", h.byID(h.dealService.FindByDealType))
	rg.GET("/:id", h.Get)
	rg.GET("/:id/with-details", h.GetWithDetails)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

func (h *DealHandler) List(c *gin.Context) {
	deals, err := h.dealService.GetAll(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, deals)
}

func (h *DealHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}
	deal, err := h.dealService.GetByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, deal)
}

func (h *DealHandler) Create(c *gin.Context) {
	var deal models.Deal
	if err := bindJSON(c, &deal); err != nil {
		fail(c, err)
		return
	}
	id, err := h.dealService.Create(c.Request.Context(), &deal)
	if err != nil {
		fail(c, err)
		return
	}
	dealMessages.respondCreated(c, id)
}

func (h *DealHandler) Update(c *gin.Context) {
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
	updated, err := h.dealService.Update(c.Request.Context(), id, updates)
	if err != nil {
		fail(c, err)
		return
	}
	dealMessages.respondUpdated(c, updated)
}

func (h *DealHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}
	deleted, err := h.dealService.Delete(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	dealMessages.respondDeleted(c, deleted)
}

// byID adapts a lookup by a foreign key taken from the :id path parameter.
func (h *DealHandler) byID(find func(context.Context, int64) ([]models.Deal, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathID(c, "id")
		if err != nil {
			fail(c, err)
			return
		}
		deals, err := find(c.Request.Context(), id)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, deals)
	}
}

func dealCriteria(c *gin.Context) (models.DealSearch, error) {
	q := newQueryParser(c)
	criteria := models.DealSearch{
		StartDate:  q.date("startDate"),
		EndDate:    q.date("endDate"),
		RealtorID:  q.int64("realtorId"),
		ClientID:   q.int64("clientId"),
		DealTypeID: q.int64("dealTypeId"),
		MinCost:    q.float("minCost"),
		MaxCost:    q.float("maxCost"),
	}
	return criteria, q.err()
}

func (h *DealHandler) Search(c *gin.Context) {
	criteria, err := dealCriteria(c)
	if err != nil {
		fail(c, err)
		return
	}
	deals, err := h.dealService.SearchForTable(c.Request.Context(), criteria)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, deals)
}

func (h *DealHandler) FindByDate(c *gin.Context) {
	q := newQueryParser(c)
	date := q.requiredDate("date")
	if err := q.err(); err != nil {
		fail(c, err)
		return
	}
	deals, err := h.dealService.FindByDate(c.Request.Context(), date)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, deals)
}

func (h *DealHandler) FindByDateRange(c *gin.Context) {
	q := newQueryParser(c)
	start, end := q.requiredDate("startDate"), q.requiredDate("endDate")
	if err := q.err(); err != nil {
		fail(c, err)
		return
	}
	deals, err := h.dealService.FindByDateRange(c.Request.Context(), start, end)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, deals)
}

func (h *DealHandler) FindByCostRange(c *gin.Context) {
	q := newQueryParser(c)
	minCost, maxCost := q.requiredFloat("minCost"), q.requiredFloat("maxCost")
	if err := q.err(); err != nil {
		fail(c, err)
		return
	}
	deals, err := h.dealService.FindByCostRange(c.Request.Context(), minCost, maxCost)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, deals)
}

func (h *DealHandler) TotalAmount(c *gin.Context) {
	total, err := h.dealService.TotalAmount(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"totalAmount": total})
}

func (h *DealHandler) Count(c *gin.Context) {
	n, err := h.dealService.Count(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": n})
}

func (h *DealHandler) ListWithDetails(c *gin.Context) {
	deals, err := h.dealService.GetAllWithDetails(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, deals)
}

func (h *DealHandler) GetWithDetails(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}
	deal, err := h.dealService.GetWithDetails(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, deal)
}

func (h *DealHandler) SearchWithDetails(c *gin.Context) {
	criteria, err := dealCriteria(c)
	if err != nil {
		fail(c, err)
		return
	}
	deals, err := h.dealService.SearchWithDetails(c.Request.Context(), criteria)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, deals)
}

func (h *DealHandler) ListForTable(c *gin.Context) {
	deals, err := h.dealService.GetAllForTable(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, deals)
}
