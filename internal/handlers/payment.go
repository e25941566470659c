package handlers

import (
	"net/http"

	"realestate-backoffice/internal/models"
	"realestate-backoffice/internal/services"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	paymentService *services.PaymentService
}

func NewPaymentHandler(paymentService *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

func (h *PaymentHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.GET("/with-details", h.ListWithDetails)
	rg.GET("/search", h.Search)
	rg.GET("/deal/:dealId", h.FindByDeal)
	rg.GET("/:id", h.Get)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

func (h *PaymentHandler) List(c *gin.Context) {
	payments, err := h.paymentService.GetAll(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

func (h *PaymentHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}
	payment, err := h.paymentService.GetByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, payment)
}

func (h *PaymentHandler) Create(c *gin.Context) {
	var payment models.Payment
	if err := bindJSON(c, &payment); err != nil {
		fail(c, err)
		return
	}
	id, err := h.paymentService.Create(c.Request.Context(), &payment)
	if err != nil {
		fail(c, err)
		return
	}
	paymentMessages.respondCreated(c, id)
}

// Update replaces the whole payment with the request body.
func (h *PaymentHandler) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}
	var payment models.Payment
	if err := bindJSON(c, &payment); err != nil {
		fail(c, err)
		return
	}
	updated, err := h.paymentService.Replace(c.Request.Context(), id, &payment)
	if err != nil {
		fail(c, err)
		return
	}
	paymentMessages.respondUpdated(c, updated)
}

func (h *PaymentHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}
	deleted, err := h.paymentService.Delete(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	paymentMessages.respondDeleted(c, deleted)
}

func (h *PaymentHandler) FindByDeal(c *gin.Context) {
	dealID, err := pathID(c, "dealId")
	if err != nil {
		fail(c, err)
		return
	}
	payments, err := h.paymentService.FindByDeal(c.Request.Context(), dealID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

func (h *PaymentHandler) ListWithDetails(c *gin.Context) {
	payments, err := h.paymentService.GetAllWithDetails(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

func (h *PaymentHandler) Search(c *gin.Context) {
	q := newQueryParser(c)
	criteria := models.PaymentSearch{
		DealID:    q.int64("dealId"),
		StartDate: q.date("startDate"),
		EndDate:   q.date("endDate"),
	}
	if err := q.err(); err != nil {
		fail(c, err)
		return
	}
	payments, err := h.paymentService.Search(c.Request.Context(), criteria)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}
