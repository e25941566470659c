package handlers

import (
	"net/http"

	"realestate-backoffice/internal/models"
	"realestate-backoffice/internal/services"

	"github.com/gin-gonic/gin"
)

type RealtorHandler struct {
	realtorService *services.RealtorService
}

func NewRealtorHandler(realtorService *services.RealtorService) *RealtorHandler {
	return &RealtorHandler{realtorService: realtorService}
}

// Register mounts the handler under rg, typically /api/realtors.
func (h *RealtorHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.GET("/count", h.Count)
	rg.GET("/search", h.Search)
	rg.GET("/search/by-lastname", h.FindByLastName)
	rg.GET("/search/by-phone", h.FindByPhone)
	rg.GET("/search/by-email", h.FindByEmail)
	rg.GET("/search/by-experience", h.FindByExperience)
	rg.GET("/:id", h.Get)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

func (h *RealtorHandler) List(c *gin.Context) {
	realtors, err := h.realtorService.GetAll(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, realtors)
}

func (h *RealtorHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}
	realtor, err := h.realtorService.GetByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, realtor)
}

func (h *RealtorHandler) Create(c *gin.Context) {
	var realtor models.Realtor
	if err := bindJSON(c, &realtor); err != nil {
		fail(c, err)
		return
	}
	id, err := h.realtorService.Create(c.Request.Context(), &realtor)
	if err != nil {
		fail(c, err)
		return
	}
	realtorMessages.respondCreated(c, id)
}

func (h *RealtorHandler) Update(c *gin.Context) {
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
	updated, err := h.realtorService.Update(c.Request.Context(), id, updates)
	if err != nil {
		fail(c, err)
		return
	}
	realtorMessages.respondUpdated(c, updated)
}

func (h *RealtorHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}
	deleted, err := h.realtorService.Delete(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	realtorMessages.respondDeleted(c, deleted)
}

func (h *RealtorHandler) Search(c *gin.Context) {
	q := newQueryParser(c)
	criteria := models.RealtorSearch{
		LastName:      q.text("lastName"),
		Email:         q.text("email"),
		Phone:         q.text("phone"),
		MinExperience: q.int("minExperience"),
	}
	if err := q.err(); err != nil {
		fail(c, err)
		return
	}
	realtors, err := h.realtorService.Search(c.Request.Context(), criteria)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, realtors)
}

func (h *RealtorHandler) FindByLastName(c *gin.Context) {
	q := newQueryParser(c)
	lastName := q.required("lastName")
	if err := q.err(); err != nil {
		fail(c, err)
		return
	}
	realtors, err := h.realtorService.FindByLastName(c.Request.Context(), lastName)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, realtors)
}

func (h *RealtorHandler) FindByPhone(c *gin.Context) {
	q := newQueryParser(c)
	phone := q.required("phone")
	if err := q.err(); err != nil {
		fail(c, err)
		return
	}
	realtor, err := h.realtorService.FindByPhone(c.Request.Context(), phone)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, realtor)
}

func (h *RealtorHandler) FindByEmail(c *gin.Context) {
	q := newQueryParser(c)
	email := q.required("email")
	if err := q.err(); err != nil {
		fail(c, err)
		return
	}
	realtor, err := h.realtorService.FindByEmail(c.Request.Context(), email)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, realtor)
}

func (h *RealtorHandler) FindByExperience(c *gin.Context) {
	q := newQueryParser(c)
	minYears := q.requiredInt("minExperience")
	if err := q.err(); err != nil {
		fail(c, err)
		return
	}
	realtors, err := h.realtorService.FindByExperience(c.Request.Context(), minYears)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, realtors)
}

func (h *RealtorHandler) Count(c *gin.Context) {
	n, err := h.realtorService.Count(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": n})
}
