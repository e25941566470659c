package handlers

import (
	"net/http"

	"realestate-backoffice/internal/models"
	"realestate-backoffice/internal/services"

	"github.com/gin-gonic/gin"
)

type ClientHandler struct {
	clientService *services.ClientService
}

func NewClientHandler(clientService *services.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

// Register mounts the handler under rg, typically /api/clients.
func (h *ClientHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.GET("/count", h.Count)
	rg.GET("/search", h.Search)
	rg.GET("/search/by-lastname", h.FindByLastName)
	rg.GET("/search/by-phone", h.FindByPhone)
	rg.GET("/search/by-email", h.FindByEmail)
	rg.GET("/:id", h.Get)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.clientService.GetAll(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, clients)
}

func (h *ClientHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}
	client, err := h.clientService.GetByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) Create(c *gin.Context) {
	var client models.Client
	if err := bindJSON(c, &client); err != nil {
		fail(c, err)
		return
	}
	id, err := h.clientService.Create(c.Request.Context(), &client)
	if err != nil {
		fail(c, err)
		return
	}
	clientMessages.respondCreated(c, id)
}

func (h *ClientHandler) Update(c *gin.Context) {
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
	updated, err := h.clientService.Update(c.Request.Context(), id, updates)
	if err != nil {
		fail(c, err)
		return
	}
	clientMessages.respondUpdated(c, updated)
}

func (h *ClientHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}
	deleted, err := h.clientService.Delete(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	clientMessages.respondDeleted(c, deleted)
}

func (h *ClientHandler) Search(c *gin.Context) {
	q := newQueryParser(c)
	criteria := models.ClientSearch{
		LastName: q.text("lastName"),
		Email:    q.text("email"),
		Phone:    q.text("phone"),
	}
	if err := q.err(); err != nil {
		fail(c, err)
		return
	}
	clients, err := h.clientService.Search(c.Request.Context(), criteria)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, clients)
}

func (h *ClientHandler) FindByLastName(c *gin.Context) {
	q := newQueryParser(c)
	lastName := q.required("lastName")
	if err := q.err(); err != nil {
		fail(c, err)
		return
	}
	clients, err := h.clientService.FindByLastName(c.Request.Context(), lastName)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, clients)
}

func (h *ClientHandler) FindByPhone(c *gin.Context) {
	q := newQueryParser(c)
	phone := q.required("phone")
	if err := q.err(); err != nil {
		fail(c, err)
		return
	}
	client, err := h.clientService.FindByPhone(c.Request.Context(), phone)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) FindByEmail(c *gin.Context) {
	q := newQueryParser(c)
	email := q.required("email")
	if err := q.err(); err != nil {
		fail(c, err)
		return
	}
	client, err := h.clientService.FindByEmail(c.Request.Context(), email)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) Count(c *gin.Context) {
	n, err := h.clientService.Count(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": n})
}
