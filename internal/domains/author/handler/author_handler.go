package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"book-catalog/internal/domains/author"
	"book-catalog/internal/shared/page"
	"book-catalog/internal/shared/response"
)

type AuthorHandler struct {
	service author.Service
}

func NewAuthorHandler(svc author.Service) *AuthorHandler {
	return &AuthorHandler{service: svc}
}

// Create - POST /api/v1/authors
func (h *AuthorHandler) Create(c *gin.Context) {
	var req author.CreateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "malformed request body")
		return
	}

	// Validation fails closed at the boundary: no storage call is made
	// for an invalid payload.
	if err := req.Validate(); err != nil {
		response.Error(c, err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, created.ToResponse())
}

// GetPage - GET /api/v1/authors?page=1&size=10
func (h *AuthorHandler) GetPage(c *gin.Context) {
	q := page.ParseQuery(c.Query("page"), c.Query("size"))
	if err := q.Validate(); err != nil {
		response.Error(c, err)
		return
	}

	authors, total, err := h.service.GetPage(c.Request.Context(), q)
	if err != nil {
		response.Error(c, err)
		return
	}

	content := make([]author.AuthorResponse, len(authors))
	for i, a := range authors {
		content[i] = *a.ToResponse()
	}

	c.JSON(http.StatusOK, page.New(content, q, total))
}

// GetByID - GET /api/v1/authors/:id
func (h *AuthorHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid id")
		return
	}

	a, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, a.ToResponse())
}
