package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bizdesk/internal/services"
)

// CategoryHandler serves the read-only category catalogue.
type CategoryHandler struct {
	categories services.CategoryServicer
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categories services.CategoryServicer) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

// List returns active categories ordered by name
// @Summary     List expense categories
// @Tags        categories
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} models.Category
// @Router      /expense-categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categories.ListActive(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// Get returns one category
// @Summary     Get expense category
// @Tags        categories
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Category ID"
// @Success     200 {object} models.Category
// @Failure     404 {object} ErrorResponse
// @Router      /expense-categories/{id} [get]
func (h *CategoryHandler) Get(c *gin.Context) {
	id, err := parsePathID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	category, err := h.categories.Get(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}
