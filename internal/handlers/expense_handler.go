package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bizdesk/internal/middleware"
	"bizdesk/internal/models"
	"bizdesk/internal/services"
)

// ExpenseHandler serves the signed-in account's expenses.
type ExpenseHandler struct {
	expenses services.ExpenseServicer
}

// NewExpenseHandler creates a new ExpenseHandler
func NewExpenseHandler(expenses services.ExpenseServicer) *ExpenseHandler {
	return &ExpenseHandler{expenses: expenses}
}

// List returns the account's expenses
// @Summary     List expenses
// @Tags        expenses
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} models.Expense
// @Router      /expenses [get]
func (h *ExpenseHandler) List(c *gin.Context) {
	expenses, err := h.expenses.List(c.Request.Context(), middleware.AccountID(c))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, expenses)
}

// Get returns one expense
// @Summary     Get expense
// @Tags        expenses
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Expense ID"
// @Success     200 {object} models.Expense
// @Failure     404 {object} ErrorResponse
// @Router      /expenses/{id} [get]
func (h *ExpenseHandler) Get(c *gin.Context) {
	id, err := parsePathID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	expense, err := h.expenses.Get(c.Request.Context(), middleware.AccountID(c), id)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, expense)
}

// Create adds an expense
// @Summary     Create expense
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body models.ExpenseDraft true "Expense"
// @Success     201 {object} models.Expense
// @Failure     400 {object} ErrorResponse "Invalid input or unknown category"
// @Router      /expenses [post]
func (h *ExpenseHandler) Create(c *gin.Context) {
	var d models.ExpenseDraft
	if err := bindJSON(c, &d); err != nil {
		respondWithError(c, err)
		return
	}
	expense, err := h.expenses.Create(c.Request.Context(), middleware.AccountID(c), d)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, expense)
}

// Update replaces an expense
// @Summary     Update expense
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Expense ID"
// @Param       request body models.ExpenseDraft true "Expense"
// @Success     200 {object} models.Expense
// @Failure     400 {object} ErrorResponse "Invalid input or unknown category"
// @Failure     404 {object} ErrorResponse
// @Router      /expenses/{id} [put]
func (h *ExpenseHandler) Update(c *gin.Context) {
	id, err := parsePathID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	var d models.ExpenseDraft
	if err := bindJSON(c, &d); err != nil {
		respondWithError(c, err)
		return
	}
	expense, err := h.expenses.Update(c.Request.Context(), middleware.AccountID(c), id, d)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, expense)
}

// Delete removes an expense
// @Summary     Delete expense
// @Tags        expenses
// @Security    BearerAuth
// @Param       id path int true "Expense ID"
// @Success     204
// @Failure     404 {object} ErrorResponse
// @Router      /expenses/{id} [delete]
func (h *ExpenseHandler) Delete(c *gin.Context) {
	id, err := parsePathID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if err := h.expenses.Delete(c.Request.Context(), middleware.AccountID(c), id); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
