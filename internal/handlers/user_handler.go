package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bizdesk/internal/models"
	"bizdesk/internal/services"
)

// UserHandler serves the managed user records.
type UserHandler struct {
	users services.UserServicer
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(users services.UserServicer) *UserHandler {
	return &UserHandler{users: users}
}

// List returns every user
// @Summary     List users
// @Tags        users
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} models.User
// @Failure     401 {object} ErrorResponse
// @Router      /users [get]
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// Get returns one user
// @Summary     Get user
// @Tags        users
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "User ID"
// @Success     200 {object} models.User
// @Failure     404 {object} ErrorResponse
// @Router      /users/{id} [get]
func (h *UserHandler) Get(c *gin.Context) {
	id, err := parsePathID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	user, err := h.users.Get(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Create adds a user
// @Summary     Create user
// @Tags        users
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body models.UserDraft true "User"
// @Success     201 {object} models.User
// @Failure     400 {object} ErrorResponse
// @Failure     409 {object} ErrorResponse "Duplicate email"
// @Router      /users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var d models.UserDraft
	if err := bindJSON(c, &d); err != nil {
		respondWithError(c, err)
		return
	}
	user, err := h.users.Create(c.Request.Context(), d)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// Update replaces a user
// @Summary     Update user
// @Tags        users
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "User ID"
// @Param       request body models.UserDraft true "User"
// @Success     200 {object} models.User
// @Failure     400 {object} ErrorResponse
// @Failure     404 {object} ErrorResponse
// @Failure     409 {object} ErrorResponse "Duplicate email"
// @Router      /users/{id} [put]
func (h *UserHandler) Update(c *gin.Context) {
	id, err := parsePathID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	var d models.UserDraft
	if err := bindJSON(c, &d); err != nil {
		respondWithError(c, err)
		return
	}
	user, err := h.users.Update(c.Request.Context(), id, d)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Delete removes a user. Requires the ADMIN role.
// @Summary     Delete user
// @Tags        users
// @Security    BearerAuth
// @Param       id path int true "User ID"
// @Success     204
// @Failure     403 {object} ErrorResponse "Not an administrator"
// @Failure     404 {object} ErrorResponse
// @Router      /users/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := parsePathID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if err := h.users.Delete(c.Request.Context(), id); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
