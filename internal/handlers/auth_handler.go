package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "bizdesk/internal/errors"
	"bizdesk/internal/middleware"
	"bizdesk/internal/models"
	"bizdesk/internal/services"
)

// AuthHandler handles authentication-related requests
type AuthHandler struct {
	accounts services.AccountServicer
	tokens   *middleware.TokenIssuer
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(accounts services.AccountServicer, tokens *middleware.TokenIssuer) *AuthHandler {
	return &AuthHandler{accounts: accounts, tokens: tokens}
}

// Register handles account registration
// @Summary     Register a new account
// @Description Create a USER account. It does not sign the caller in.
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body models.RegisterRequest true "Registration data"
// @Success     201 {object} models.AuthResponse
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     409 {object} ErrorResponse "Username or email already registered"
// @Router      /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	account, err := h.accounts.Register(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	h.respondWithToken(c, http.StatusCreated, account)
}

// Login handles account login
// @Summary     Login
// @Description Authenticate with username and password and receive a bearer token
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body models.Credentials true "Login credentials"
// @Success     200 {object} models.AuthResponse
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Invalid credentials"
// @Router      /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.Credentials
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	account, err := h.accounts.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondWithError(c, err)
		return
	}
	h.respondWithToken(c, http.StatusOK, account)
}

// Me returns the signed-in account
// @Summary     Current account
// @Tags        auth
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} models.CurrentAccount
// @Failure     401 {object} ErrorResponse "Missing or invalid token"
// @Router      /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	account, err := h.accounts.GetByID(c.Request.Context(), middleware.AccountID(c))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.CurrentAccount{
		ID:       account.ID,
		Username: account.Username,
		Email:    account.Email,
		Role:     account.Role,
		Enabled:  account.Enabled,
	})
}

func (h *AuthHandler) respondWithToken(c *gin.Context, status int, account *models.Account) {
	token, err := h.tokens.Issue(account)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}
	c.JSON(status, models.AuthResponse{
		Token:    token,
		Username: account.Username,
		Email:    account.Email,
		Role:     account.Role,
	})
}
