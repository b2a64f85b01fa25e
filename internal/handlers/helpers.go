package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	apperrors "bizdesk/internal/errors"
	appvalidator "bizdesk/internal/validator"
)

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Code    string                 `json:"code" example:"USER_NOT_FOUND"`
	Message string                 `json:"message" example:"User not found"`
	Fields  []apperrors.FieldError `json:"fields,omitempty"`
}

// parsePathID parses the :id path parameter.
// Returns ErrInvalidInput if the parameter is not a valid positive integer.
func parsePathID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid id")
	}
	return id, nil
}

// bindJSON decodes and validates the request body into dst. Validation
// failures carry one field error per failing field.
func bindJSON(c *gin.Context, dst any) error {
	err := c.ShouldBindJSON(dst)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return appvalidator.FromValidationErrors(verrs)
	}
	return apperrors.WithMessage(apperrors.ErrInvalidInput, "Malformed request body: "+err.Error())
}

// respondWithError hands err to the ErrorHandler middleware and stops the chain.
func respondWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
