package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"cajachica-service/app/domain"
	"cajachica-service/app/usecase"
	apperrors "cajachica-service/app/utils/errors"
)

// ErrorResponse is the error envelope returned by all handlers.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

// authErrorResponse maps a classified auth failure to its HTTP response.
// The localized message is what the login screens show in the error banner.
func authErrorResponse(c echo.Context, err error) error {
	authErr, ok := domain.AsAuthError(err)
	if !ok {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "authentication failed",
		})
	}

	status := http.StatusUnauthorized
	switch authErr.Code {
	case domain.AuthCodeNotAuthorized, domain.AuthCodePositionMismatch:
		status = http.StatusForbidden
	case domain.AuthCodeTooManyRequests:
		status = http.StatusTooManyRequests
	case domain.AuthCodeNetworkFailure, domain.AuthCodeInternal:
		status = http.StatusServiceUnavailable
	case domain.AuthCodeEmailInUse:
		status = http.StatusConflict
	case domain.AuthCodeInvalidEmail, domain.AuthCodeWeakPassword:
		status = http.StatusBadRequest
	}

	return c.JSON(status, ErrorResponse{
		Error:   "authentication failed",
		Code:    string(authErr.Code),
		Message: authErr.UserMessage(),
	})
}

// domainErrorResponse maps domain-data errors to HTTP responses.
func domainErrorResponse(c echo.Context, err error) error {
	switch {
	case usecase.IsNotFound(err):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrForbidden):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: "access denied"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
	}

	if appErr, ok := apperrors.AsAppError(err); ok {
		return c.JSON(appErr.StatusCode, ErrorResponse{
			Error:   appErr.Message,
			Code:    string(appErr.Code),
			Message: appErr.Details,
		})
	}

	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}
