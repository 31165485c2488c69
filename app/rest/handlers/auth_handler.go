package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"cajachica-service/app/port"
	"cajachica-service/app/rest/middleware"
	"cajachica-service/app/utils/validator"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	resolver  port.SessionResolver
	validator *validator.Validator
	logger    *slog.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(resolver port.SessionResolver, v *validator.Validator, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		resolver:  resolver,
		validator: v,
		logger:    logger,
	}
}

// ManagerLoginRequest is the manager login payload
type ManagerLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// EmployeeLoginRequest is the employee login payload. Position is a second
// factor beyond the password: it must match the authorized record.
type EmployeeLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Position string `json:"position" validate:"required,position"`
}

// RegisterManagerRequest is the manager registration payload
type RegisterManagerRequest struct {
	Name           string `json:"name" validate:"required,min=2,max=60"`
	Surname        string `json:"surname" validate:"required,min=2,max=60"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,password"`
	DocumentType   string `json:"document_type" validate:"omitempty,max=20"`
	DocumentNumber string `json:"document_number" validate:"omitempty,max=30"`
}

// RecoverPasswordRequest is the password-recovery payload
type RecoverPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// SessionResponse carries the session token plus the resolved identity.
type SessionResponse struct {
	SessionToken string      `json:"session_token,omitempty"`
	Identity     interface{} `json:"identity"`
}

// LoginManager handles POST /v1/auth/login/manager
func (h *AuthHandler) LoginManager(c echo.Context) error {
	req := new(ManagerLoginRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := h.validator.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	identity, err := h.resolver.AuthenticateManager(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		h.logger.Warn("manager login failed", "email", req.Email, "error", err)
		return authErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, SessionResponse{
		SessionToken: identity.Session.Token,
		Identity:     identity,
	})
}

// LoginEmployee handles POST /v1/auth/login/employee
func (h *AuthHandler) LoginEmployee(c echo.Context) error {
	req := new(EmployeeLoginRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := h.validator.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	identity, err := h.resolver.AuthenticateEmployee(c.Request().Context(), req.Email, req.Password, req.Position)
	if err != nil {
		h.logger.Warn("employee login failed", "email", req.Email, "error", err)
		return authErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, SessionResponse{
		SessionToken: identity.Session.Token,
		Identity:     identity,
	})
}

// RegisterManager handles POST /v1/auth/register/manager
func (h *AuthHandler) RegisterManager(c echo.Context) error {
	req := new(RegisterManagerRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := h.validator.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	identity, err := h.resolver.RegisterManager(c.Request().Context(), &port.RegisterManagerRequest{
		Name:           req.Name,
		Surname:        req.Surname,
		Email:          req.Email,
		Password:       req.Password,
		DocumentType:   req.DocumentType,
		DocumentNumber: req.DocumentNumber,
	})
	if err != nil {
		h.logger.Warn("manager registration failed", "email", req.Email, "error", err)
		return authErrorResponse(c, err)
	}

	return c.JSON(http.StatusCreated, SessionResponse{
		SessionToken: identity.Session.Token,
		Identity:     identity,
	})
}

// Logout handles POST /v1/auth/logout. Revokes the presented session;
// idempotent, so an already-dead token still yields 204.
func (h *AuthHandler) Logout(credentials port.CredentialStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := c.Request().Header.Get("X-Session-Token")
		if token == "" {
			if auth := c.Request().Header.Get(echo.HeaderAuthorization); len(auth) > 7 {
				token = auth[7:]
			}
		}
		if token != "" {
			if err := credentials.RevokeSession(c.Request().Context(), token); err != nil {
				h.logger.Warn("logout revocation failed", "error", err)
			}
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// RecoverPassword handles POST /v1/auth/recover. Sends a recovery code to
// the address so the user can reset the password out of band.
func (h *AuthHandler) RecoverPassword(credentials port.CredentialStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(RecoverPasswordRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		}
		if err := h.validator.Validate(req); err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		}

		if err := credentials.RecoverPassword(c.Request().Context(), req.Email); err != nil {
			h.logger.Warn("password recovery failed", "email", req.Email, "error", err)
			return authErrorResponse(c, err)
		}

		return c.JSON(http.StatusOK, map[string]string{
			"message": "Se ha enviado un correo de recuperación a tu dirección de email.",
		})
	}
}

// Session handles GET /v1/auth/session: returns the identity resolved by
// the auth middleware for the presented token.
func (h *AuthHandler) Session(c echo.Context) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
	}
	return c.JSON(http.StatusOK, SessionResponse{Identity: identity})
}
