package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"cajachica-service/app/port"
	"cajachica-service/app/rest/middleware"
	"cajachica-service/app/utils/validator"
)

// TeamHandler handles employee authorization management. All routes are
// manager-only; the router guards them with RequireManager.
type TeamHandler struct {
	resolver  port.SessionResolver
	validator *validator.Validator
	logger    *slog.Logger
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(resolver port.SessionResolver, v *validator.Validator, logger *slog.Logger) *TeamHandler {
	return &TeamHandler{
		resolver:  resolver,
		validator: v,
		logger:    logger,
	}
}

// AuthorizeEmployeeRequest is the payload for authorizing an employee
type AuthorizeEmployeeRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Position string `json:"position" validate:"required,position"`
}

// Authorize handles POST /v1/team
func (h *TeamHandler) Authorize(c echo.Context) error {
	identity, _ := middleware.IdentityFrom(c)

	req := new(AuthorizeEmployeeRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := h.validator.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	err := h.resolver.AuthorizeEmployee(c.Request().Context(), req.Email, req.Position, identity.IdentityID())
	if err != nil {
		h.logger.Error("employee authorization failed", "email", req.Email, "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to authorize employee"})
	}

	return c.NoContent(http.StatusCreated)
}

// Deauthorize handles DELETE /v1/team/:email. Removing an authorization
// does not kill a session already running under that email; the next
// resolution for that identity ends it.
func (h *TeamHandler) Deauthorize(c echo.Context) error {
	email := c.Param("email")
	if err := h.validator.ValidateVar(email, "required,email"); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid email"})
	}

	if err := h.resolver.DeauthorizeEmployee(c.Request().Context(), email); err != nil {
		h.logger.Error("employee deauthorization failed", "email", email, "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to deauthorize employee"})
	}

	return c.NoContent(http.StatusNoContent)
}

// List handles GET /v1/team
func (h *TeamHandler) List(c echo.Context) error {
	identity, _ := middleware.IdentityFrom(c)

	team, err := h.resolver.ListTeam(c.Request().Context(), identity.IdentityID())
	if err != nil {
		h.logger.Error("team listing failed", "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to list team"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"employees": team,
	})
}
