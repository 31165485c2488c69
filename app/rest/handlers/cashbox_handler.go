package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"cajachica-service/app/config"
	"cajachica-service/app/domain"
	"cajachica-service/app/port"
	"cajachica-service/app/rest/middleware"
	"cajachica-service/app/utils/validator"
)

// CashboxHandler handles registries, movements and balances.
type CashboxHandler struct {
	cashbox   port.CashboxUsecase
	catalog   *config.CategoryCatalog
	validator *validator.Validator
	logger    *slog.Logger
}

// NewCashboxHandler creates a new cashbox handler
func NewCashboxHandler(cashbox port.CashboxUsecase, catalog *config.CategoryCatalog, v *validator.Validator, logger *slog.Logger) *CashboxHandler {
	return &CashboxHandler{
		cashbox:   cashbox,
		catalog:   catalog,
		validator: v,
		logger:    logger,
	}
}

// CreateRegistryRequest is the payload for opening a registry
type CreateRegistryRequest struct {
	Kind   string `json:"kind" validate:"required,min=2,max=40"`
	Name   string `json:"name" validate:"required,min=2,max=120"`
	Entity string `json:"entity" validate:"omitempty,max=120"`
	Place  string `json:"place" validate:"omitempty,max=120"`
	Date   string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

// RecordMovementRequest is the payload for recording a movement
type RecordMovementRequest struct {
	RegistryID  string  `json:"registry_id" validate:"required,uuid4"`
	Description string  `json:"description" validate:"required,min=1,max=240"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Type        string  `json:"type" validate:"required,movement_type"`
	Category    string  `json:"category" validate:"required"`
}

// CreateRegistry handles POST /v1/registries
func (h *CashboxHandler) CreateRegistry(c echo.Context) error {
	identity, _ := middleware.IdentityFrom(c)

	req := new(CreateRegistryRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := h.validator.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	registry, err := h.cashbox.CreateRegistry(c.Request().Context(), identity, &port.CreateRegistryRequest{
		Kind:   req.Kind,
		Name:   req.Name,
		Entity: req.Entity,
		Place:  req.Place,
		Date:   req.Date,
	})
	if err != nil {
		h.logger.Error("registry creation failed", "error", err)
		return domainErrorResponse(c, err)
	}

	return c.JSON(http.StatusCreated, registry)
}

// ListRegistries handles GET /v1/registries
func (h *CashboxHandler) ListRegistries(c echo.Context) error {
	identity, _ := middleware.IdentityFrom(c)

	registries, err := h.cashbox.ListRegistries(c.Request().Context(), identity)
	if err != nil {
		h.logger.Error("registry listing failed", "error", err)
		return domainErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"registries": registries,
	})
}

// RecordMovement handles POST /v1/movements
func (h *CashboxHandler) RecordMovement(c echo.Context) error {
	identity, _ := middleware.IdentityFrom(c)

	req := new(RecordMovementRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := h.validator.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	registryID, err := uuid.Parse(req.RegistryID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid registry_id"})
	}

	movementType := domain.MovementType(req.Type)
	if !h.catalog.Contains(movementType, req.Category) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "unknown category for movement type",
		})
	}

	movement, err := h.cashbox.RecordMovement(c.Request().Context(), identity, &port.RecordMovementRequest{
		RegistryID:  registryID,
		Description: req.Description,
		Amount:      req.Amount,
		Type:        movementType,
		Category:    req.Category,
	})
	if err != nil {
		h.logger.Error("movement recording failed", "error", err)
		return domainErrorResponse(c, err)
	}

	return c.JSON(http.StatusCreated, movement)
}

// ListMovements handles GET /v1/movements?registry_id=...&limit=...
func (h *CashboxHandler) ListMovements(c echo.Context) error {
	identity, _ := middleware.IdentityFrom(c)

	registryID, err := uuid.Parse(c.QueryParam("registry_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid registry_id"})
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid limit"})
		}
	}

	movements, err := h.cashbox.ListMovements(c.Request().Context(), identity, registryID, limit)
	if err != nil {
		h.logger.Error("movement listing failed", "error", err)
		return domainErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"movements": movements,
	})
}

// DeleteMovement handles DELETE /v1/movements/:id
func (h *CashboxHandler) DeleteMovement(c echo.Context) error {
	identity, _ := middleware.IdentityFrom(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid movement id"})
	}

	if err := h.cashbox.DeleteMovement(c.Request().Context(), identity, id); err != nil {
		h.logger.Error("movement deletion failed", "movement_id", id, "error", err)
		return domainErrorResponse(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Balance handles GET /v1/registries/:id/balance
func (h *CashboxHandler) Balance(c echo.Context) error {
	identity, _ := middleware.IdentityFrom(c)

	registryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid registry id"})
	}

	balance, err := h.cashbox.RegistryBalance(c.Request().Context(), identity, registryID)
	if err != nil {
		h.logger.Error("balance query failed", "registry_id", registryID, "error", err)
		return domainErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"registry_id": balance.RegistryID,
		"ingress":     balance.Ingress,
		"egress":      balance.Egress,
		"balance":     balance.Net(),
	})
}

// Categories handles GET /v1/categories
func (h *CashboxHandler) Categories(c echo.Context) error {
	return c.JSON(http.StatusOK, h.catalog)
}
