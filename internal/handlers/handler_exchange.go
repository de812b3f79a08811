package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/seedswap/seed_exchange_app/internal/apperrors"
	portssvc "github.com/seedswap/seed_exchange_app/internal/core/ports/services"
	"github.com/seedswap/seed_exchange_app/internal/dto"
	"github.com/seedswap/seed_exchange_app/internal/middleware"
)

// exchangeHandler handles HTTP requests related to exchange requests.
type exchangeHandler struct {
	exchangeService portssvc.ExchangeSvcFacade
}

// newExchangeHandler creates a new exchangeHandler.
func newExchangeHandler(es portssvc.ExchangeSvcFacade) *exchangeHandler {
	return &exchangeHandler{exchangeService: es}
}

// registerExchangeRoutes registers routes related to exchange requests.
func registerExchangeRoutes(rg *gin.RouterGroup, exchangeService portssvc.ExchangeSvcFacade) {
	h := newExchangeHandler(exchangeService)

	exchanges := rg.Group("/exchanges")
	{
		exchanges.POST("", h.createExchange)
		exchanges.GET("/received", h.listReceived)
		exchanges.GET("/sent", h.listSent)
		exchanges.GET("/history", h.history)
		exchanges.GET("/:id", h.getExchange)
		exchanges.PATCH("/:id/status", h.updateStatus)
		exchanges.DELETE("/:id", h.deleteExchange)
	}
}

// createExchange godoc
// @Summary Create an exchange request
// @Description Opens a new pending exchange request for another user's seed.
// @Tags exchanges
// @Accept json
// @Produce json
// @Param exchange body dto.CreateExchangeRequest true "Exchange details"
// @Success 201 {object} dto.EnrichedExchangeResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 403 {object} ErrorResponse "Not permitted"
// @Failure 404 {object} ErrorResponse "Seed not found"
// @Failure 409 {object} ErrorResponse "Duplicate active exchange"
// @Failure 422 {object} ErrorResponse "Seed not available"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /exchanges [post]
func (h *exchangeHandler) createExchange(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateExchangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createExchange", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	requesterID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	created, err := h.exchangeService.CreateExchangeRequest(c.Request.Context(), requesterID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrPermissionDenied):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrUnavailable):
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to create exchange", slog.String("error", err.Error()))
			respondServerError(c, "Failed to create exchange request", err)
		}
		return
	}

	c.JSON(http.StatusCreated, created)
}

// getExchange godoc
// @Summary Get an exchange by ID
// @Description Retrieves a single exchange request, enriched with seed and user projections.
// @Tags exchanges
// @Produce json
// @Param id path string true "Exchange ID"
// @Success 200 {object} dto.EnrichedExchangeResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /exchanges/{id} [get]
func (h *exchangeHandler) getExchange(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	exchangeID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	exchange, err := h.exchangeService.GetExchangeByID(c.Request.Context(), exchangeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Exchange not found"})
			return
		}
		logger.Error("Failed to get exchange", slog.String("error", err.Error()))
		respondServerError(c, "Failed to retrieve exchange", err)
		return
	}

	// Only the two parties may read an exchange.
	if exchange.RequesterID != userID && exchange.OwnerID != userID {
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Not a participant in this exchange"})
		return
	}

	c.JSON(http.StatusOK, exchange)
}

// updateStatus godoc
// @Summary Update exchange status
// @Description Applies a lifecycle transition (accept, reject or complete) to an exchange.
// @Tags exchanges
// @Accept json
// @Produce json
// @Param id path string true "Exchange ID"
// @Param status body dto.UpdateExchangeStatusRequest true "Target status"
// @Success 200 {object} dto.UpdateSummaryResponse
// @Failure 400 {object} ErrorResponse "Invalid status"
// @Failure 403 {object} ErrorResponse "Actor not permitted"
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Transition not allowed"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /exchanges/{id}/status [patch]
func (h *exchangeHandler) updateStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	exchangeID := c.Param("id")

	var req dto.UpdateExchangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateStatus", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	summary, err := h.exchangeService.UpdateExchangeStatus(c.Request.Context(), exchangeID, req.Status, actorID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Exchange not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrInvalidTransition):
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrPermissionDenied):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to update exchange status", slog.String("error", err.Error()))
			respondServerError(c, "Failed to update exchange status", err)
		}
		return
	}

	c.JSON(http.StatusOK, summary)
}

// deleteExchange godoc
// @Summary Delete an exchange
// @Description Hard-deletes an exchange the caller participates in. Administrative escape hatch.
// @Tags exchanges
// @Produce json
// @Param id path string true "Exchange ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /exchanges/{id} [delete]
func (h *exchangeHandler) deleteExchange(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	exchangeID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	exchange, err := h.exchangeService.GetExchangeByID(c.Request.Context(), exchangeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Exchange not found"})
			return
		}
		logger.Error("Failed to load exchange for deletion", slog.String("error", err.Error()))
		respondServerError(c, "Failed to delete exchange", err)
		return
	}
	if exchange.RequesterID != userID && exchange.OwnerID != userID {
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Not a participant in this exchange"})
		return
	}

	if err := h.exchangeService.DeleteExchange(c.Request.Context(), exchangeID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Exchange not found"})
			return
		}
		logger.Error("Failed to delete exchange", slog.String("error", err.Error()))
		respondServerError(c, "Failed to delete exchange", err)
		return
	}

	c.Status(http.StatusNoContent)
}

// listReceived godoc
// @Summary List received exchanges
// @Description Lists exchanges where the caller owns the requested seed, newest first.
// @Tags exchanges
// @Produce json
// @Success 200 {object} dto.ListExchangesResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /exchanges/received [get]
func (h *exchangeHandler) listReceived(c *gin.Context) {
	h.listForUser(c, h.exchangeService.GetUserExchangesReceived)
}

// listSent godoc
// @Summary List sent exchanges
// @Description Lists exchanges opened by the caller, newest first.
// @Tags exchanges
// @Produce json
// @Success 200 {object} dto.ListExchangesResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /exchanges/sent [get]
func (h *exchangeHandler) listSent(c *gin.Context) {
	h.listForUser(c, h.exchangeService.GetUserExchangesSent)
}

func (h *exchangeHandler) listForUser(c *gin.Context, list func(ctx context.Context, userID string) ([]dto.EnrichedExchangeResponse, error)) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	exchanges, err := list(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to list exchanges", slog.String("error", err.Error()))
		respondServerError(c, "Failed to list exchanges", err)
		return
	}

	c.JSON(http.StatusOK, dto.ListExchangesResponse{Exchanges: exchanges, Count: len(exchanges)})
}

// history godoc
// @Summary Exchange history
// @Description Lists the caller's completed and rejected exchanges across both roles, with summary counts.
// @Tags exchanges
// @Produce json
// @Success 200 {object} dto.ExchangeHistoryResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /exchanges/history [get]
func (h *exchangeHandler) history(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	historyResp, err := h.exchangeService.GetExchangeHistory(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to get exchange history", slog.String("error", err.Error()))
		respondServerError(c, "Failed to get exchange history", err)
		return
	}

	c.JSON(http.StatusOK, historyResp)
}
