package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/seedswap/seed_exchange_app/internal/apperrors"
	portssvc "github.com/seedswap/seed_exchange_app/internal/core/ports/services"
	"github.com/seedswap/seed_exchange_app/internal/dto"
	"github.com/seedswap/seed_exchange_app/internal/middleware"
)

// seedHandler handles HTTP requests related to seed listings.
type seedHandler struct {
	seedService     portssvc.SeedSvcFacade
	exchangeService portssvc.ExchangeReaderSvc
}

// newSeedHandler creates a new seedHandler.
func newSeedHandler(ss portssvc.SeedSvcFacade, es portssvc.ExchangeReaderSvc) *seedHandler {
	return &seedHandler{seedService: ss, exchangeService: es}
}

// registerSeedRoutes registers routes related to seed listings.
func registerSeedRoutes(rg *gin.RouterGroup, seedService portssvc.SeedSvcFacade, exchangeService portssvc.ExchangeReaderSvc) {
	h := newSeedHandler(seedService, exchangeService)

	seeds := rg.Group("/seeds")
	{
		seeds.POST("", h.createSeed)
		seeds.GET("", h.listMySeeds)
		seeds.GET("/:id", h.getSeed)
		seeds.PATCH("/:id", h.updateSeed)
		seeds.DELETE("/:id", h.deactivateSeed)
		seeds.GET("/:id/active-exchanges", h.activeExchanges)
	}
}

// createSeed godoc
// @Summary Register a seed listing
// @Description Creates a new seed listing owned by the caller.
// @Tags seeds
// @Accept json
// @Produce json
// @Param seed body dto.CreateSeedRequest true "Seed details"
// @Success 201 {object} dto.SeedResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /seeds [post]
func (h *seedHandler) createSeed(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateSeedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createSeed", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	seed, err := h.seedService.CreateSeed(c.Request.Context(), ownerID, req)
	if err != nil {
		logger.Error("Failed to create seed", slog.String("error", err.Error()))
		respondServerError(c, "Failed to create seed", err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToSeedResponse(seed))
}

// getSeed godoc
// @Summary Get a seed by ID
// @Tags seeds
// @Produce json
// @Param id path string true "Seed ID"
// @Success 200 {object} dto.SeedResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /seeds/{id} [get]
func (h *seedHandler) getSeed(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	seedID := c.Param("id")

	seed, err := h.seedService.GetSeedByID(c.Request.Context(), seedID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Seed not found"})
			return
		}
		logger.Error("Failed to get seed", slog.String("error", err.Error()))
		respondServerError(c, "Failed to retrieve seed", err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSeedResponse(seed))
}

// listMySeeds godoc
// @Summary List the caller's seeds
// @Tags seeds
// @Produce json
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListSeedsResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /seeds [get]
func (h *seedHandler) listMySeeds(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var params dto.ListSeedsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	seeds, err := h.seedService.ListSeedsByOwner(c.Request.Context(), ownerID, params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list seeds", slog.String("error", err.Error()))
		respondServerError(c, "Failed to list seeds", err)
		return
	}

	responses := make([]dto.SeedResponse, len(seeds))
	for i := range seeds {
		responses[i] = dto.ToSeedResponse(&seeds[i])
	}
	c.JSON(http.StatusOK, dto.ListSeedsResponse{Seeds: responses, Count: len(responses)})
}

// updateSeed godoc
// @Summary Update a seed listing
// @Tags seeds
// @Accept json
// @Produce json
// @Param id path string true "Seed ID"
// @Param seed body dto.UpdateSeedRequest true "Fields to change"
// @Success 200 {object} dto.SeedResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /seeds/{id} [patch]
func (h *seedHandler) updateSeed(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	seedID := c.Param("id")

	var req dto.UpdateSeedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	seed, err := h.seedService.UpdateSeed(c.Request.Context(), seedID, req, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Seed not found"})
		case errors.Is(err, apperrors.ErrPermissionDenied):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to update seed", slog.String("error", err.Error()))
			respondServerError(c, "Failed to update seed", err)
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToSeedResponse(seed))
}

// deactivateSeed godoc
// @Summary Deactivate a seed listing
// @Description Retires a listing. Refused while the seed participates in pending or accepted exchanges.
// @Tags seeds
// @Produce json
// @Param id path string true "Seed ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Seed has active exchanges"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /seeds/{id} [delete]
func (h *seedHandler) deactivateSeed(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	seedID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	err := h.seedService.DeactivateSeed(c.Request.Context(), seedID, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Seed not found"})
		case errors.Is(err, apperrors.ErrPermissionDenied):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to deactivate seed", slog.String("error", err.Error()))
			respondServerError(c, "Failed to deactivate seed", err)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// activeExchanges godoc
// @Summary Check a seed's active exchanges
// @Description Reports pending and accepted exchanges in which the seed participates.
// @Tags seeds
// @Produce json
// @Param id path string true "Seed ID"
// @Success 200 {object} dto.SeedActiveExchangesResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /seeds/{id}/active-exchanges [get]
func (h *seedHandler) activeExchanges(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	seedID := c.Param("id")

	resp, err := h.exchangeService.CheckSeedActiveExchanges(c.Request.Context(), seedID)
	if err != nil {
		logger.Error("Failed to check seed active exchanges", slog.String("error", err.Error()))
		respondServerError(c, "Failed to check active exchanges", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
