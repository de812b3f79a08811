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

// userHandler handles HTTP requests related to the authenticated user's profile.
type userHandler struct {
	userService  portssvc.UserSvcFacade
	statsService portssvc.StatsSvcFacade
}

// newUserHandler creates a new userHandler.
func newUserHandler(us portssvc.UserSvcFacade, ss portssvc.StatsSvcFacade) *userHandler {
	return &userHandler{userService: us, statsService: ss}
}

// registerUserRoutes registers routes related to user profiles and stats.
func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade, statsService portssvc.StatsSvcFacade) {
	h := newUserHandler(userService, statsService)

	users := rg.Group("/users")
	{
		users.GET("/me", h.getMe)
		users.PATCH("/me", h.updateMe)
		users.GET("/me/stats", h.getMyStats)
		users.POST("/me/stats/invalidate", h.invalidateMyStats)
	}
}

// getMe godoc
// @Summary Get the caller's profile
// @Tags users
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/me [get]
func (h *userHandler) getMe(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "User not found"})
			return
		}
		logger.Error("Failed to get user", slog.String("error", err.Error()))
		respondServerError(c, "Failed to retrieve profile", err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// updateMe godoc
// @Summary Update the caller's profile
// @Description Updates profile fields and privacy settings.
// @Tags users
// @Accept json
// @Produce json
// @Param profile body dto.UpdateUserProfileRequest true "Fields to change"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/me [patch]
func (h *userHandler) updateMe(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateUserProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	user, err := h.userService.UpdateUserProfile(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "User not found"})
			return
		}
		logger.Error("Failed to update profile", slog.String("error", err.Error()))
		respondServerError(c, "Failed to update profile", err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// getMyStats godoc
// @Summary Get the caller's activity statistics
// @Description Returns cached derived statistics. Pass refresh=true to force recomputation.
// @Tags users
// @Produce json
// @Param refresh query bool false "Force recomputation" default(false)
// @Success 200 {object} dto.UserStatsResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/me/stats [get]
func (h *userHandler) getMyStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var params dto.UserStatsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	stats, fromCache, err := h.statsService.CalculateUserStats(c.Request.Context(), userID, params.Refresh)
	if err != nil {
		logger.Error("Failed to calculate user stats", slog.String("error", err.Error()))
		respondServerError(c, "Failed to calculate statistics", err)
		return
	}

	c.JSON(http.StatusOK, dto.UserStatsResponse{
		SeedsRegistered:    stats.SeedsRegistered,
		ExchangesCompleted: stats.ExchangesCompleted,
		ExchangesPending:   stats.ExchangesPending,
		MostRequestedSeed:  stats.MostRequestedSeed,
		LastCalculated:     stats.LastCalculated,
		FromCache:          fromCache,
	})
}

// invalidateMyStats godoc
// @Summary Invalidate the caller's cached statistics
// @Description Drops the cached snapshot; the next stats read recomputes from scratch.
// @Tags users
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/me/stats/invalidate [post]
func (h *userHandler) invalidateMyStats(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	h.statsService.InvalidateUserStatsCache(userID)
	c.Status(http.StatusNoContent)
}
