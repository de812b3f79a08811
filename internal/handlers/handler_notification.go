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

// notificationHandler handles HTTP requests for the notification inbox.
type notificationHandler struct {
	notificationService portssvc.NotificationSvcFacade
}

// newNotificationHandler creates a new notificationHandler.
func newNotificationHandler(ns portssvc.NotificationSvcFacade) *notificationHandler {
	return &notificationHandler{notificationService: ns}
}

// registerNotificationRoutes registers routes related to notifications.
func registerNotificationRoutes(rg *gin.RouterGroup, notificationService portssvc.NotificationSvcFacade) {
	h := newNotificationHandler(notificationService)

	notifications := rg.Group("/notifications")
	{
		notifications.GET("", h.list)
		notifications.GET("/unread-count", h.unreadCount)
		notifications.PATCH("/read-all", h.markAllRead)
		notifications.PATCH("/:id/read", h.markRead)
		notifications.DELETE("/:id", h.delete)
	}
}

// list godoc
// @Summary List the caller's notifications
// @Tags notifications
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param unreadOnly query bool false "Only unread" default(false)
// @Success 200 {object} dto.ListNotificationsResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /notifications [get]
func (h *notificationHandler) list(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var params dto.ListNotificationsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	notifications, err := h.notificationService.ListUserNotifications(c.Request.Context(), userID, params.Limit, params.UnreadOnly)
	if err != nil {
		logger.Error("Failed to list notifications", slog.String("error", err.Error()))
		respondServerError(c, "Failed to list notifications", err)
		return
	}

	responses := make([]dto.NotificationResponse, len(notifications))
	for i := range notifications {
		responses[i] = dto.ToNotificationResponse(&notifications[i])
	}
	c.JSON(http.StatusOK, dto.ListNotificationsResponse{Notifications: responses, Count: len(responses)})
}

// unreadCount godoc
// @Summary Count unread notifications
// @Tags notifications
// @Produce json
// @Success 200 {object} dto.UnreadCountResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /notifications/unread-count [get]
func (h *notificationHandler) unreadCount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	count, err := h.notificationService.UnreadCount(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to count unread notifications", slog.String("error", err.Error()))
		respondServerError(c, "Failed to count notifications", err)
		return
	}

	c.JSON(http.StatusOK, dto.UnreadCountResponse{Unread: count})
}

// markRead godoc
// @Summary Mark a notification as read
// @Tags notifications
// @Produce json
// @Param id path string true "Notification ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /notifications/{id}/read [patch]
func (h *notificationHandler) markRead(c *gin.Context) {
	h.mutateOne(c, h.notificationService.MarkNotificationRead, "Failed to mark notification read")
}

// delete godoc
// @Summary Delete a notification
// @Tags notifications
// @Produce json
// @Param id path string true "Notification ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /notifications/{id} [delete]
func (h *notificationHandler) delete(c *gin.Context) {
	h.mutateOne(c, h.notificationService.DeleteNotification, "Failed to delete notification")
}

func (h *notificationHandler) mutateOne(c *gin.Context, mutate func(ctx context.Context, notificationID, userID string) error, failMsg string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	notificationID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := mutate(c.Request.Context(), notificationID, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Notification not found"})
			return
		}
		logger.Error(failMsg, slog.String("error", err.Error()))
		respondServerError(c, failMsg, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// markAllRead godoc
// @Summary Mark all notifications as read
// @Tags notifications
// @Produce json
// @Success 204 "No Content"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /notifications/read-all [patch]
func (h *notificationHandler) markAllRead(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.notificationService.MarkAllNotificationsRead(c.Request.Context(), userID); err != nil {
		logger.Error("Failed to mark all notifications read", slog.String("error", err.Error()))
		respondServerError(c, "Failed to mark notifications read", err)
		return
	}

	c.Status(http.StatusNoContent)
}
