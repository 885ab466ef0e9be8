package handlers

import (
	"log"

	"dapur/internal/services"

	"github.com/gofiber/fiber/v2"
)

// NotificationHandler handles HTTP requests for the notification feed.
type NotificationHandler struct {
	service *services.NotificationService
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(service *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		service: service,
	}
}

// RegisterRoutes registers the notification routes.
func (h *NotificationHandler) RegisterRoutes(router fiber.Router) {
	notificationRoutes := router.Group("/notifications")
	notificationRoutes.Get("/", h.HandleListNotifications)
	notificationRoutes.Patch("/:id/read", h.HandleMarkRead)
}

// HandleListNotifications returns the caller's notifications, newest
// first.
func (h *NotificationHandler) HandleListNotifications(c *fiber.Ctx) error {
	notifications, err := h.service.List(actorFromCtx(c))
	if err != nil {
		log.Printf("Error listing notifications: %v", err)
		return respondServiceError(c, err, "Could not retrieve notifications")
	}
	return c.JSON(notifications)
}

// HandleMarkRead marks one of the caller's notifications as read.
func (h *NotificationHandler) HandleMarkRead(c *fiber.Ctx) error {
	notificationID := c.Params("id")
	if err := h.service.MarkRead(actorFromCtx(c), notificationID); err != nil {
		log.Printf("Error marking notification %s read: %v", notificationID, err)
		return respondServiceError(c, err, "Could not mark notification read")
	}
	return c.JSON(fiber.Map{
		"message": "Notification marked as read",
	})
}
