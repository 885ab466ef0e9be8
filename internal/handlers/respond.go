package handlers

import (
	"errors"

	"dapur/internal/models"
	"dapur/internal/orders"
	"dapur/internal/repositories"
	"dapur/internal/services"

	"github.com/gofiber/fiber/v2"
)

// actorFromCtx rebuilds the acting identity from the claims AuthRequired
// stored on the request context.
func actorFromCtx(c *fiber.Ctx) services.Actor {
	id, _ := c.Locals("user_id").(string)
	role, _ := c.Locals("role").(string)
	return services.Actor{ID: id, Role: models.Role(role)}
}

// respondServiceError maps domain and repository errors onto HTTP
// statuses: validation 400, guard violations 409, capability failures
// 403, missing rows 404, everything else 500.
func respondServiceError(c *fiber.Ctx, err error, message string) error {
	var validationErr *orders.ValidationError
	var transitionErr *orders.InvalidTransitionError

	switch {
	case errors.As(err, &validationErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": message,
			"error":   err.Error(),
		})
	case errors.As(err, &transitionErr):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": message,
			"error":   err.Error(),
		})
	case errors.Is(err, services.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Insufficient permissions",
		})
	case errors.Is(err, repositories.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": message,
			"error":   err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": message,
			"error":   err.Error(),
		})
	}
}
