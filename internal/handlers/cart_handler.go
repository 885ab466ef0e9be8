package handlers

import (
	"log"

	"dapur/internal/models"
	"dapur/internal/orders"
	"dapur/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for the authenticated user's cart.
type CartHandler struct {
	service *services.CartService
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service *services.CartService) *CartHandler {
	return &CartHandler{
		service: service,
	}
}

// RegisterRoutes registers the cart routes. All of them require a
// session; guests submit orders directly instead.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/cart")
	cartRoutes.Get("/", h.HandleGetCart)
	cartRoutes.Post("/items", h.HandleAddItem)
	cartRoutes.Patch("/items/:productId", h.HandleUpdateQuantity)
	cartRoutes.Delete("/items/:productId", h.HandleRemoveItem)
	cartRoutes.Post("/checkout", h.HandleCheckout)
}

// HandleGetCart returns the caller's cart lines.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	actor := actorFromCtx(c)
	return c.JSON(h.service.Get(actor.ID))
}

// HandleAddItem adds a line to the cart.
func (h *CartHandler) HandleAddItem(c *fiber.Ctx) error {
	var item models.CartItem
	if err := c.BodyParser(&item); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	actor := actorFromCtx(c)
	lines, err := h.service.AddItem(actor.ID, item)
	if err != nil {
		return respondServiceError(c, err, "Could not add item to cart")
	}
	return c.Status(fiber.StatusCreated).JSON(lines)
}

// HandleUpdateQuantity sets a line's quantity; zero removes it.
func (h *CartHandler) HandleUpdateQuantity(c *fiber.Ctx) error {
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	actor := actorFromCtx(c)
	lines, err := h.service.UpdateQuantity(actor.ID, c.Params("productId"), req.Quantity)
	if err != nil {
		return respondServiceError(c, err, "Could not update cart")
	}
	return c.JSON(lines)
}

// HandleRemoveItem drops a line from the cart.
func (h *CartHandler) HandleRemoveItem(c *fiber.Ctx) error {
	actor := actorFromCtx(c)
	return c.JSON(h.service.RemoveItem(actor.ID, c.Params("productId")))
}

// CheckoutRequest carries the contact snapshot for the order.
type CheckoutRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// HandleCheckout submits the cart as an order.
func (h *CartHandler) HandleCheckout(c *fiber.Ctx) error {
	var req CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	actor := actorFromCtx(c)
	name := req.Name
	if name == "" {
		name, _ = c.Locals("username").(string)
	}

	order, err := h.service.Checkout(actor.ID, orders.Identity{
		UserID:  actor.ID,
		Name:    name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		log.Printf("Error checking out cart for user %s: %v", actor.ID, err)
		return respondServiceError(c, err, "Could not submit order")
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}
