package handlers

import (
	"log"

	"dapur/internal/middleware"
	"dapur/internal/models"
	"dapur/internal/orders"
	"dapur/internal/repositories"
	"dapur/internal/services"

	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service *services.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service: service,
	}
}

// RegisterRoutes registers the authenticated order routes.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Get("/", h.HandleListOrders)
	orderRoutes.Get("/:id", h.HandleGetOrderByID)
	orderRoutes.Post("/", h.HandleCreateOrder)
	orderRoutes.Post("/:id/pay", h.HandlePayOrder)

	// Review and fulfillment are the operator's alone.
	operatorRoutes := orderRoutes.Group("", middleware.RequireRole(models.RoleOperator))
	operatorRoutes.Patch("/:id/status", h.HandleTransition)
	operatorRoutes.Patch("/:id/items/:index/approval", h.HandleAuditItem)
	operatorRoutes.Post("/:id/payment-link", h.HandlePaymentLinkSent)
}

// RegisterGuestRoutes registers the unauthenticated guest routes:
// order submission and the guest payment step.
func (h *OrderHandler) RegisterGuestRoutes(router fiber.Router) {
	router.Post("/orders/guest", h.HandleCreateGuestOrder)
	router.Post("/orders/guest/:id/pay", h.HandlePayGuestOrder)
}

// CreateOrderRequest is the request body for submitting an order.
type CreateOrderRequest struct {
	Items   []models.CartItem `json:"items"`
	Name    string            `json:"name"`
	Email   string            `json:"email"`
	Phone   string            `json:"phone"`
	Address string            `json:"address"`
}

// HandleListOrders retrieves orders visible to the caller. The operator
// may filter by user and status; customers always see only their own.
func (h *OrderHandler) HandleListOrders(c *fiber.Ctx) error {
	filter := repositories.OrderFilter{
		UserID: c.Query("user_id"),
		Status: models.OrderStatus(c.Query("status")),
	}
	ordersList, err := h.service.ListOrders(actorFromCtx(c), filter)
	if err != nil {
		log.Printf("Error listing orders: %v", err)
		return respondServiceError(c, err, "Could not retrieve orders")
	}
	return c.JSON(ordersList)
}

// HandleGetOrderByID retrieves a single order by its ID.
func (h *OrderHandler) HandleGetOrderByID(c *fiber.Ctx) error {
	orderID := c.Params("id")
	order, err := h.service.GetOrder(actorFromCtx(c), orderID)
	if err != nil {
		log.Printf("Error getting order by ID %s: %v", orderID, err)
		return respondServiceError(c, err, "Could not retrieve order")
	}
	return c.JSON(order)
}

// HandleCreateOrder submits an order for the authenticated user.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	var req CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing request body: %v", err)
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

	order, err := h.service.CreateOrder(req.Items, orders.Identity{
		UserID:  actor.ID,
		Name:    name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		log.Printf("Error creating order: %v", err)
		return respondServiceError(c, err, "Could not create order")
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

// HandleCreateGuestOrder submits an order without an account. The guest
// must leave a name plus a phone number or email for contact.
func (h *OrderHandler) HandleCreateGuestOrder(c *fiber.Ctx) error {
	var req CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing guest order body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	order, err := h.service.CreateOrder(req.Items, orders.Identity{
		Guest:   true,
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		log.Printf("Error creating guest order: %v", err)
		return respondServiceError(c, err, "Could not create order")
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

// TransitionRequest is the request body for a status change. Items is
// only meaningful when approving: it carries the audited item list.
type TransitionRequest struct {
	Status models.OrderStatus `json:"status"`
	Note   string             `json:"note"`
	Items  []models.LineItem  `json:"items"`
}

// HandleTransition drives one status change on an order.
func (h *OrderHandler) HandleTransition(c *fiber.Ctx) error {
	orderID := c.Params("id")
	var req TransitionRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing transition body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if req.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Status is required",
		})
	}

	order, err := h.service.Transition(actorFromCtx(c), orderID, orders.Transition{
		Target:       req.Status,
		Note:         req.Note,
		AuditedItems: req.Items,
	})
	if err != nil {
		log.Printf("Error transitioning order %s to %s: %v", orderID, req.Status, err)
		return respondServiceError(c, err, "Could not update order status")
	}
	return c.JSON(order)
}

// HandlePayOrder lets the order's owner complete the payment step,
// moving an approved order to PAID. Guests pay through the
// unauthenticated guest route instead.
func (h *OrderHandler) HandlePayOrder(c *fiber.Ctx) error {
	orderID := c.Params("id")
	order, err := h.service.Transition(actorFromCtx(c), orderID, orders.Transition{
		Target: models.StatusPaid,
	})
	if err != nil {
		log.Printf("Error paying order %s: %v", orderID, err)
		return respondServiceError(c, err, "Could not complete payment")
	}
	return c.JSON(order)
}

// GuestPayRequest carries the synthesized guest identity returned when
// the order was submitted; it acts as the claim token for the payment
// step.
type GuestPayRequest struct {
	GuestID string `json:"guest_id"`
}

// HandlePayGuestOrder lets a guest complete the payment step without an
// account. The guest id must match the order's owner; the service
// refuses anything else.
func (h *OrderHandler) HandlePayGuestOrder(c *fiber.Ctx) error {
	orderID := c.Params("id")
	var req GuestPayRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing guest payment body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if !orders.IsGuestID(req.GuestID) {
		// Registered accounts pay through their session, never here.
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Insufficient permissions",
		})
	}

	order, err := h.service.Transition(services.Actor{ID: req.GuestID, Role: models.RoleCustomer}, orderID, orders.Transition{
		Target: models.StatusPaid,
	})
	if err != nil {
		log.Printf("Error paying guest order %s: %v", orderID, err)
		return respondServiceError(c, err, "Could not complete payment")
	}
	return c.JSON(order)
}

// HandleAuditItem toggles one line item's approval and returns the
// updated list with its adjusted total, for the review screen. Nothing
// is persisted until the approve transition is submitted.
func (h *OrderHandler) HandleAuditItem(c *fiber.Ctx) error {
	orderID := c.Params("id")
	index, err := c.ParamsInt("index")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Item index must be a number",
		})
	}

	items, total, err := h.service.AuditItem(actorFromCtx(c), orderID, index)
	if err != nil {
		log.Printf("Error auditing item %d of order %s: %v", index, orderID, err)
		return respondServiceError(c, err, "Could not audit item")
	}
	return c.JSON(fiber.Map{
		"items": items,
		"total": total,
	})
}

// HandlePaymentLinkSent flags that a payment link went out for an
// approved order.
func (h *OrderHandler) HandlePaymentLinkSent(c *fiber.Ctx) error {
	orderID := c.Params("id")
	order, err := h.service.MarkPaymentLinkSent(actorFromCtx(c), orderID)
	if err != nil {
		log.Printf("Error flagging payment link for order %s: %v", orderID, err)
		return respondServiceError(c, err, "Could not flag payment link")
	}
	return c.JSON(order)
}
