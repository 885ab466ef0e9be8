package services

import (
	"fmt"
	"log"
	"time"

	"dapur/internal/models"
	"dapur/internal/notify"
	"dapur/internal/orders"
	"dapur/internal/repositories"
	"dapur/pkg/rabbitmq"

	"github.com/shopspring/decimal"
)

// OrderService handles the order lifecycle: creation from a cart,
// per-item auditing, and guarded status transitions with their
// notification side-effects.
type OrderService struct {
	orderRepo        repositories.OrderRepository
	productRepo      repositories.ProductRepository
	notificationRepo repositories.NotificationRepository
	publisher        EventPublisher
	operatorID       string
}

// NewOrderService creates a new OrderService. operatorID is the account
// that receives order-request notifications.
func NewOrderService(
	orderRepo repositories.OrderRepository,
	productRepo repositories.ProductRepository,
	notificationRepo repositories.NotificationRepository,
	publisher EventPublisher,
	operatorID string,
) *OrderService {
	return &OrderService{
		orderRepo:        orderRepo,
		productRepo:      productRepo,
		notificationRepo: notificationRepo,
		publisher:        publisher,
		operatorID:       operatorID,
	}
}

// CreateOrder builds a PENDING order from cart lines, snapshotting
// name/price/category from the catalog, persists it and notifies the
// operator. Guests get a synthesized user id and must leave a phone
// number or email so the kitchen can reach them.
func (s *OrderService) CreateOrder(cart []models.CartItem, identity orders.Identity) (*models.Order, error) {
	if len(cart) == 0 {
		return nil, &orders.ValidationError{Reason: "cart is empty"}
	}

	items := make([]models.LineItem, 0, len(cart))
	for _, line := range cart {
		product, err := s.productRepo.GetByID(line.ProductID)
		if err != nil {
			return nil, fmt.Errorf("product %s: %w", line.ProductID, err)
		}
		if product.StockStatus == models.StockSoldOut {
			return nil, &orders.ValidationError{Reason: fmt.Sprintf("product %s is sold out", product.Name)}
		}
		items = append(items, models.LineItem{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price, // Price at the time of order creation
			Quantity:  line.Quantity,
			Category:  product.Category,
		})
	}

	order, err := orders.NewOrder(items, identity, time.Now())
	if err != nil {
		return nil, err
	}
	if orders.IsGuestID(order.UserID) && order.CustomerPhone == "" && order.CustomerEmail == "" {
		return nil, &orders.ValidationError{Reason: "guest orders need a phone number or an email"}
	}

	if err := s.orderRepo.Create(order); err != nil {
		return nil, fmt.Errorf("failed to create order in repository: %w", err)
	}

	// Creation-time notification goes to the operator, not the owner.
	s.saveNotification(notify.ForOrderCreated(*order, s.operatorID))
	s.publishOrder(rabbitmq.KindOrderCreated, *order)

	return order, nil
}

// GetOrder retrieves a single order. Customers and guests only see
// their own; the operator sees everything.
func (s *OrderService) GetOrder(actor Actor, id string) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !actor.Operator() && order.UserID != actor.ID {
		return nil, ErrForbidden
	}
	return order, nil
}

// ListOrders retrieves orders visible to the actor. Non-operators are
// always scoped to their own orders regardless of the filter.
func (s *OrderService) ListOrders(actor Actor, filter repositories.OrderFilter) ([]models.Order, error) {
	if !actor.Operator() {
		filter.UserID = actor.ID
	}
	return s.orderRepo.List(filter)
}

// AuditItem flips one line item's approval mark and returns the updated
// item list with its adjusted total for display. Nothing is persisted;
// the audited list becomes permanent only when submitted with an
// approve transition.
func (s *OrderService) AuditItem(actor Actor, orderID string, index int) ([]models.LineItem, decimal.Decimal, error) {
	if !actor.Operator() {
		return nil, decimal.Zero, ErrForbidden
	}
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, decimal.Zero, err
	}
	items, err := orders.ToggleItemApproval(order, index)
	if err != nil {
		return nil, decimal.Zero, err
	}
	return items, orders.AdjustedTotal(items), nil
}

// Transition drives one status change. The guard runs before any I/O;
// the status write and the notification are one logical operation, so a
// failed persist sends nothing and leaves no in-memory mutation. The
// notification itself is exactly one per successful transition,
// addressed to the order's owner.
func (s *OrderService) Transition(actor Actor, orderID string, tr orders.Transition) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}

	// Capability check at the transition boundary: review and
	// fulfillment belong to the operator, payment to the order's owner.
	if orders.OperatorOnly(tr.Target) {
		if !actor.Operator() {
			return nil, ErrForbidden
		}
	} else if !actor.Operator() && actor.ID != order.UserID {
		return nil, ErrForbidden
	}

	updated, err := orders.Apply(*order, tr, time.Now())
	if err != nil {
		return nil, err
	}

	if err := s.orderRepo.Update(&updated); err != nil {
		return nil, fmt.Errorf("failed to persist transition for order %s: %w", orderID, err)
	}

	message, err := notify.ForTransition(updated)
	if err != nil {
		log.Printf("No notification for order %s: %v", updated.ID, err)
	} else {
		s.saveNotification(message)
	}
	s.publishOrder(rabbitmq.KindOrderUpdated, updated)

	return &updated, nil
}

// MarkPaymentLinkSent flags that the operator sent the customer a
// payment link. Only meaningful while the order awaits payment.
func (s *OrderService) MarkPaymentLinkSent(actor Actor, orderID string) (*models.Order, error) {
	if !actor.Operator() {
		return nil, ErrForbidden
	}
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != models.StatusApproved {
		return nil, &orders.ValidationError{Reason: "payment link can only be sent for an approved order"}
	}

	updated := *order
	updated.PaymentLinkSent = true
	updated.UpdatedAt = time.Now()
	if err := s.orderRepo.Update(&updated); err != nil {
		return nil, fmt.Errorf("failed to flag payment link for order %s: %w", orderID, err)
	}
	s.publishOrder(rabbitmq.KindOrderUpdated, updated)
	return &updated, nil
}

// saveNotification persists a dispatcher message and publishes it to
// the notification queue. Failures here are logged, never fatal: the
// order write already succeeded and must not be rolled back over a
// side channel.
func (s *OrderService) saveNotification(message notify.Message) {
	notification := &models.Notification{
		UserID:  message.UserID,
		Title:   message.Title,
		Message: message.Message,
		Type:    message.Type,
	}
	if err := s.notificationRepo.Create(notification); err != nil {
		log.Printf("Warning: failed to save notification for user %s: %v", message.UserID, err)
		return
	}
	if s.publisher != nil {
		if err := s.publisher.PublishNotificationEvent(*notification); err != nil {
			log.Printf("Warning: failed to publish notification event: %v", err)
		}
	}
}

func (s *OrderService) publishOrder(kind string, order models.Order) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishOrderEvent(kind, order); err != nil {
		log.Printf("Warning: failed to publish %s event for order %s: %v", kind, order.ID, err)
	}
}
