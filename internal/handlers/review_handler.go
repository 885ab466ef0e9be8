package handlers

import (
	"fmt"
	"log"

	"dapur/internal/middleware"
	"dapur/internal/models"
	"dapur/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ReviewHandler handles HTTP requests for reviews and testimonials.
type ReviewHandler struct {
	service  *services.ReviewService
	validate *validator.Validate
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(service *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterPublicRoutes registers the storefront-facing routes.
func (h *ReviewHandler) RegisterPublicRoutes(router fiber.Router) {
	router.Get("/testimonials", h.HandleListTestimonials)
}

// RegisterRoutes registers the authenticated review routes.
func (h *ReviewHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/reviews", h.HandleSubmitReview)

	operatorRoutes := router.Group("", middleware.RequireRole(models.RoleOperator))
	operatorRoutes.Get("/reviews", h.HandleListReviews)
	operatorRoutes.Post("/reviews/:id/publish", h.HandlePublishReview)
}

// HandleSubmitReview stores a review and notifies the operator.
func (h *ReviewHandler) HandleSubmitReview(c *fiber.Ctx) error {
	var review models.Review
	if err := c.BodyParser(&review); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(review); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errorMessages,
		})
	}

	actor := actorFromCtx(c)
	review.UserID = actor.ID
	if err := h.service.Submit(&review); err != nil {
		log.Printf("Error submitting review: %v", err)
		return respondServiceError(c, err, "Could not submit review")
	}
	return c.Status(fiber.StatusCreated).JSON(review)
}

// HandleListReviews returns every review, for the admin console.
func (h *ReviewHandler) HandleListReviews(c *fiber.Ctx) error {
	reviews, err := h.service.GetAllReviews()
	if err != nil {
		log.Printf("Error listing reviews: %v", err)
		return respondServiceError(c, err, "Could not retrieve reviews")
	}
	return c.JSON(reviews)
}

// HandlePublishReview turns a review into a storefront testimonial.
func (h *ReviewHandler) HandlePublishReview(c *fiber.Ctx) error {
	reviewID := c.Params("id")
	testimonial, err := h.service.Publish(reviewID)
	if err != nil {
		log.Printf("Error publishing review %s: %v", reviewID, err)
		return respondServiceError(c, err, "Could not publish review")
	}
	return c.Status(fiber.StatusCreated).JSON(testimonial)
}

// HandleListTestimonials returns the published testimonials.
func (h *ReviewHandler) HandleListTestimonials(c *fiber.Ctx) error {
	testimonials, err := h.service.ListTestimonials()
	if err != nil {
		log.Printf("Error listing testimonials: %v", err)
		return respondServiceError(c, err, "Could not retrieve testimonials")
	}
	return c.JSON(testimonials)
}
