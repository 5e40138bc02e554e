package http

import (
	"context"

	"restaurant-directory/internal/directory/domain/model"

	"github.com/gofiber/fiber/v2"
)

// ReviewRepo is the repository surface the review handler consumes.
type ReviewRepo interface {
	Add(ctx context.Context, rev model.Review) (string, error)
	Get(ctx context.Context, userID, restaurantID string) (*model.Review, error)
	Update(ctx context.Context, userID, restaurantID, sentence string, rating int) error
	Delete(ctx context.Context, userID, restaurantID string) error
	List(ctx context.Context) ([]model.Review, error)
	ListForRestaurant(ctx context.Context, restaurantID string) ([]model.Review, error)
}

// ReviewHandler serves the /reviews routes. Reviews are addressed by their
// (user, restaurant) pair rather than a surrogate id.
type ReviewHandler struct {
	repo ReviewRepo
}

func NewReviewHandler(repo ReviewRepo) *ReviewHandler {
	return &ReviewHandler{repo: repo}
}

// RegisterRoutes mounts the review routes on router.
func (h *ReviewHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/reviews", h.List)
	router.Post("/reviews", h.Create)
	router.Get("/reviews/:user_id/:restaurant_id", h.Get)
	router.Put("/reviews/:user_id/:restaurant_id", h.Update)
	router.Delete("/reviews/:user_id/:restaurant_id", h.Delete)
}

// ReviewRequest is the POST and PUT body for reviews.
type ReviewRequest struct {
	UserID       string `json:"user_id"`
	RestaurantID string `json:"restaurant_id"`
	Sentence     string `json:"sentence"`
	Rating       int    `json:"rating"`
}

// List returns all reviews, or the reviews for one restaurant when the
// restaurant_id query parameter is present.
func (h *ReviewHandler) List(c *fiber.Ctx) error {
	var (
		reviews []model.Review
		err     error
	)
	if restaurantID := c.Query("restaurant_id"); restaurantID != "" {
		reviews, err = h.repo.ListForRestaurant(c.UserContext(), restaurantID)
	} else {
		reviews, err = h.repo.List(c.UserContext())
	}
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(reviews)
}

// Get returns the review one user wrote for one restaurant.
func (h *ReviewHandler) Get(c *fiber.Ctx) error {
	rev, err := h.repo.Get(c.UserContext(), c.Params("user_id"), c.Params("restaurant_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rev)
}

// Create adds a review.
func (h *ReviewHandler) Create(c *fiber.Ctx) error {
	var req ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	id, err := h.repo.Add(c.UserContext(), model.Review{
		UserID:       req.UserID,
		RestaurantID: req.RestaurantID,
		Sentence:     req.Sentence,
		Rating:       req.Rating,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{ResponseID: id})
}

// Update replaces the sentence and rating of an existing review.
func (h *ReviewHandler) Update(c *fiber.Ctx) error {
	var req ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	err := h.repo.Update(c.UserContext(), c.Params("user_id"), c.Params("restaurant_id"), req.Sentence, req.Rating)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"status": "Updated"})
}

// Delete removes the review one user wrote for one restaurant.
func (h *ReviewHandler) Delete(c *fiber.Ctx) error {
	err := h.repo.Delete(c.UserContext(), c.Params("user_id"), c.Params("restaurant_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"status": ResponseMsg})
}
