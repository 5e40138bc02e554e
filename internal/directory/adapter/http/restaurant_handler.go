package http

import (
	"context"

	"restaurant-directory/internal/directory/domain/model"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
)

// RestaurantRepo is the repository surface the restaurant handler consumes.
type RestaurantRepo interface {
	Add(ctx context.Context, rest model.Restaurant) (string, error)
	Get(ctx context.Context, name string) (*model.Restaurant, error)
	UpdateRating(ctx context.Context, name string, rating int) error
	Update(ctx context.Context, name string, updates bson.M) error
	Delete(ctx context.Context, name string) error
	List(ctx context.Context) (map[string]model.Restaurant, error)
	ListByState(ctx context.Context, state string) ([]model.Restaurant, error)
}

// RestaurantHandler serves the /restaurants routes.
type RestaurantHandler struct {
	repo RestaurantRepo
}

func NewRestaurantHandler(repo RestaurantRepo) *RestaurantHandler {
	return &RestaurantHandler{repo: repo}
}

// RegisterRoutes mounts the restaurant routes on router.
func (h *RestaurantHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/restaurants", h.List)
	router.Post("/restaurants", h.Create)
	router.Get("/restaurants/form", h.SearchForm)
	router.Get("/restaurants/search", h.Search)
	router.Get("/restaurants/:name", h.Get)
	router.Put("/restaurants/:name", h.Update)
	router.Delete("/restaurants/:name", h.Delete)
}

// CreateRestaurantRequest is the POST /restaurants body.
type CreateRestaurantRequest struct {
	Name        string `json:"name"`
	Rating      int    `json:"rating"`
	Type        string `json:"type,omitempty"`
	Description string `json:"description,omitempty"`
	Address     string `json:"address,omitempty"`
	City        string `json:"city,omitempty"`
	State       string `json:"state,omitempty"`
	Zip         string `json:"zip,omitempty"`
}

// UpdateRestaurantRequest is the PUT /restaurants/:name body. Only fields
// present in the request are replaced.
type UpdateRestaurantRequest struct {
	Rating      *int    `json:"rating,omitempty"`
	Type        *string `json:"type,omitempty"`
	Description *string `json:"description,omitempty"`
	Address     *string `json:"address,omitempty"`
	City        *string `json:"city,omitempty"`
	State       *string `json:"state,omitempty"`
	Zip         *string `json:"zip,omitempty"`
}

// List returns all restaurants keyed by name.
func (h *RestaurantHandler) List(c *fiber.Ctx) error {
	restaurants, err := h.repo.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(envelope("Current Restaurants", restaurants, RestMenuNm))
}

// Get returns one restaurant by name.
func (h *RestaurantHandler) Get(c *fiber.Ctx) error {
	rest, err := h.repo.Get(c.UserContext(), c.Params("name"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rest)
}

// Create adds a restaurant.
func (h *RestaurantHandler) Create(c *fiber.Ctx) error {
	var req CreateRestaurantRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	id, err := h.repo.Add(c.UserContext(), model.Restaurant{
		Name:        req.Name,
		Rating:      req.Rating,
		Type:        req.Type,
		Description: req.Description,
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
		Zip:         req.Zip,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{ResponseID: id})
}

// Update applies a partial update to a restaurant.
func (h *RestaurantHandler) Update(c *fiber.Ctx) error {
	var req UpdateRestaurantRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	updates := bson.M{}
	if req.Rating != nil {
		updates[model.RestaurantRating] = *req.Rating
	}
	setUpdate(updates, model.RestaurantType, req.Type)
	setUpdate(updates, model.RestaurantDescription, req.Description)
	setUpdate(updates, model.RestaurantAddress, req.Address)
	setUpdate(updates, model.RestaurantCity, req.City)
	setUpdate(updates, model.RestaurantState, req.State)
	setUpdate(updates, model.RestaurantZip, req.Zip)
	if len(updates) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "no fields to update"})
	}
	if err := h.repo.Update(c.UserContext(), c.Params("name"), updates); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{c.Params("name"): "Updated"})
}

// Delete removes a restaurant by name.
func (h *RestaurantHandler) Delete(c *fiber.Ctx) error {
	name := c.Params("name")
	if err := h.repo.Delete(c.UserContext(), name); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{name: ResponseMsg})
}

// Search filters restaurants by the form's query fields.
func (h *RestaurantHandler) Search(c *fiber.Ctx) error {
	state := c.Query("state")
	if state == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "state query parameter is required"})
	}
	restaurants, err := h.repo.ListByState(c.UserContext(), state)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(restaurants)
}

// SearchForm describes the search query form for clients that render it.
func (h *RestaurantHandler) SearchForm(c *fiber.Ctx) error {
	return c.JSON([]fiber.Map{
		{
			"fld_nm":     "state",
			"question":   "Choose State",
			"param_type": "query_string",
		},
	})
}

func setUpdate(updates bson.M, field string, value *string) {
	if value != nil {
		updates[field] = *value
	}
}
