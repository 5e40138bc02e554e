package http

import (
	"context"

	"restaurant-directory/internal/directory/domain/model"

	"github.com/gofiber/fiber/v2"
)

// UserRepo is the repository surface the user handler consumes.
type UserRepo interface {
	Add(ctx context.Context, user model.User, password string) (string, error)
	Get(ctx context.Context, id string) (*model.User, error)
	UpdateName(ctx context.Context, id, name string) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]model.User, error)
}

// UserHandler serves the /users routes.
type UserHandler struct {
	repo UserRepo
}

func NewUserHandler(repo UserRepo) *UserHandler {
	return &UserHandler{repo: repo}
}

// RegisterRoutes mounts the user routes on router.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/users", h.List)
	router.Post("/users", h.Create)
	router.Get("/users/:id", h.Get)
	router.Put("/users/:id", h.UpdateName)
	router.Delete("/users/:id", h.Delete)
}

// CreateUserRequest is the POST /users body.
type CreateUserRequest struct {
	Name      string `json:"name"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email,omitempty"`
	Password  string `json:"password,omitempty"`
}

// UpdateUserRequest is the PUT /users/:id body.
type UpdateUserRequest struct {
	Name string `json:"name"`
}

// List returns all users.
func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.repo.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(envelope("Current Users", users, UserMenuNm))
}

// Get returns one user by identifier.
func (h *UserHandler) Get(c *fiber.Ctx) error {
	user, err := h.repo.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// Create adds a user and returns the generated identifier.
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var req CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	id, err := h.repo.Add(c.UserContext(), model.User{
		Name:      req.Name,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	}, req.Password)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{model.UserID: id})
}

// UpdateName replaces the username of an existing user.
func (h *UserHandler) UpdateName(c *fiber.Ctx) error {
	var req UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := h.repo.UpdateName(c.UserContext(), c.Params("id"), req.Name); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{c.Params("id"): "Updated"})
}

// Delete removes a user by identifier.
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.repo.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{id: ResponseMsg})
}
