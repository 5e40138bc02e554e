package http

import (
	"context"

	"restaurant-directory/internal/directory/domain/model"

	"github.com/gofiber/fiber/v2"
)

// AccountRepo is the repository surface the account handler consumes.
type AccountRepo interface {
	Add(ctx context.Context, sentence string) (string, error)
	Get(ctx context.Context, id string) (*model.Account, error)
	UpdateSentence(ctx context.Context, id, sentence string) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]model.Account, error)
}

// AccountHandler serves the /accounts routes.
type AccountHandler struct {
	repo AccountRepo
}

func NewAccountHandler(repo AccountRepo) *AccountHandler {
	return &AccountHandler{repo: repo}
}

// RegisterRoutes mounts the account routes on router.
func (h *AccountHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/accounts", h.List)
	router.Post("/accounts", h.Create)
	router.Get("/accounts/:id", h.Get)
	router.Put("/accounts/:id", h.Update)
	router.Delete("/accounts/:id", h.Delete)
}

// AccountRequest is the POST and PUT body for accounts.
type AccountRequest struct {
	Sentence string `json:"sentence"`
}

func (h *AccountHandler) List(c *fiber.Ctx) error {
	accounts, err := h.repo.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(accounts)
}

func (h *AccountHandler) Get(c *fiber.Ctx) error {
	acct, err := h.repo.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(acct)
}

func (h *AccountHandler) Create(c *fiber.Ctx) error {
	var req AccountRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	id, err := h.repo.Add(c.UserContext(), req.Sentence)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{ResponseID: id})
}

func (h *AccountHandler) Update(c *fiber.Ctx) error {
	var req AccountRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := h.repo.UpdateSentence(c.UserContext(), c.Params("id"), req.Sentence); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{c.Params("id"): "Updated"})
}

func (h *AccountHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.repo.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{id: ResponseMsg})
}
