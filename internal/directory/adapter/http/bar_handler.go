package http

import (
	"context"

	"restaurant-directory/internal/directory/domain/model"

	"github.com/gofiber/fiber/v2"
)

// BarRepo is the repository surface the bar handler consumes.
type BarRepo interface {
	Add(ctx context.Context, bar model.Bar) (string, error)
	Get(ctx context.Context, name string) (*model.Bar, error)
	UpdateRating(ctx context.Context, name string, rating int) error
	Delete(ctx context.Context, name string) error
	List(ctx context.Context) (map[string]model.Bar, error)
}

// BarHandler serves the /bars routes, the same shape as the minimal
// restaurant surface.
type BarHandler struct {
	repo BarRepo
}

func NewBarHandler(repo BarRepo) *BarHandler {
	return &BarHandler{repo: repo}
}

// RegisterRoutes mounts the bar routes on router.
func (h *BarHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/bars", h.List)
	router.Post("/bars", h.Create)
	router.Get("/bars/:name", h.Get)
	router.Put("/bars/:name", h.UpdateRating)
	router.Delete("/bars/:name", h.Delete)
}

// BarRequest is the POST and PUT body for bars.
type BarRequest struct {
	Name   string `json:"name"`
	Rating int    `json:"rating"`
}

func (h *BarHandler) List(c *fiber.Ctx) error {
	bars, err := h.repo.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(envelope("Current Bars", bars, RestMenuNm))
}

func (h *BarHandler) Get(c *fiber.Ctx) error {
	bar, err := h.repo.Get(c.UserContext(), c.Params("name"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(bar)
}

func (h *BarHandler) Create(c *fiber.Ctx) error {
	var req BarRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	id, err := h.repo.Add(c.UserContext(), model.Bar{Name: req.Name, Rating: req.Rating})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{ResponseID: id})
}

func (h *BarHandler) UpdateRating(c *fiber.Ctx) error {
	var req BarRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := h.repo.UpdateRating(c.UserContext(), c.Params("name"), req.Rating); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{c.Params("name"): "Updated"})
}

func (h *BarHandler) Delete(c *fiber.Ctx) error {
	name := c.Params("name")
	if err := h.repo.Delete(c.UserContext(), name); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{name: ResponseMsg})
}
