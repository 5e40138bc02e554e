package http

import (
	"sort"

	"github.com/gofiber/fiber/v2"
)

// ServiceHandler serves the discovery and menu routes that sit alongside the
// entity resources.
type ServiceHandler struct{}

func NewServiceHandler() *ServiceHandler {
	return &ServiceHandler{}
}

// RegisterRoutes mounts the service routes on router.
func (h *ServiceHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/hello", h.Hello)
	router.Get("/endpoints", h.Endpoints)
	router.Get(MainMenuEP, h.MainMenu)
	router.Get(UserMenuEP, h.UserMenu)
}

// Hello answers with "hello world", a trivial liveness probe.
func (h *ServiceHandler) Hello(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"hello": "world"})
}

// Endpoints returns the sorted list of registered routes, serving as live
// documentation of the API surface.
func (h *ServiceHandler) Endpoints(c *fiber.Ctx) error {
	seen := map[string]bool{}
	endpoints := []string{}
	for _, route := range c.App().GetRoutes() {
		key := route.Method + " " + route.Path
		if route.Method == fiber.MethodHead || seen[key] {
			continue
		}
		seen[key] = true
		endpoints = append(endpoints, key)
	}
	sort.Strings(endpoints)
	return c.JSON(fiber.Map{"Available endpoints": endpoints})
}

// MainMenu returns the top-level navigation menu.
func (h *ServiceHandler) MainMenu(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		KeyTitle:  MainMenuNm,
		"Default": "2",
		"Choices": fiber.Map{
			"1": fiber.Map{"url": "/restaurants", "method": "get", "text": "List Restaurants"},
			"2": fiber.Map{"url": "/bars", "method": "get", "text": "List Bars"},
			"3": fiber.Map{"url": "/users", "method": "get", "text": "List Users"},
			"X": fiber.Map{"text": "Exit"},
		},
	})
}

// UserMenu returns the user navigation menu.
func (h *ServiceHandler) UserMenu(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		KeyTitle:  UserMenuNm,
		"Default": "0",
		"Choices": fiber.Map{
			"1": fiber.Map{"url": "/users", "method": "get", "text": "Get User Details"},
			"0": fiber.Map{"text": "Return"},
		},
	})
}
