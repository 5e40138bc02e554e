package http

import (
	apperrors "restaurant-directory/internal/shared/errors"

	"github.com/gofiber/fiber/v2"
)

// Response envelope keys, shared by the list endpoints and the menus.
const (
	KeyType   = "Type"
	KeyTitle  = "Title"
	KeyData   = "Data"
	KeyMenu   = "Menu"
	KeyReturn = "Return"

	TypeData    = "Data"
	MainMenuEP  = "/MainMenu"
	MainMenuNm  = "Main Menu"
	UserMenuEP  = "/user_menu"
	UserMenuNm  = "User Menu"
	RestMenuNm  = "Restaurant Menu"
	ResponseID  = "ID"
	ResponseMsg = "Deleted"
)

// respondError maps a repository failure onto its HTTP status. AppErrors
// carry the status themselves; anything else is a 500.
func respondError(c *fiber.Ctx, err error) error {
	return c.Status(apperrors.HTTPStatus(err)).JSON(fiber.Map{
		"error": err.Error(),
	})
}

// envelope wraps list payloads the way the directory API has always served
// them: tagged data plus menu navigation hints.
func envelope(title string, data interface{}, menu string) fiber.Map {
	return fiber.Map{
		KeyType:   TypeData,
		KeyTitle:  title,
		KeyData:   data,
		KeyMenu:   menu,
		KeyReturn: MainMenuEP,
	}
}
