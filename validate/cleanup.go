package validate

import (
	"errors"
	"fmt"

	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
)

type CleanupInput struct {
	Type string `json:"type" validate:"required,oneof=closed old all"`
}

func Cleanup() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input CleanupInput

		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid cleanup type", errors.New("type must be closed, old or all"))
		}

		c.Locals("inputCleanupType", input.Type)

		return c.Next()
	}
}
