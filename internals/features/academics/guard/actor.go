// internals/features/academics/guard/actor.go
package guard

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ActorFromLocals membangun Actor dari locals yang diisi AuthMiddleware.
func ActorFromLocals(c *fiber.Ctx) (Actor, error) {
	raw, _ := c.Locals("user_id").(string)
	if raw == "" {
		return Actor{}, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - missing user id")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return Actor{}, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - invalid user id")
	}
	role, _ := c.Locals("user_role").(string)
	return Actor{ID: id, Role: role}, nil
}
