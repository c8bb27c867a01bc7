// internals/route/base_routes.go
package route

import (
	"time"

	"github.com/gofiber/fiber/v2"

	database "kampusku_backend/internals/databases"
)

var startedAt = time.Now()

// BaseRoutes: endpoint publik non-domain (health, root).
func BaseRoutes(app *fiber.App) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "success",
			"message": "Kampusku API",
		})
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		dbOK := database.Ping() == nil
		status := fiber.StatusOK
		if !dbOK {
			status = fiber.StatusServiceUnavailable
		}
		return c.Status(status).JSON(fiber.Map{
			"status":         "success",
			"database":       dbOK,
			"redis":          database.RedisHealthy(c.Context()),
			"uptime_seconds": int(time.Since(startedAt).Seconds()),
		})
	})
}
