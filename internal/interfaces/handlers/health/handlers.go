package health

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Handlers exposes the API banner and a database connectivity probe.
// Client is nil when the database was unreachable at startup.
type Handlers struct {
	Client *mongo.Client
	DBName string
}

// GET /api
func (h *Handlers) Root(c *fiber.Ctx) error {
	return c.SendString("API is running...")
}

// GET /api/test-db — reports connectivity by listing collection names.
// Always 200; the success flag carries the outcome.
func (h *Handlers) TestDB(c *fiber.Ctx) error {
	if h.Client == nil {
		return c.JSON(fiber.Map{"success": false, "message": "MongoDB NOT Connected"})
	}
	collections, err := h.Client.Database(h.DBName).ListCollectionNames(c.Context(), bson.M{})
	if err != nil {
		return c.JSON(fiber.Map{"success": false, "message": "MongoDB NOT Connected"})
	}
	return c.JSON(fiber.Map{
		"success":     true,
		"message":     "MongoDB Connected",
		"collections": collections,
	})
}
