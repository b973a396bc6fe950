package response

import (
	"github.com/gofiber/fiber/v2"
)

// Envelope is the standardized JSON shape most endpoints return. Product and
// Products are mutually exclusive; the zero fields are omitted so list
// responses carry only {success, products} and errors only {success, message}.
type Envelope struct {
	Success  bool        `json:"success"`
	Message  string      `json:"message,omitempty"`
	Product  interface{} `json:"product,omitempty"`
	Products interface{} `json:"products,omitempty"`
}

// Success sends 200 OK with a message and a single product payload.
func Success(c *fiber.Ctx, message string, product interface{}) error {
	return c.Status(fiber.StatusOK).JSON(Envelope{
		Success: true,
		Message: message,
		Product: product,
	})
}

// Created sends 201 Created with a message and the created product.
func Created(c *fiber.Ctx, message string, product interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(Envelope{
		Success: true,
		Message: message,
		Product: product,
	})
}

// Products sends 200 OK with the product list.
func Products(c *fiber.Ctx, products interface{}) error {
	return c.Status(fiber.StatusOK).JSON(Envelope{
		Success:  true,
		Products: products,
	})
}

// Error sends the standard error envelope with the given status.
func Error(c *fiber.Ctx, message string, statusCode int) error {
	return c.Status(statusCode).JSON(Envelope{
		Success: false,
		Message: message,
	})
}
