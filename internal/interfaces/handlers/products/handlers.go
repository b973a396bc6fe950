package products

import (
	"errors"
	"mime/multipart"

	prodsvc "marketplace-backend/internal/application/products"
	"marketplace-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const invalidIDMessage = "Invalid product ID format"

type Handlers struct {
	Service *prodsvc.Service
}

// POST /api/products/add — multipart form with optional photo file.
// 201 {success, message, product} or 500 {success:false, message}.
func (h *Handlers) CreateProduct(c *fiber.Ctx) error {
	product, err := h.Service.Create(c.Context(), prodsvc.CreateProductInput{
		Name:        c.FormValue("name"),
		Price:       c.FormValue("price"),
		Description: c.FormValue("description"),
		Contact:     c.FormValue("contact"),
		Photo:       photoFile(c),
	})
	if err != nil {
		code, msg := statusForError(err, "")
		return response.Error(c, msg, code)
	}
	return response.Created(c, "Product added!", product)
}

// GET /api/products — 200 {success, products}.
func (h *Handlers) GetAllProducts(c *fiber.Ctx) error {
	list, err := h.Service.GetAll(c.Context())
	if err != nil {
		code, msg := statusForError(err, "Error fetching products")
		return response.Error(c, msg, code)
	}
	return response.Products(c, list)
}

// GET /api/products/recommended?id=<id> — 200 bare array of products other
// than the given one. The bare shape (no envelope) is what the browser
// client consumes.
func (h *Handlers) GetRecommended(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Query("id"))
	if err != nil {
		return response.Error(c, invalidIDMessage, fiber.StatusBadRequest)
	}
	list, err := h.Service.Recommended(c.Context(), id)
	if err != nil {
		code, msg := statusForError(err, "Server Error")
		return response.Error(c, msg, code)
	}
	return c.JSON(list)
}

// GET /api/products/:id — 200 bare product object (historical shape, no
// success wrapper) or 400/404/500 envelope.
func (h *Handlers) GetProductByID(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return response.Error(c, invalidIDMessage, fiber.StatusBadRequest)
	}
	product, err := h.Service.GetByID(c.Context(), id)
	if err != nil {
		code, msg := statusForError(err, "Server Error")
		return response.Error(c, msg, code)
	}
	return c.JSON(product)
}

// PUT /api/products/update/:id — multipart form, any subset of fields plus
// an optional replacement photo. 200 {success, message, product}.
func (h *Handlers) UpdateProduct(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return response.Error(c, invalidIDMessage, fiber.StatusBadRequest)
	}

	form, err := c.MultipartForm()
	if err != nil {
		return response.Error(c, "Invalid form data", fiber.StatusBadRequest)
	}

	product, err := h.Service.Update(c.Context(), id, prodsvc.UpdateProductInput{
		Name:        formValue(form, "name"),
		Price:       formValue(form, "price"),
		Description: formValue(form, "description"),
		Contact:     formValue(form, "contact"),
		Photo:       photoFile(c),
	})
	if err != nil {
		code, msg := statusForError(err, "")
		return response.Error(c, msg, code)
	}
	return response.Success(c, "Product updated!", product)
}

// DELETE /api/products/delete/:id — 200 {success, message, product} with the
// removed record as confirmation.
func (h *Handlers) DeleteProduct(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return response.Error(c, invalidIDMessage, fiber.StatusBadRequest)
	}
	product, err := h.Service.Delete(c.Context(), id)
	if err != nil {
		code, msg := statusForError(err, "")
		return response.Error(c, msg, code)
	}
	return response.Success(c, "Product deleted successfully", product)
}

// statusForError is the single error-kind-to-status table. Malformed ids are
// rejected at the parse site above, before any service call. Validation
// failures intentionally fall through to 500, matching the wire behavior
// existing clients see. serverMessage overrides the 500 body when set;
// otherwise the error text is passed through.
func statusForError(err error, serverMessage string) (int, string) {
	if errors.Is(err, prodsvc.ErrNotFound) {
		return fiber.StatusNotFound, "Product not found"
	}
	if serverMessage == "" {
		serverMessage = err.Error()
	}
	return fiber.StatusInternalServerError, serverMessage
}

// photoFile returns the uploaded photo header, or nil when none was sent.
func photoFile(c *fiber.Ctx) *multipart.FileHeader {
	fh, err := c.FormFile("photo")
	if err != nil {
		return nil
	}
	return fh
}

// formValue distinguishes an absent field (nil) from an empty one.
func formValue(form *multipart.Form, key string) *string {
	vals, ok := form.Value[key]
	if !ok || len(vals) == 0 {
		return nil
	}
	return &vals[0]
}
