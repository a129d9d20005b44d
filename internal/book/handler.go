package book

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes the catalog over HTTP. Reads are public; writes are
// registered behind the JWT middleware.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/books", h.listBooks)
	app.Get("/api/v1/book/:id<[0-9]+>", h.getBook)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/v1/books", h.createBook)
	app.Put("/api/v1/book/:id<[0-9]+>", h.updateBook)
	app.Put("/api/v1/book/:id<[0-9]+>/stock", h.adjustStock)
}

// listBooks serves the whole catalog, a search (?q=) or a bulk lookup
// (?ids=1,2,3) that preserves the requested order.
func (h *Handler) listBooks(c *fiber.Ctx) error {
	if raw := c.Query("ids"); raw != "" {
		ids := make([]int, 0)
		for _, part := range strings.Split(raw, ",") {
			id, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid ids"})
			}
			ids = append(ids, id)
		}
		books, err := h.service.ListByIDs(ids)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
		return c.JSON(books)
	}

	if q := c.Query("q"); q != "" {
		return c.JSON(h.service.Search(q))
	}

	return c.JSON(h.service.List())
}

func (h *Handler) getBook(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}

	b, err := h.service.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "book not found"})
	}

	return c.JSON(b)
}

func (h *Handler) createBook(c *fiber.Ctx) error {
	payload := new(Book)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	created, err := h.service.Create(*payload)
	if err != nil {
		if err == ErrInvalidBook {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) updateBook(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}

	payload := new(Book)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	updated, err := h.service.Update(id, *payload)
	switch err {
	case nil:
		return c.JSON(updated)
	case ErrInvalidBook:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	case ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "book not found"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
}

type stockRequest struct {
	StockChange int `json:"stockChange"`
}

func (h *Handler) adjustStock(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}

	payload := new(stockRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	updated, err := h.service.AdjustStock(id, payload.StockChange)
	if err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "book not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	return c.JSON(updated)
}
