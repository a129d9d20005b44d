package gateway

import (
	"io"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/minhvt/bookstore-backend/internal/config"
)

// Handler routes gateway traffic to the customer, book and cart services.
// Calls are synchronous pass-throughs: upstream status codes and bodies are
// returned to the client verbatim, and a connection failure maps to 502.
// There are no retries and no compensation across services.
type Handler struct {
	customers *serviceClient
	books     *serviceClient
	carts     *serviceClient
}

func NewHandler(cfg config.Config) *Handler {
	client := &http.Client{Timeout: cfg.UpstreamTimeout}
	return &Handler{
		customers: newServiceClient(cfg.CustomerServiceURL, client),
		books:     newServiceClient(cfg.BookServiceURL, client),
		carts:     newServiceClient(cfg.CartServiceURL, client),
	}
}

func (h *Handler) RegisterRoutes(app *fiber.App) {
	// customer service
	app.Post("/api/v1/sign-up", h.forward(h.customers))
	app.Post("/api/v1/sign-in", h.forward(h.customers))
	app.Get("/api/v1/profile", h.forward(h.customers))
	app.Get("/api/v1/customers", h.forward(h.customers))
	app.Get("/api/v1/customer/:id<[0-9]+>", h.forward(h.customers))

	// book service
	app.Get("/api/v1/books", h.forward(h.books))
	app.Post("/api/v1/books", h.forward(h.books))
	app.Get("/api/v1/book/:id<[0-9]+>", h.forward(h.books))
	app.Put("/api/v1/book/:id<[0-9]+>", h.forward(h.books))
	app.Put("/api/v1/book/:id<[0-9]+>/stock", h.forward(h.books))

	// cart service
	app.Get("/api/v1/cart", h.forward(h.carts))
	app.Delete("/api/v1/cart", h.forward(h.carts))
	app.Post("/api/v1/cart/items", h.forward(h.carts))
	app.Put("/api/v1/cart/item/:id<[0-9]+>", h.forward(h.carts))
	app.Delete("/api/v1/cart/item/:id<[0-9]+>", h.forward(h.carts))
}

func (h *Handler) forward(client *serviceClient) fiber.Handler {
	return func(c *fiber.Ctx) error {
		resp, err := client.do(c)
		if err != nil {
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"message":       "upstream request failed: " + err.Error(),
				"correlationId": CorrelationIDFromCtx(c),
			})
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"message":       "reading upstream response failed: " + err.Error(),
				"correlationId": CorrelationIDFromCtx(c),
			})
		}

		if ct := resp.Header.Get(fiber.HeaderContentType); ct != "" {
			c.Set(fiber.HeaderContentType, ct)
		}
		return c.Status(resp.StatusCode).Send(body)
	}
}
