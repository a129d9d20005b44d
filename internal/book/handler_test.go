package book

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

func seedBooks() []Book {
	return []Book{
		{ID: 1, Title: "Clean Code", Author: "Robert C. Martin", Price: decimal.RequireFromString("39.99"), Stock: 15},
		{ID: 2, Title: "Refactoring", Author: "Martin Fowler", Price: decimal.RequireFromString("49.99"), Stock: 7},
		{ID: 3, Title: "Domain-Driven Design", Author: "Eric Evans", Price: decimal.RequireFromString("64.99"), Stock: 4},
	}
}

func makeAppWithBookHandler(books []Book) *fiber.App {
	handler := NewHandler(NewService(NewInMemoryRepository(books)))
	app := fiber.New()
	handler.RegisterPublicRoutes(app)
	handler.RegisterProtectedRoutes(app)
	return app
}

func getBooks(t *testing.T, app *fiber.App, path string) []Book {
	t.Helper()
	res, _ := app.Test(httptest.NewRequest("GET", path, nil))
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("GET %s: expected 200, got %d", path, res.StatusCode)
	}
	b, _ := io.ReadAll(res.Body)
	var books []Book
	if err := json.Unmarshal(b, &books); err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return books
}

func TestListBooks(t *testing.T) {
	app := makeAppWithBookHandler(seedBooks())

	books := getBooks(t, app, "/api/v1/books")
	if len(books) != 3 {
		t.Fatalf("expected 3 books, got %d", len(books))
	}
	if books[0].Price.String() != "39.99" {
		t.Fatalf("unexpected price: %s", books[0].Price)
	}
}

func TestListBooks_Search(t *testing.T) {
	app := makeAppWithBookHandler(seedBooks())

	books := getBooks(t, app, "/api/v1/books?q=fowler")
	if len(books) != 1 || books[0].ID != 2 {
		t.Fatalf("unexpected search result: %+v", books)
	}
}

func TestListBooks_BulkKeepsRequestedOrder(t *testing.T) {
	app := makeAppWithBookHandler(seedBooks())

	books := getBooks(t, app, "/api/v1/books?ids=3,1,99")
	if len(books) != 2 {
		t.Fatalf("expected 2 books (unknown ids skipped), got %d", len(books))
	}
	if books[0].ID != 3 || books[1].ID != 1 {
		t.Fatalf("expected order 3,1 got %+v", books)
	}

	res, _ := app.Test(httptest.NewRequest("GET", "/api/v1/books?ids=3,x", nil))
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for malformed ids, got %d", res.StatusCode)
	}
}

func TestGetBook(t *testing.T) {
	app := makeAppWithBookHandler(seedBooks())

	res, _ := app.Test(httptest.NewRequest("GET", "/api/v1/book/2", nil))
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	b, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(b), "Refactoring") {
		t.Fatalf("unexpected body: %s", b)
	}

	res, _ = app.Test(httptest.NewRequest("GET", "/api/v1/book/99", nil))
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", res.StatusCode)
	}
}

func TestCreateBook_Validation(t *testing.T) {
	app := makeAppWithBookHandler(nil)

	req := httptest.NewRequest("POST", "/api/v1/books", strings.NewReader(`{"title":"Clean Architecture","author":"Robert C. Martin","price":"44.99","stock":10}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", res.StatusCode)
	}

	// a negative price never enters the catalog
	req = httptest.NewRequest("POST", "/api/v1/books", strings.NewReader(`{"title":"Bad","author":"Bad","price":"-1.00","stock":1}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ = app.Test(req)
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for negative price, got %d", res.StatusCode)
	}

	req = httptest.NewRequest("POST", "/api/v1/books", strings.NewReader(`{"author":"No Title","price":"1.00","stock":1}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ = app.Test(req)
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for missing title, got %d", res.StatusCode)
	}
}

func TestAdjustStock(t *testing.T) {
	app := makeAppWithBookHandler(seedBooks())

	req := httptest.NewRequest("PUT", "/api/v1/book/2/stock", strings.NewReader(`{"stockChange":-3}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	b, _ := io.ReadAll(res.Body)
	var updated Book
	if err := json.Unmarshal(b, &updated); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if updated.Stock != 4 {
		t.Fatalf("expected stock 4, got %d", updated.Stock)
	}

	// stock clamps at zero instead of going negative
	req = httptest.NewRequest("PUT", "/api/v1/book/2/stock", strings.NewReader(`{"stockChange":-100}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ = app.Test(req)
	b, _ = io.ReadAll(res.Body)
	if err := json.Unmarshal(b, &updated); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if updated.Stock != 0 {
		t.Fatalf("expected stock clamped to 0, got %d", updated.Stock)
	}

	req = httptest.NewRequest("PUT", "/api/v1/book/99/stock", strings.NewReader(`{"stockChange":1}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ = app.Test(req)
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", res.StatusCode)
	}
}
