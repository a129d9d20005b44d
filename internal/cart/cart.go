package cart

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/minhvt/bookstore-backend/internal/book"
)

var (
	ErrCartNotFound    = errors.New("cart not found")
	ErrItemNotFound    = errors.New("cart item not found")
	ErrInvalidQuantity = errors.New("quantity must be greater than 0")
)

// InsufficientStockError reports a rejected write along with how many
// copies are actually available.
type InsufficientStockError struct {
	Available int
}

func (e InsufficientStockError) Error() string {
	return fmt.Sprintf("only %d items available", e.Available)
}

// Cart is a customer's single active cart. It is created lazily on the
// first add and never explicitly deleted.
type Cart struct {
	ID         int    `json:"cartId"`
	CustomerID int    `json:"customerId"`
	CreatedAt  string `json:"createdAt,omitempty"`
}

// CartItem is one (book, quantity) line within a cart. A cart holds at
// most one line per book; repeated adds merge quantities.
type CartItem struct {
	ID       int `json:"id"`
	CartID   int `json:"cartId"`
	BookID   int `json:"bookId"`
	Quantity int `json:"quantity"`
}

// Line is a cart item joined with its book for presentation.
type Line struct {
	ItemID   int             `json:"itemId"`
	Book     book.Book       `json:"book"`
	Quantity int             `json:"quantity"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// View is the customer-facing cart: ordered lines plus a grand total.
type View struct {
	Items []Line          `json:"items"`
	Total decimal.Decimal `json:"total"`
}
