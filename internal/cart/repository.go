package cart

import (
	"sync"

	"github.com/minhvt/bookstore-backend/internal/book"
)

// Repository provides access to cart storage. Writes that change a line
// quantity are stock-guarded: they only succeed while the new quantity is
// covered by the referenced book's current stock, so concurrent adds can
// never oversell.
type Repository interface {
	GetOrCreateCart(customerID int) (Cart, error)
	GetCartByCustomer(customerID int) (Cart, error)
	ListItems(cartID int) ([]CartItem, error)
	GetItem(cartID, bookID int) (CartItem, error)
	GetItemByID(itemID int) (CartItem, error)
	// SetItemQuantity writes the absolute quantity for (cartID, bookID),
	// inserting the line if missing. Returns InsufficientStockError when
	// the quantity exceeds the book's stock at write time.
	SetItemQuantity(cartID, bookID, quantity int) (CartItem, error)
	// UpdateItemQuantity overwrites an existing line's quantity under the
	// same stock guard.
	UpdateItemQuantity(itemID, quantity int) (CartItem, error)
	// DeleteItem removes a line; deleting a missing line is not an error.
	DeleteItem(itemID int) error
	// ClearCart removes every line of a cart.
	ClearCart(cartID int) error
}

// InMemoryRepository is used for tests and local scenarios. It consults a
// book repository for the stock guards, mirroring what the Postgres
// implementation does inside its conditional statements.
type InMemoryRepository struct {
	mu       sync.Mutex
	books    book.Repository
	carts    []Cart
	items    []CartItem
	nextCart int
	nextItem int
}

func NewInMemoryRepository(books book.Repository) *InMemoryRepository {
	return &InMemoryRepository{books: books, nextCart: 1, nextItem: 1}
}

func (r *InMemoryRepository) GetOrCreateCart(customerID int) (Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.carts {
		if c.CustomerID == customerID {
			return c, nil
		}
	}

	c := Cart{ID: r.nextCart, CustomerID: customerID}
	r.nextCart++
	r.carts = append(r.carts, c)
	return c, nil
}

func (r *InMemoryRepository) GetCartByCustomer(customerID int) (Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.carts {
		if c.CustomerID == customerID {
			return c, nil
		}
	}
	return Cart{}, ErrCartNotFound
}

func (r *InMemoryRepository) ListItems(cartID int) ([]CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]CartItem, 0)
	for _, it := range r.items {
		if it.CartID == cartID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) GetItem(cartID, bookID int) (CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, it := range r.items {
		if it.CartID == cartID && it.BookID == bookID {
			return it, nil
		}
	}
	return CartItem{}, ErrItemNotFound
}

func (r *InMemoryRepository) GetItemByID(itemID int) (CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, it := range r.items {
		if it.ID == itemID {
			return it, nil
		}
	}
	return CartItem{}, ErrItemNotFound
}

func (r *InMemoryRepository) SetItemQuantity(cartID, bookID, quantity int) (CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.guardStock(bookID, quantity); err != nil {
		return CartItem{}, err
	}

	for i, it := range r.items {
		if it.CartID == cartID && it.BookID == bookID {
			r.items[i].Quantity = quantity
			return r.items[i], nil
		}
	}

	it := CartItem{ID: r.nextItem, CartID: cartID, BookID: bookID, Quantity: quantity}
	r.nextItem++
	r.items = append(r.items, it)
	return it, nil
}

func (r *InMemoryRepository) UpdateItemQuantity(itemID, quantity int) (CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, it := range r.items {
		if it.ID == itemID {
			if err := r.guardStock(it.BookID, quantity); err != nil {
				return CartItem{}, err
			}
			r.items[i].Quantity = quantity
			return r.items[i], nil
		}
	}
	return CartItem{}, ErrItemNotFound
}

func (r *InMemoryRepository) DeleteItem(itemID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, it := range r.items {
		if it.ID == itemID {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *InMemoryRepository) ClearCart(cartID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.items[:0]
	for _, it := range r.items {
		if it.CartID != cartID {
			kept = append(kept, it)
		}
	}
	r.items = kept
	return nil
}

func (r *InMemoryRepository) guardStock(bookID, quantity int) error {
	b, err := r.books.GetByID(bookID)
	if err != nil {
		return err
	}
	if !b.CanOrder(quantity) {
		return InsufficientStockError{Available: b.Stock}
	}
	return nil
}
