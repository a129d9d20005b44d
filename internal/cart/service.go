package cart

import (
	"github.com/shopspring/decimal"

	"github.com/minhvt/bookstore-backend/internal/book"
)

// Service holds the cart reconciliation logic: merging adds into existing
// lines and rejecting quantities the catalog cannot cover. Stock is only
// ever read here, never decremented.
type Service struct {
	carts Repository
	books book.Repository
}

func NewService(carts Repository, books book.Repository) *Service {
	return &Service{carts: carts, books: books}
}

// AddItem adds quantity copies of a book to the customer's cart, creating
// the cart lazily and merging into an existing line when present. The
// merged quantity must not exceed the book's stock.
func (s *Service) AddItem(customerID, bookID, quantity int) (CartItem, error) {
	if quantity <= 0 {
		return CartItem{}, ErrInvalidQuantity
	}

	b, err := s.books.GetByID(bookID)
	if err != nil {
		return CartItem{}, err
	}

	c, err := s.carts.GetOrCreateCart(customerID)
	if err != nil {
		return CartItem{}, err
	}

	newQuantity := quantity
	if existing, err := s.carts.GetItem(c.ID, bookID); err == nil {
		newQuantity = existing.Quantity + quantity
	} else if err != ErrItemNotFound {
		return CartItem{}, err
	}

	if !b.CanOrder(newQuantity) {
		return CartItem{}, InsufficientStockError{Available: b.Stock}
	}

	return s.carts.SetItemQuantity(c.ID, bookID, newQuantity)
}

// UpdateItem overwrites a line's quantity after the same stock check.
func (s *Service) UpdateItem(itemID, quantity int) (CartItem, error) {
	if quantity <= 0 {
		return CartItem{}, ErrInvalidQuantity
	}

	it, err := s.carts.GetItemByID(itemID)
	if err != nil {
		return CartItem{}, err
	}

	b, err := s.books.GetByID(it.BookID)
	if err != nil {
		return CartItem{}, err
	}

	if !b.CanOrder(quantity) {
		return CartItem{}, InsufficientStockError{Available: b.Stock}
	}

	return s.carts.UpdateItemQuantity(itemID, quantity)
}

// View returns the customer's cart joined with book details and a grand
// total. A customer without a cart gets an empty view, not an error.
func (s *Service) View(customerID int) (View, error) {
	view := View{Items: []Line{}, Total: decimal.New(0, -2)}

	c, err := s.carts.GetCartByCustomer(customerID)
	if err == ErrCartNotFound {
		return view, nil
	}
	if err != nil {
		return View{}, err
	}

	items, err := s.carts.ListItems(c.ID)
	if err != nil {
		return View{}, err
	}

	ids := make([]int, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.BookID)
	}

	books, err := s.books.ListByIDs(ids)
	if err != nil {
		return View{}, err
	}
	byID := make(map[int]book.Book, len(books))
	for _, b := range books {
		byID[b.ID] = b
	}

	for _, it := range items {
		b, ok := byID[it.BookID]
		if !ok {
			// the book was removed from the catalog; skip the orphan line
			continue
		}
		subtotal := b.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
		view.Items = append(view.Items, Line{
			ItemID:   it.ID,
			Book:     b,
			Quantity: it.Quantity,
			Subtotal: subtotal,
		})
		view.Total = view.Total.Add(subtotal)
	}

	return view, nil
}

// RemoveItem deletes one line. Removing an already-removed line succeeds.
func (s *Service) RemoveItem(itemID int) error {
	return s.carts.DeleteItem(itemID)
}

// Clear empties the customer's cart. A customer without a cart is a no-op.
func (s *Service) Clear(customerID int) error {
	c, err := s.carts.GetCartByCustomer(customerID)
	if err == ErrCartNotFound {
		return nil
	}
	if err != nil {
		return err
	}
	return s.carts.ClearCart(c.ID)
}
