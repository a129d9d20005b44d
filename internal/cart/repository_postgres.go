package cart

import (
	"database/sql"

	"github.com/minhvt/bookstore-backend/internal/book"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	getOrCreateCartQuery = `
		INSERT INTO carts (customer_id)
		VALUES ($1)
		ON CONFLICT (customer_id) DO UPDATE SET customer_id = EXCLUDED.customer_id
		RETURNING id, customer_id, to_char(created_at, 'YYYY-MM-DD"T"HH24:MI:SSOF')
	`
	getCartByCustomerQuery = `
		SELECT id, customer_id, to_char(created_at, 'YYYY-MM-DD"T"HH24:MI:SSOF')
		FROM carts
		WHERE customer_id = $1
	`
	listItemsQuery = `
		SELECT id, cart_id, book_id, quantity
		FROM cart_items
		WHERE cart_id = $1
		ORDER BY id
	`
	getItemQuery = `
		SELECT id, cart_id, book_id, quantity
		FROM cart_items
		WHERE cart_id = $1 AND book_id = $2
	`
	getItemByIDQuery = `
		SELECT id, cart_id, book_id, quantity
		FROM cart_items
		WHERE id = $1
	`

	// The stock subquery makes the write conditional in a single statement:
	// the insert (and therefore the conflict update) only happens while the
	// requested quantity is covered by the book's stock, so two concurrent
	// adds cannot combine into an oversell.
	setItemQuantityQuery = `
		INSERT INTO cart_items (cart_id, book_id, quantity)
		SELECT $1, $2, $3
		WHERE $3 <= (SELECT stock FROM books WHERE id = $2)
		ON CONFLICT (cart_id, book_id) DO UPDATE SET quantity = EXCLUDED.quantity
		RETURNING id, cart_id, book_id, quantity
	`
	updateItemQuantityQuery = `
		UPDATE cart_items ci
		SET quantity = $2
		FROM books b
		WHERE ci.id = $1 AND b.id = ci.book_id AND b.stock >= $2
		RETURNING ci.id, ci.cart_id, ci.book_id, ci.quantity
	`
	bookStockQuery     = `SELECT stock FROM books WHERE id = $1`
	itemStockQuery     = `SELECT b.stock FROM cart_items ci JOIN books b ON b.id = ci.book_id WHERE ci.id = $1`
	deleteItemQuery    = `DELETE FROM cart_items WHERE id = $1`
	clearCartItemsStmt = `DELETE FROM cart_items WHERE cart_id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetOrCreateCart(customerID int) (Cart, error) {
	var c Cart
	err := r.db.QueryRow(getOrCreateCartQuery, customerID).Scan(&c.ID, &c.CustomerID, &c.CreatedAt)
	if err != nil {
		return Cart{}, err
	}
	return c, nil
}

func (r *PostgresRepository) GetCartByCustomer(customerID int) (Cart, error) {
	var c Cart
	err := r.db.QueryRow(getCartByCustomerQuery, customerID).Scan(&c.ID, &c.CustomerID, &c.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return Cart{}, ErrCartNotFound
		}
		return Cart{}, err
	}
	return c, nil
}

func (r *PostgresRepository) ListItems(cartID int) ([]CartItem, error) {
	rows, err := r.db.Query(listItemsQuery, cartID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]CartItem, 0)
	for rows.Next() {
		var it CartItem
		if err := rows.Scan(&it.ID, &it.CartID, &it.BookID, &it.Quantity); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) GetItem(cartID, bookID int) (CartItem, error) {
	var it CartItem
	err := r.db.QueryRow(getItemQuery, cartID, bookID).Scan(&it.ID, &it.CartID, &it.BookID, &it.Quantity)
	if err != nil {
		if err == sql.ErrNoRows {
			return CartItem{}, ErrItemNotFound
		}
		return CartItem{}, err
	}
	return it, nil
}

func (r *PostgresRepository) GetItemByID(itemID int) (CartItem, error) {
	var it CartItem
	err := r.db.QueryRow(getItemByIDQuery, itemID).Scan(&it.ID, &it.CartID, &it.BookID, &it.Quantity)
	if err != nil {
		if err == sql.ErrNoRows {
			return CartItem{}, ErrItemNotFound
		}
		return CartItem{}, err
	}
	return it, nil
}

func (r *PostgresRepository) SetItemQuantity(cartID, bookID, quantity int) (CartItem, error) {
	var it CartItem
	err := r.db.QueryRow(setItemQuantityQuery, cartID, bookID, quantity).
		Scan(&it.ID, &it.CartID, &it.BookID, &it.Quantity)
	if err == nil {
		return it, nil
	}
	if err != sql.ErrNoRows {
		return CartItem{}, err
	}

	// guard rejected the write: report the live stock count
	var stock int
	if err := r.db.QueryRow(bookStockQuery, bookID).Scan(&stock); err != nil {
		if err == sql.ErrNoRows {
			return CartItem{}, book.ErrNotFound
		}
		return CartItem{}, err
	}
	return CartItem{}, InsufficientStockError{Available: stock}
}

func (r *PostgresRepository) UpdateItemQuantity(itemID, quantity int) (CartItem, error) {
	var it CartItem
	err := r.db.QueryRow(updateItemQuantityQuery, itemID, quantity).
		Scan(&it.ID, &it.CartID, &it.BookID, &it.Quantity)
	if err == nil {
		return it, nil
	}
	if err != sql.ErrNoRows {
		return CartItem{}, err
	}

	var stock int
	if err := r.db.QueryRow(itemStockQuery, itemID).Scan(&stock); err != nil {
		if err == sql.ErrNoRows {
			return CartItem{}, ErrItemNotFound
		}
		return CartItem{}, err
	}
	return CartItem{}, InsufficientStockError{Available: stock}
}

func (r *PostgresRepository) DeleteItem(itemID int) error {
	_, err := r.db.Exec(deleteItemQuery, itemID)
	return err
}

func (r *PostgresRepository) ClearCart(cartID int) error {
	_, err := r.db.Exec(clearCartItemsStmt, cartID)
	return err
}
