package book

import (
	"database/sql"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	listBooksQuery = `
		SELECT id, title, author, price, stock
		FROM books
		ORDER BY id
	`
	getBookByIDQuery = `
		SELECT id, title, author, price, stock
		FROM books
		WHERE id = $1
	`
	listBooksByIDsQuery = `
		SELECT id, title, author, price, stock
		FROM books
		WHERE id = ANY($1::int[])
		ORDER BY array_position($1::int[], id)
	`
	searchBooksQuery = `
		SELECT id, title, author, price, stock
		FROM books
		WHERE title ILIKE '%' || $1 || '%' OR author ILIKE '%' || $1 || '%'
		ORDER BY id
	`
	insertBookQuery = `
		INSERT INTO books (title, author, price, stock)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	updateBookQuery = `
		UPDATE books
		SET title = $1, author = $2, price = $3, stock = $4
		WHERE id = $5
		RETURNING id, title, author, price, stock
	`
	adjustStockQuery = `
		UPDATE books
		SET stock = GREATEST(stock + $2, 0)
		WHERE id = $1
		RETURNING id, title, author, price, stock
	`
	upsertBookQuery = `
		INSERT INTO books (title, author, price, stock)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (title, author) DO UPDATE SET price = EXCLUDED.price, stock = EXCLUDED.stock
		RETURNING id, (xmax = 0) AS inserted
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBook(row rowScanner) (Book, error) {
	var b Book
	if err := row.Scan(&b.ID, &b.Title, &b.Author, &b.Price, &b.Stock); err != nil {
		return Book{}, err
	}
	return b, nil
}

func collectBooks(rows *sql.Rows) []Book {
	defer rows.Close()

	books := make([]Book, 0)
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			continue
		}
		books = append(books, b)
	}
	return books
}

func (r *PostgresRepository) List() []Book {
	rows, err := r.db.Query(listBooksQuery)
	if err != nil {
		return []Book{}
	}
	return collectBooks(rows)
}

func (r *PostgresRepository) GetByID(id int) (Book, error) {
	b, err := scanBook(r.db.QueryRow(getBookByIDQuery, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return Book{}, ErrNotFound
		}
		return Book{}, err
	}
	return b, nil
}

func (r *PostgresRepository) ListByIDs(ids []int) ([]Book, error) {
	if len(ids) == 0 {
		return []Book{}, nil
	}

	rows, err := r.db.Query(listBooksByIDsQuery, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	return collectBooks(rows), nil
}

func (r *PostgresRepository) Search(query string) []Book {
	rows, err := r.db.Query(searchBooksQuery, query)
	if err != nil {
		return []Book{}
	}
	return collectBooks(rows)
}

func (r *PostgresRepository) Create(b Book) (Book, error) {
	if err := r.db.QueryRow(insertBookQuery, b.Title, b.Author, b.Price, b.Stock).Scan(&b.ID); err != nil {
		return Book{}, err
	}
	return b, nil
}

func (r *PostgresRepository) Update(id int, b Book) (Book, error) {
	updated, err := scanBook(r.db.QueryRow(updateBookQuery, b.Title, b.Author, b.Price, b.Stock, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return Book{}, ErrNotFound
		}
		return Book{}, err
	}
	return updated, nil
}

func (r *PostgresRepository) AdjustStock(id int, delta int) (Book, error) {
	updated, err := scanBook(r.db.QueryRow(adjustStockQuery, id, delta))
	if err != nil {
		if err == sql.ErrNoRows {
			return Book{}, ErrNotFound
		}
		return Book{}, err
	}
	return updated, nil
}

func (r *PostgresRepository) Upsert(b Book) (Book, bool, error) {
	var created bool
	err := r.db.QueryRow(upsertBookQuery, b.Title, b.Author, b.Price, b.Stock).Scan(&b.ID, &created)
	if err != nil {
		return Book{}, false, err
	}
	return b, created, nil
}
