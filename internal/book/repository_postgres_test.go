package book

import (
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

func newMockRepo(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return NewPostgresRepository(conn), mock
}

func bookRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "title", "author", "price", "stock"})
}

func TestPostgresGetByID(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(getBookByIDQuery)).
		WithArgs(1).
		WillReturnRows(bookRows().AddRow(1, "Clean Code", "Robert C. Martin", "39.99", 15))

	b, err := repo.GetByID(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Title != "Clean Code" || b.Price.String() != "39.99" || b.Stock != 15 {
		t.Fatalf("unexpected book: %+v", b)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestPostgresGetByID_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(getBookByIDQuery)).
		WithArgs(99).
		WillReturnError(sql.ErrNoRows)

	if _, err := repo.GetByID(99); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestPostgresListByIDs(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(listBooksByIDsQuery)).
		WithArgs(pq.Array([]int{2, 1})).
		WillReturnRows(bookRows().
			AddRow(2, "Refactoring", "Martin Fowler", "49.99", 7).
			AddRow(1, "Clean Code", "Robert C. Martin", "39.99", 15))

	books, err := repo.ListByIDs([]int{2, 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(books) != 2 || books[0].ID != 2 || books[1].ID != 1 {
		t.Fatalf("unexpected books: %+v", books)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestPostgresListByIDs_EmptySkipsQuery(t *testing.T) {
	repo, mock := newMockRepo(t)

	books, err := repo.ListByIDs(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(books) != 0 {
		t.Fatalf("expected no books, got %+v", books)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestPostgresUpsert(t *testing.T) {
	repo, mock := newMockRepo(t)

	b := Book{Title: "Clean Code", Author: "Robert C. Martin", Price: decimal.RequireFromString("39.99"), Stock: 15}

	mock.ExpectQuery(regexp.QuoteMeta(upsertBookQuery)).
		WithArgs(b.Title, b.Author, b.Price, b.Stock).
		WillReturnRows(sqlmock.NewRows([]string{"id", "inserted"}).AddRow(1, true))

	got, created, err := repo.Upsert(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created || got.ID != 1 {
		t.Fatalf("expected a fresh insert with id 1, got created=%v id=%d", created, got.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
