package book

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrInvalidBook = errors.New("title and author are required and price must not be negative")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() []Book {
	return s.repo.List()
}

func (s *Service) GetByID(id int) (Book, error) {
	return s.repo.GetByID(id)
}

func (s *Service) ListByIDs(ids []int) ([]Book, error) {
	return s.repo.ListByIDs(ids)
}

func (s *Service) Search(query string) []Book {
	return s.repo.Search(query)
}

func (s *Service) Create(b Book) (Book, error) {
	if err := validate(b); err != nil {
		return Book{}, err
	}
	return s.repo.Create(b)
}

func (s *Service) Update(id int, b Book) (Book, error) {
	if err := validate(b); err != nil {
		return Book{}, err
	}
	return s.repo.Update(id, b)
}

// AdjustStock applies a relative stock change, e.g. restocking with a
// positive delta or fulfilment with a negative one. Stock never drops
// below zero.
func (s *Service) AdjustStock(id int, delta int) (Book, error) {
	return s.repo.AdjustStock(id, delta)
}

func validate(b Book) error {
	if b.Title == "" || b.Author == "" || b.Price.LessThan(decimal.Zero) || b.Stock < 0 {
		return ErrInvalidBook
	}
	return nil
}
