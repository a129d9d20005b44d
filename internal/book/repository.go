package book

import (
	"errors"
	"strings"
	"sync"
)

var ErrNotFound = errors.New("book not found")

type Repository interface {
	List() []Book
	GetByID(id int) (Book, error)
	// ListByIDs returns the books matching ids, in the order of ids.
	// Unknown ids are skipped.
	ListByIDs(ids []int) ([]Book, error)
	Search(query string) []Book
	Create(b Book) (Book, error)
	Update(id int, b Book) (Book, error)
	// AdjustStock applies a delta to the stock count, clamping at zero.
	AdjustStock(id int, delta int) (Book, error)
	// Upsert inserts the book or, if (title, author) already exists,
	// refreshes its price and stock. Used by the seed command.
	Upsert(b Book) (Book, bool, error)
}

// InMemoryRepository is a simple in-memory implementation useful for tests
// and seeding local data.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Book
	nextID  int
}

func NewInMemoryRepository(seed []Book) *InMemoryRepository {
	r := &InMemoryRepository{
		storage: make([]Book, 0, len(seed)),
		nextID:  1,
	}

	maxID := 0
	for _, b := range seed {
		if b.ID == 0 {
			b.ID = len(r.storage) + 1
		}
		r.storage = append(r.storage, b)
		if b.ID > maxID {
			maxID = b.ID
		}
	}

	r.nextID = maxID + 1
	return r
}

func (r *InMemoryRepository) List() []Book {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Book, len(r.storage))
	copy(out, r.storage)
	return out
}

func (r *InMemoryRepository) GetByID(id int) (Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, b := range r.storage {
		if b.ID == id {
			return b, nil
		}
	}
	return Book{}, ErrNotFound
}

func (r *InMemoryRepository) ListByIDs(ids []int) ([]Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Book, 0, len(ids))
	for _, id := range ids {
		for _, b := range r.storage {
			if b.ID == id {
				out = append(out, b)
				break
			}
		}
	}
	return out, nil
}

func (r *InMemoryRepository) Search(query string) []Book {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q := strings.ToLower(query)
	out := make([]Book, 0)
	for _, b := range r.storage {
		if strings.Contains(strings.ToLower(b.Title), q) || strings.Contains(strings.ToLower(b.Author), q) {
			out = append(out, b)
		}
	}
	return out
}

func (r *InMemoryRepository) Create(b Book) (Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if b.ID == 0 {
		b.ID = r.nextID
		r.nextID++
	}
	r.storage = append(r.storage, b)
	return b, nil
}

func (r *InMemoryRepository) Update(id int, b Book) (Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.storage {
		if r.storage[i].ID == id {
			b.ID = id
			r.storage[i] = b
			return b, nil
		}
	}
	return Book{}, ErrNotFound
}

func (r *InMemoryRepository) AdjustStock(id int, delta int) (Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.storage {
		if r.storage[i].ID == id {
			stock := r.storage[i].Stock + delta
			if stock < 0 {
				stock = 0
			}
			r.storage[i].Stock = stock
			return r.storage[i], nil
		}
	}
	return Book{}, ErrNotFound
}

func (r *InMemoryRepository) Upsert(b Book) (Book, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.storage {
		if r.storage[i].Title == b.Title && r.storage[i].Author == b.Author {
			r.storage[i].Price = b.Price
			r.storage[i].Stock = b.Stock
			return r.storage[i], false, nil
		}
	}

	if b.ID == 0 {
		b.ID = r.nextID
		r.nextID++
	}
	r.storage = append(r.storage, b)
	return b, true, nil
}
