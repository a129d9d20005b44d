package customer

import (
	"errors"
	"sync"
)

var (
	ErrNotFound           = errors.New("customer not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailExists        = errors.New("email already exists")
)

type Repository interface {
	List() []Customer
	GetByID(id int) (Customer, error)
	GetByEmail(email string) (Customer, error)
	Create(customer Customer) (Customer, error)
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu        sync.RWMutex
	customers []Customer
	nextID    int
}

func NewInMemoryRepository(seed []Customer) *InMemoryRepository {
	repo := &InMemoryRepository{
		customers: make([]Customer, 0, len(seed)),
		nextID:    1,
	}

	maxID := 0
	for _, customer := range seed {
		repo.customers = append(repo.customers, customer)
		if customer.ID > maxID {
			maxID = customer.ID
		}
	}

	repo.nextID = maxID + 1
	return repo
}

func (r *InMemoryRepository) List() []Customer {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Customer, len(r.customers))
	copy(out, r.customers)
	return out
}

func (r *InMemoryRepository) GetByID(id int) (Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, customer := range r.customers {
		if customer.ID == id {
			return customer, nil
		}
	}

	return Customer{}, ErrNotFound
}

func (r *InMemoryRepository) GetByEmail(email string) (Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, customer := range r.customers {
		if customer.Email == email {
			return customer, nil
		}
	}

	return Customer{}, ErrNotFound
}

func (r *InMemoryRepository) Create(customer Customer) (Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.customers {
		if existing.Email == customer.Email {
			return Customer{}, ErrEmailExists
		}
	}

	if customer.ID == 0 {
		customer.ID = r.nextID
		r.nextID++
	}

	r.customers = append(r.customers, customer)
	return customer, nil
}
