package customer

import "golang.org/x/crypto/bcrypt"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() []Customer {
	return s.repo.List()
}

func (s *Service) GetByID(id int) (Customer, error) {
	return s.repo.GetByID(id)
}

// Register hashes the plaintext password and stores the new customer.
// Registering an email that already exists fails with ErrEmailExists.
func (s *Service) Register(customer Customer) (Customer, error) {
	if _, err := s.repo.GetByEmail(customer.Email); err == nil {
		return Customer{}, ErrEmailExists
	} else if err != ErrNotFound {
		return Customer{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(customer.Password), bcrypt.DefaultCost)
	if err != nil {
		return Customer{}, err
	}

	customer.Password = string(hashed)
	return s.repo.Create(customer)
}

// Authenticate verifies the email/password pair. Unknown emails and wrong
// passwords are indistinguishable to the caller.
func (s *Service) Authenticate(email, password string) (Customer, error) {
	customer, err := s.repo.GetByEmail(email)
	if err != nil {
		return Customer{}, ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(customer.Password), []byte(password)) != nil {
		return Customer{}, ErrInvalidCredentials
	}

	return customer, nil
}
