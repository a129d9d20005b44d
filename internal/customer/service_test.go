package customer

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestRegister_HashesPassword(t *testing.T) {
	svc := NewService(NewInMemoryRepository(nil))

	created, err := svc.Register(Customer{Name: "Minh", Email: "minh@example.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected an assigned id")
	}
	if created.Password == "secret123" {
		t.Fatal("password must not be stored in plaintext")
	}
	if bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("secret123")) != nil {
		t.Fatal("stored hash must verify against the original password")
	}
}

func TestRegister_RejectsDuplicateEmail(t *testing.T) {
	svc := NewService(NewInMemoryRepository(nil))

	if _, err := svc.Register(Customer{Name: "Minh", Email: "minh@example.com", Password: "secret123"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, err := svc.Register(Customer{Name: "Other", Email: "minh@example.com", Password: "another"})
	if err != ErrEmailExists {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
}

func TestAuthenticate(t *testing.T) {
	svc := NewService(NewInMemoryRepository(nil))

	registered, err := svc.Register(Customer{Name: "Minh", Email: "minh@example.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	got, err := svc.Authenticate("minh@example.com", "secret123")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if got.ID != registered.ID {
		t.Fatalf("expected customer %d, got %d", registered.ID, got.ID)
	}

	// wrong password and unknown email come back as the same error
	if _, err := svc.Authenticate("minh@example.com", "wrong"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Authenticate("nobody@example.com", "secret123"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(NewInMemoryRepository(nil))

	if _, err := svc.GetByID(99); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
