package customer

// Customer represents an account in the bookstore. The password field holds
// a bcrypt hash, never plaintext, and is blanked before responses leave the
// handler.
type Customer struct {
	ID         int    `json:"customerId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password,omitempty"`
	DateJoined string `json:"dateJoined,omitempty"`
}
