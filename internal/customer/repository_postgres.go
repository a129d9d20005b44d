package customer

import (
	"database/sql"
	"strings"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	listCustomersQuery = `
		SELECT id, name, email, password, to_char(date_joined, 'YYYY-MM-DD"T"HH24:MI:SSOF') AS date_joined
		FROM customers
		ORDER BY id
	`
	getCustomerByIDQuery = `
		SELECT id, name, email, password, to_char(date_joined, 'YYYY-MM-DD"T"HH24:MI:SSOF') AS date_joined
		FROM customers
		WHERE id = $1
	`
	getCustomerByEmailQuery = `
		SELECT id, name, email, password, to_char(date_joined, 'YYYY-MM-DD"T"HH24:MI:SSOF') AS date_joined
		FROM customers
		WHERE email = $1
	`
	insertCustomerQuery = `
		INSERT INTO customers (name, email, password)
		VALUES ($1, $2, $3)
		RETURNING id, to_char(date_joined, 'YYYY-MM-DD"T"HH24:MI:SSOF')
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCustomer(row rowScanner) (Customer, error) {
	var c Customer
	if err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Password, &c.DateJoined); err != nil {
		return Customer{}, err
	}
	return c, nil
}

func (r *PostgresRepository) List() []Customer {
	rows, err := r.db.Query(listCustomersQuery)
	if err != nil {
		return []Customer{}
	}
	defer rows.Close()

	customers := make([]Customer, 0)
	for rows.Next() {
		customer, err := scanCustomer(rows)
		if err != nil {
			continue
		}
		customers = append(customers, customer)
	}

	return customers
}

func (r *PostgresRepository) GetByID(id int) (Customer, error) {
	customer, err := scanCustomer(r.db.QueryRow(getCustomerByIDQuery, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return Customer{}, ErrNotFound
		}
		return Customer{}, err
	}

	return customer, nil
}

func (r *PostgresRepository) GetByEmail(email string) (Customer, error) {
	customer, err := scanCustomer(r.db.QueryRow(getCustomerByEmailQuery, email))
	if err != nil {
		if err == sql.ErrNoRows {
			return Customer{}, ErrNotFound
		}
		return Customer{}, err
	}

	return customer, nil
}

func (r *PostgresRepository) Create(customer Customer) (Customer, error) {
	err := r.db.QueryRow(insertCustomerQuery, customer.Name, customer.Email, customer.Password).
		Scan(&customer.ID, &customer.DateJoined)
	if err != nil {
		// the unique index on email is the authority on duplicates
		if strings.Contains(err.Error(), "customers_email_key") {
			return Customer{}, ErrEmailExists
		}
		return Customer{}, err
	}

	return customer, nil
}
