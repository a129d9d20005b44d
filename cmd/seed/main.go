package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/minhvt/bookstore-backend/internal/book"
	"github.com/minhvt/bookstore-backend/internal/config"
	"github.com/minhvt/bookstore-backend/internal/db"
)

// seed populates the catalog with the sample books, updating price and
// stock for books that already exist.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	conn := db.MustOpen(cfg.DatabaseURL)
	defer conn.Close()
	if err := db.RunMigrations(conn); err != nil {
		log.Fatalf("migrations: %v", err)
	}

	res, err := book.Seed(book.NewPostgresRepository(conn))
	if err != nil {
		log.Fatalf("seed: %v", err)
	}

	log.Printf("seeded catalog: %d created, %d updated", res.Created, res.Updated)
}
