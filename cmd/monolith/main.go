package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	jwtware "github.com/gofiber/jwt/v2"
	"github.com/joho/godotenv"

	"github.com/minhvt/bookstore-backend/internal/book"
	"github.com/minhvt/bookstore-backend/internal/cart"
	"github.com/minhvt/bookstore-backend/internal/config"
	"github.com/minhvt/bookstore-backend/internal/customer"
	"github.com/minhvt/bookstore-backend/internal/db"
)

// The monolith serves every domain from one process and one database.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	conn := db.MustOpen(cfg.DatabaseURL)
	defer conn.Close()
	if err := db.RunMigrations(conn); err != nil {
		log.Fatalf("migrations: %v", err)
	}

	app := fiber.New()
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSAllowOrigins,
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	customerRepo := customer.NewPostgresRepository(conn)
	customerHandler := customer.NewHandler(customer.NewService(customerRepo), cfg.JWTSecret)

	bookRepo := book.NewPostgresRepository(conn)
	bookHandler := book.NewHandler(book.NewService(bookRepo))

	cartHandler := cart.NewHandler(cart.NewService(cart.NewPostgresRepository(conn), bookRepo))

	customerHandler.RegisterPublicRoutes(app)
	bookHandler.RegisterPublicRoutes(app)

	app.Use(jwtware.New(jwtware.Config{SigningKey: []byte(cfg.JWTSecret)}))

	customerHandler.RegisterProtectedRoutes(app)
	bookHandler.RegisterProtectedRoutes(app)
	cartHandler.RegisterProtectedRoutes(app)

	log.Printf("bookstore monolith listening on %s", cfg.Addr)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
