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
	"github.com/minhvt/bookstore-backend/internal/db"
)

// cart-service owns the cart tables and reads the shared book catalog for
// its stock checks.
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

	handler := cart.NewHandler(cart.NewService(cart.NewPostgresRepository(conn), book.NewPostgresRepository(conn)))

	app.Use(jwtware.New(jwtware.Config{SigningKey: []byte(cfg.JWTSecret)}))
	handler.RegisterProtectedRoutes(app)

	log.Printf("cart-service listening on %s", cfg.Addr)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
