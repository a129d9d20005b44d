package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	jwtware "github.com/gofiber/jwt/v2"
	"github.com/joho/godotenv"

	"github.com/minhvt/bookstore-backend/internal/config"
	"github.com/minhvt/bookstore-backend/internal/customer"
	"github.com/minhvt/bookstore-backend/internal/db"
)

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

	handler := customer.NewHandler(customer.NewService(customer.NewPostgresRepository(conn)), cfg.JWTSecret)

	handler.RegisterPublicRoutes(app)
	app.Use(jwtware.New(jwtware.Config{SigningKey: []byte(cfg.JWTSecret)}))
	handler.RegisterProtectedRoutes(app)

	log.Printf("customer-service listening on %s", cfg.Addr)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
