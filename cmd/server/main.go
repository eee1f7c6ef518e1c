package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "modernc.org/sqlite"

	"github.com/itsmortoncornelius/guerilla-prose-backend/internal/api"
	appschema "github.com/itsmortoncornelius/guerilla-prose-backend/internal/graphql"
	"github.com/itsmortoncornelius/guerilla-prose-backend/internal/repository"
	"github.com/itsmortoncornelius/guerilla-prose-backend/internal/service"
	"github.com/itsmortoncornelius/guerilla-prose-backend/migrations"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, reading environment variables from the process")
	}

	api.SetupGlobalHandler("guerilla-prose-backend")

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "guerilla_prose.db"
	}

	db, err := sqlx.Connect("sqlite", dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	// One shared connection; the engine serializes transactions itself.
	db.SetMaxOpenConns(1)

	if err := migrations.Up(db); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}
	log.Println("Database ready.")

	userRepo := repository.NewSqliteUserRepository(db)
	proseRepo := repository.NewSqliteProseRepository(db)

	userService := service.NewUserService(userRepo)
	proseService := service.NewProseService(proseRepo)

	filesDir := os.Getenv("FILES_DIR")
	if filesDir == "" {
		filesDir = "files"
	}
	fileService := service.NewLocalFileService(filesDir)

	userHandler := api.NewUserHandler(userService)
	proseHandler := api.NewProseHandler(proseService)
	fileHandler := api.NewFileHandler(fileService)

	appSchema, err := appschema.NewAppSchema(userRepo, proseRepo)
	if err != nil {
		log.Fatalf("Failed to build GraphQL schema: %v", err)
	}
	graphqlHandler := api.NewGraphQLHandler(appSchema)

	app := fiber.New()

	app.Use(requestid.New(requestid.Config{
		Generator: func() string { return uuid.NewString() },
	}))
	app.Use(logger.New())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	app.Get("/guerillaProse", proseHandler.ListProses)
	app.Get("/guerillaProse/:id", proseHandler.GetProse)
	app.Post("/guerillaProse", proseHandler.CreateProse)

	app.Get("/user", userHandler.GetUser)
	app.Post("/user", userHandler.CreateUser)
	app.Put("/user", userHandler.UpdateUser)
	app.Delete("/user", userHandler.DeleteUser)

	app.Post("/file", fileHandler.UploadFile)
	app.Post("/graphql", graphqlHandler.Execute)

	publicDir := os.Getenv("PUBLIC_DIR")
	if publicDir == "" {
		publicDir = "public"
	}
	app.Static("/files", filesDir)
	app.Static("/", publicDir)
	app.Get("/*", func(c *fiber.Ctx) error {
		return c.SendFile(filepath.Join(publicDir, "index.html"))
	})

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Listening on port %s", port)
	log.Fatal(app.Listen(":" + port))
}
