package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rpupo63/portfolio-api-backend/api"
	"github.com/rpupo63/portfolio-api-backend/config"
	"github.com/rpupo63/portfolio-api-backend/database"
	"github.com/rpupo63/portfolio-api-backend/models"
)

func main() {
	fmt.Println("Initializing app...")

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}

	c := config.New()
	setLogLevel(config.GetString(c, "LOG_LEVEL", "info"))

	var currentDB database.Database

	switch backend := config.GetString(c, "STORAGE_BACKEND", "postgres"); backend {
	case "memory":
		fmt.Println("Using in-memory storage backend (non-durable, for tests/demos)...")
		currentDB = database.NewMemory()
	case "postgres":
		db := connectPostgres(c)

		// If generating models, run migration plus codegen and exit
		if strings.ToLower(os.Getenv("GENERATE_MODELS")) == "true" {
			fmt.Println("Generating models and query helpers...")
			models.GenerateModels(db)
			return
		}

		if err := db.AutoMigrate(
			&models.Profile{},
			&models.Project{},
			&models.Skill{},
			&models.ProjectSkill{},
		); err != nil {
			fmt.Printf("Error migrating schema: %v\n", err)
			os.Exit(1)
		}

		currentDB = database.New(db)
	default:
		fmt.Printf("Unsupported STORAGE_BACKEND %q. Exiting...\n", backend)
		os.Exit(1)
	}

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(currentDB)
	if err != nil {
		fmt.Printf("Error initializing server: %v\n", err)
		os.Exit(1)
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	fmt.Printf("Closing server: %v\n", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

func connectPostgres(c map[string]string) *gorm.DB {
	connStr := config.GetString(c, "DATABASE_URL", "")
	if connStr == "" {
		connStr = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			config.GetString(c, "PG_HOST", "localhost"),
			config.GetString(c, "PG_USER", "postgres"),
			config.GetString(c, "PG_PASSWORD", ""),
			config.GetString(c, "PG_DATABASE", "portfolio"),
			config.GetString(c, "PG_PORT", "5432"),
			config.GetString(c, "PG_SSLMODE", "disable"),
		)
	}
	fmt.Println("Connecting to Postgres database...")

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             10 * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  connStr,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		PrepareStmt: false,
		Logger:      newLogger,
		// Surface duplicate-key and similar failures as gorm sentinels so
		// the errs translation layer can match on them.
		TranslateError: true,
	})
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}

	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\"").Error; err != nil {
		fmt.Printf("Error enabling uuid-ossp extension: %v\n", err)
		os.Exit(1)
	}

	// Test database connection
	var result int
	if err := db.Raw("SELECT 1").Scan(&result).Error; err != nil {
		fmt.Printf("Error testing database connection: %v\n", err)
		os.Exit(1)
	}

	return db
}

func setLogLevel(level string) {
	parsed, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		parsed = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(parsed)
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
