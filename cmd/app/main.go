package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ordermanagement/cmd"
	_ "ordermanagement/docs"
	"ordermanagement/internal/adapters/out/postgres/orderrepo"
	"ordermanagement/internal/adapters/out/postgres/outboxrepo"
	"ordermanagement/internal/generated/servers"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	echoSwagger "github.com/swaggo/echo-swagger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	// The generated spec doubles as a startup sanity check: a handler set
	// that drifted from the contract fails here, not on the first request.
	if _, err := servers.GetSwagger(); err != nil {
		log.Fatalf("Invalid OpenAPI contract: %v", err)
	}

	createDbIfNotExists(configs)
	gormDB := mustGormOpen(configs)
	mustAutoMigrate(gormDB)

	app, err := cmd.NewCompositionRoot(configs, gormDB)
	if err != nil {
		log.Fatalf("Failed to build composition root: %v", err)
	}
	defer app.Close()

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	customerConsumer, err := app.CreateCustomerConsumer()
	if err != nil {
		log.Fatalf("Failed to create customer consumer: %v", err)
	}
	inventoryConsumer, err := app.CreateInventoryConsumer()
	if err != nil {
		log.Fatalf("Failed to create inventory consumer: %v", err)
	}
	consumerCtx, stopConsumers := context.WithCancel(context.Background())
	customerConsumer.Start(consumerCtx)
	inventoryConsumer.Start(consumerCtx)
	defer func() {
		stopConsumers()
		customerConsumer.Stop()
		inventoryConsumer.Stop()
	}()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                  goDotEnvVariable("HTTP_PORT"),
		DBHost:                    goDotEnvVariable("DB_HOST"),
		DBPort:                    goDotEnvVariable("DB_PORT"),
		DBUser:                    goDotEnvVariable("DB_USER"),
		DBPassword:                goDotEnvVariable("DB_PASSWORD"),
		DBName:                    goDotEnvVariable("DB_NAME"),
		DBSslMode:                 goDotEnvVariable("DB_SSLMODE"),
		KafkaHost:                 goDotEnvVariable("KAFKA_HOST"),
		KafkaConsumerGroup:        goDotEnvVariable("KAFKA_CONSUMER_GROUP"),
		KafkaOrderEventsTopic:     goDotEnvVariable("KAFKA_ORDER_EVENTS_TOPIC"),
		KafkaCustomerEventsTopic:  goDotEnvVariable("KAFKA_CUSTOMER_EVENTS_TOPIC"),
		KafkaInventoryEventsTopic: goDotEnvVariable("KAFKA_INVENTORY_EVENTS_TOPIC"),
		RedisAddr:                 goDotEnvVariable("REDIS_ADDR"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func createDbIfNotExists(configs cmd.Config) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=postgres sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBSslMode)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Failed to connect to postgres: %v", err)
	}
	defer db.Close()

	var exists bool
	err = db.QueryRow("SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", configs.DBName).Scan(&exists)
	if err != nil {
		log.Fatalf("Failed to check database existence: %v", err)
	}

	if !exists {
		if _, err := db.Exec(fmt.Sprintf("CREATE DATABASE %q", configs.DBName)); err != nil {
			log.Fatalf("Failed to create database %s: %v", configs.DBName, err)
		}
	}
}

func mustGormOpen(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	return gormDB
}

func mustAutoMigrate(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&outboxrepo.MessageDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	servers.RegisterHandlers(e, app.CreateHTTPServer())

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			e.Logger.Fatal(err)
		}
	}()

	if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
		e.Logger.Fatal(err)
	}
}
