package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gearbox-app/gearbox/internal/api"
	"github.com/gearbox-app/gearbox/internal/db"
	"github.com/gearbox-app/gearbox/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	location := mustLoadLocation(getEnv("TZ", "UTC"))
	time.Local = location

	secretKey := getEnv("SECRET_KEY", "change_me_in_production")
	dbPath := getEnv("DB_PATH", filepath.Join("data", "gearbox.db"))
	port := getEnv("PORT", "8080")
	cookieSecure := getEnv("COOKIE_SECURE", "") == "true"

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	handler, err := api.NewHandler(database, secretKey, location, cookieSecure)
	if err != nil {
		log.Fatalf("handler init failed: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName:               "Gearbox",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	api.RegisterRoutes(app, handler)

	notifier := services.NewNotificationService(database, location)
	lifecycleCtx, cancelLifecycle := context.WithCancel(context.Background())
	defer cancelLifecycle()
	notifier.Start(lifecycleCtx)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		cancelLifecycle()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("Gearbox listening on http://0.0.0.0:%s (db: %s, tz: %s)", port, dbPath, location.String())
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func mustLoadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid TZ %q, falling back to UTC", name)
		return time.UTC
	}
	return location
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
