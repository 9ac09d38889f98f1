// @title Docshelf Backend API
// @version 1.0
// @description Document management backend: accounts, JWT bearer auth, categories, subcategories and owner-scoped documents
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "DOCSHELF_BACK-END/docs" // This is required for swagger
	"DOCSHELF_BACK-END/internal/auth"
	"DOCSHELF_BACK-END/internal/config"
	"DOCSHELF_BACK-END/internal/database"
	"DOCSHELF_BACK-END/internal/handlers"
	"DOCSHELF_BACK-END/internal/logger"
	"DOCSHELF_BACK-END/internal/repository"
	"DOCSHELF_BACK-END/internal/routes"
)

var (
	migrateOnlyFlag = flag.Bool("migrate-only", false, "Run DB migrations and exit")
	deactivateFlag  = flag.String("deactivate-user", "", "Mark the account with this email inactive and exit")
)

func main() {
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New(config.LogConfig{Level: "info", Format: "console"}, os.Stderr)
		bootLog.Fatal(err, "Failed to load configuration")
	}

	log := logger.New(cfg.Log, nil)
	if cfg.WeakSecret() {
		log.Warn("JWT_SECRET is shorter than 32 bytes; use a longer random secret in production")
	}

	ctx := context.Background()
	db, err := database.Open(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal(err, "Failed to connect to database")
	}
	defer db.Close()

	// schema bootstrap runs once, before any request is served
	if err := db.Migrate(ctx); err != nil {
		log.Fatal(err, "Migration failed")
	}
	if *migrateOnlyFlag {
		log.Info("Migrations completed successfully")
		return
	}

	users := repository.NewUserRepository(db.Gorm)

	if *deactivateFlag != "" {
		if err := deactivateUser(ctx, users, *deactivateFlag); err != nil {
			log.Fatal(err, "Failed to deactivate user")
		}
		log.With(map[string]interface{}{"email": *deactivateFlag}).Info("User deactivated")
		return
	}

	// --- Application wiring ---
	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenTTL, auth.WithIssuer(cfg.JWT.Issuer))
	hasher := auth.NewBcryptHasher(cfg.Password.BcryptCost)
	authService := auth.NewService(users, hasher, tokens, log.With(map[string]interface{}{"component": "auth"}))
	resolver := auth.NewIdentityResolver(tokens, users)

	router := routes.NewRouter(routes.Dependencies{
		CORS:          cfg.CORS,
		Log:           log,
		Resolver:      resolver,
		Auth:          handlers.NewAuthHandler(authService, log),
		Health:        handlers.NewHealthHandler(db, db.Driver),
		Categories:    handlers.NewCategoriesHandler(repository.NewCategoryRepository(db.Gorm), log),
		Subcategories: handlers.NewSubcategoriesHandler(repository.NewSubcategoryRepository(db.Gorm), log),
		Documents:     handlers.NewDocumentsHandler(repository.NewDocumentRepository(db.Gorm), log),
	})

	// --- HTTP Server + Graceful Shutdown ---
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		log.With(map[string]interface{}{"addr": srv.Addr}).Info("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err, "ListenAndServe failed")
		}
	}()

	// Wait for SIGINT/SIGTERM to shut down gracefully
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(err, "Server shutdown error")
	}
	log.Info("Server stopped.")
}

func deactivateUser(ctx context.Context, users *repository.UserRepository, email string) error {
	user, err := users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	return users.SetActive(ctx, user.ID, false)
}
