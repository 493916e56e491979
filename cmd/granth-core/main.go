package main

// @title           Granth Core API
// @version         1.0
// @description     Federated scripture-library search. Resolves free-text queries into typed intents via a language-model oracle and searches the audio, video, and book catalogs.

// @host      localhost:8080
// @schemes   http

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Bearer token. Format: "Bearer {token}"

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"

	"github.com/vitragvani-labs/granth-core/internal/adapters/driven/ai"
	authadapter "github.com/vitragvani-labs/granth-core/internal/adapters/driven/auth"
	"github.com/vitragvani-labs/granth-core/internal/adapters/driven/postgres"
	redisadapter "github.com/vitragvani-labs/granth-core/internal/adapters/driven/redis"
	httpserver "github.com/vitragvani-labs/granth-core/internal/adapters/driving/http"
	"github.com/vitragvani-labs/granth-core/internal/config"
	"github.com/vitragvani-labs/granth-core/internal/core/domain"
	"github.com/vitragvani-labs/granth-core/internal/core/ports/driven"
	"github.com/vitragvani-labs/granth-core/internal/core/services"
)

var version = "dev"

func main() {
	cfg := config.Load()
	if cfg.Version == "dev" {
		cfg.Version = version
	}

	log.Printf("granth-core %s starting", cfg.Version)

	ctx := context.Background()

	// ===== Initialize PostgreSQL =====
	log.Println("Connecting to PostgreSQL...")
	db, err := postgres.Connect(ctx, postgres.Config{
		URL:             cfg.DatabaseURL,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnLifetime,
		ConnMaxIdleTime: cfg.DBConnIdleTime,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Initialize owned schema (idempotent)
	if err := db.InitSchema(ctx); err != nil {
		log.Fatalf("Failed to initialize schema: %v", err)
	}
	log.Println("PostgreSQL connected and schema initialized")

	// ===== Session Store (Redis if available, otherwise PostgreSQL) =====
	var sessionStore driven.SessionStore
	if cfg.RedisURL != "" {
		log.Println("Connecting to Redis...")
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("Failed to parse Redis URL: %v", err)
		}
		redisClient := redis.NewClient(opts)
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()

		sessionStore = redisadapter.NewSessionStore(redisClient)
		log.Println("Using Redis session store")
	} else {
		sessionStore = postgres.NewSessionStore(db)
		log.Println("Using PostgreSQL session store")
	}

	// ===== Intent oracle =====
	oracle, err := ai.NewOpenAIIntentOracle(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL)
	if err != nil {
		log.Fatalf("Failed to create intent oracle: %v", err)
	}
	log.Printf("Intent oracle ready (model=%s)", oracle.Model())

	// ===== Driven adapters =====
	var adapter *authadapter.Adapter
	if cfg.BcryptCost > 0 {
		adapter = authadapter.NewAdapterWithCost(cfg.JWTSecret, cfg.BcryptCost)
	} else {
		adapter = authadapter.NewAdapter(cfg.JWTSecret)
	}
	userStore := postgres.NewUserStore(db)
	catalogStore := postgres.NewCatalogStore(db)

	// ===== Services (core business logic) =====
	resolver := services.NewIntentResolver(oracle, cfg.OracleTimeout)
	searchService := services.NewSearchService(resolver, catalogStore, domain.DefaultSources(), cfg.SourceQueryTimeout, nil)
	authService := services.NewAuthService(userStore, sessionStore, adapter)
	userService := services.NewUserService(userStore, adapter)

	// ===== HTTP server =====
	server := httpserver.NewServer(
		httpserver.Config{
			Host:       cfg.Host,
			Port:       cfg.Port,
			Version:    cfg.Version,
			CORSOrigin: cfg.CORSOrigin,
		},
		searchService,
		authService,
		userService,
		db,
	)

	log.Printf("API server starting on :%d", cfg.Port)
	if err := server.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
