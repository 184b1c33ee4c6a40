package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/saludml/salud-backend/internal/auth"
	"github.com/saludml/salud-backend/internal/config"
	"github.com/saludml/salud-backend/internal/database"
	"github.com/saludml/salud-backend/internal/handlers"
	"github.com/saludml/salud-backend/internal/model"
	"github.com/saludml/salud-backend/internal/routes"
	"github.com/saludml/salud-backend/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	// Model artifacts: loaded once, read-only for the process lifetime.
	diabetesModel, err := model.Load("diabetes", cfg.DiabetesModelPath)
	if err != nil {
		log.Fatal("Failed to load diabetes model: ", err)
	}
	cardiacModel, err := model.Load("cardiaco", cfg.CardiacModelPath)
	if err != nil {
		log.Fatal("Failed to load cardiac model: ", err)
	}

	log.Printf("Connecting to PostgreSQL...")
	pgDB, err := database.ConnectPostgres(cfg.PostgresURI)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL: ", err)
	}
	defer pgDB.Close()

	log.Printf("Connecting to MongoDB...")
	mongoClient, mongoDB, err := database.ConnectMongo(cfg.MongoURI)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB: ", err)
	}
	defer database.DisconnectMongo(mongoClient)

	// Redis is optional; without it history listings just skip the cache.
	var cache *store.Cache
	if cfg.RedisURI != "" {
		redisClient, err := database.ConnectRedis(cfg.RedisURI)
		if err != nil {
			log.Printf("Warning: failed to connect to Redis, history cache disabled: %v", err)
		} else {
			defer redisClient.Close()
			cache = store.NewCache(redisClient)
		}
	}

	app := &handlers.App{
		Cfg:     cfg,
		Users:   store.NewPostgresUserStore(pgDB),
		History: store.NewMongoHistoryStore(mongoDB, cache),
		Models: map[store.Domain]*model.Model{
			store.DomainDiabetes: diabetesModel,
			store.DomainCardiaco: cardiacModel,
		},
		Tokens: auth.NewTokenManager(cfg.SecretKey, cfg.TokenTTL),
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	routes.SetupRoutes(r, app)

	log.Printf("salud backend running on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}
