package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/gymflow/gymflow-golang/internal/ai"
	"github.com/gymflow/gymflow-golang/internal/auth"
	"github.com/gymflow/gymflow-golang/internal/chat"
	"github.com/gymflow/gymflow-golang/internal/config"
	"github.com/gymflow/gymflow-golang/internal/handlers"
	"github.com/gymflow/gymflow-golang/internal/logger"
	"github.com/gymflow/gymflow-golang/internal/routes"
	"github.com/gymflow/gymflow-golang/internal/storage"
	"github.com/gymflow/gymflow-golang/internal/store"
	"github.com/gymflow/gymflow-golang/internal/views"
)

func main() {
	ctx := context.Background()

	// 0. --- Load Environment Variables (.env) ---
	// A missing .env file is fine: rely on system environment variables.
	_ = godotenv.Load()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.Development()})
	if !cfg.Development() {
		gin.SetMode(gin.ReleaseMode)
	}

	// 1. --- Durable Key-Value Store ---
	kv, err := storage.Open(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("failed to open key-value store")
	}
	defer kv.Close()

	// 2. --- Record Store Hydration ---
	// Users come back from storage; students and transactions live in
	// memory and are seeded with the demo data when empty.
	recordStore := store.New()
	recordStore.SetUsers(kv.LoadUsers())
	recordStore.Seed()

	// 3. --- Auth Gate + Session Restore ---
	// A persisted session pointer that resolves to a known user restores
	// the authenticated state directly, skipping the login screen.
	gate := auth.NewGate(recordStore, kv)
	gate.Restore()

	startView := views.Landing
	if _, ok := gate.Current(); ok {
		startView = views.Dashboard
	}

	// 4. --- Assistant Bridge ---
	// A missing GEMINI_API_KEY is tolerated: the chat degrades to a fixed
	// explanatory message and everything else keeps working.
	assistant, err := ai.NewService(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize assistant service")
	}
	if cfg.GeminiAPIKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set; assistant will answer with the configuration notice")
	}

	// 5. --- Conversation (hydrated chat history) ---
	conversation := chat.New(recordStore, kv, assistant)

	// --- Application Setup ---
	app := &handlers.Handlers{
		Store: recordStore,
		Auth:  gate,
		Chat:  conversation,
		Views: views.NewRouter(startView),
		Log:   log,
	}

	// --- Router Setup + Start Server ---
	router := routes.SetupRouter(app)

	log.Info().Str("port", cfg.Port).Msg("starting GymFlow API server")
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
