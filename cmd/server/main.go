package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/skillswap/backend/internal/config"
	"github.com/skillswap/backend/internal/database"
	postgresrepo "github.com/skillswap/backend/internal/repository/postgres"
	"github.com/skillswap/backend/internal/service"
	"github.com/skillswap/backend/internal/transport/http/handlers"
	"github.com/skillswap/backend/internal/transport/http/middleware"
	"github.com/skillswap/backend/internal/transport/ws"
)

func main() {
	cfg := config.Load()

	// Database
	pool, err := database.Connect(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()
	log.Println("Connected to database")

	// Repositories
	userRepo := postgresrepo.NewUserRepo(pool)
	profileRepo := postgresrepo.NewProfileRepo(pool)
	swapRepo := postgresrepo.NewSwapRepo(pool)
	convRepo := postgresrepo.NewConversationRepo(pool)
	messageRepo := postgresrepo.NewMessageRepo(pool)
	feedRepo := postgresrepo.NewFeedRepo(pool)

	// Services
	authService := service.NewAuthService(userRepo, profileRepo, cfg.JWTSecret)
	profileService := service.NewProfileService(profileRepo)
	swapService := service.NewSwapService(swapRepo, convRepo, feedRepo, profileRepo)
	convService := service.NewConversationService(convRepo, messageRepo, swapRepo)
	feedService := service.NewFeedService(feedRepo)
	imageService := service.NewImageService()

	// WebSocket hub for live message delivery
	hub := ws.NewHub()
	go hub.Run()
	convService.SetNotifier(ws.NewHubNotifier(hub))

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	profileHandler := handlers.NewProfileHandler(profileService)
	swapHandler := handlers.NewSwapHandler(swapService)
	convHandler := handlers.NewConversationHandler(convService)
	feedHandler := handlers.NewFeedHandler(feedService)
	imageHandler := handlers.NewImageHandler(imageService)

	// Auth middleware
	auth := middleware.Auth(cfg.JWTSecret)

	// Routes
	mux := http.NewServeMux()

	// Public
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "ok"}`))
	})
	mux.HandleFunc("POST /api/v1/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/v1/auth/login", authHandler.Login)
	mux.HandleFunc("GET /api/v1/feed", feedHandler.Recent)
	mux.HandleFunc("GET /api/v1/images", imageHandler.Lookup)

	// Protected - Session & profiles
	mux.Handle("GET /api/v1/me", auth(http.HandlerFunc(authHandler.Me)))
	mux.Handle("GET /api/v1/profiles", auth(http.HandlerFunc(profileHandler.List)))
	mux.Handle("PUT /api/v1/profiles/me", auth(http.HandlerFunc(profileHandler.UpdateMe)))

	// Protected - Swaps
	mux.Handle("POST /api/v1/swaps", auth(http.HandlerFunc(swapHandler.Create)))
	mux.Handle("GET /api/v1/swaps/discover", auth(http.HandlerFunc(swapHandler.Discover)))
	mux.Handle("GET /api/v1/swaps/incoming", auth(http.HandlerFunc(swapHandler.Incoming)))
	mux.Handle("GET /api/v1/swaps/outgoing", auth(http.HandlerFunc(swapHandler.Outgoing)))
	mux.Handle("POST /api/v1/swaps/{id}/accept", auth(http.HandlerFunc(swapHandler.Accept)))
	mux.Handle("POST /api/v1/swaps/{id}/decline", auth(http.HandlerFunc(swapHandler.Decline)))
	mux.Handle("POST /api/v1/swaps/{id}/cancel", auth(http.HandlerFunc(swapHandler.Cancel)))
	mux.Handle("POST /api/v1/swaps/{id}/claim", auth(http.HandlerFunc(swapHandler.Claim)))
	mux.Handle("POST /api/v1/swaps/{id}/complete", auth(http.HandlerFunc(swapHandler.Complete)))
	mux.Handle("GET /api/v1/swaps/{id}/conversation", auth(http.HandlerFunc(convHandler.ForSwap)))

	// Protected - Conversations
	mux.Handle("GET /api/v1/conversations", auth(http.HandlerFunc(convHandler.List)))
	mux.Handle("GET /api/v1/conversations/{id}/messages", auth(http.HandlerFunc(convHandler.Messages)))
	mux.Handle("POST /api/v1/conversations/{id}/messages", auth(http.HandlerFunc(convHandler.Send)))

	// WebSocket
	mux.HandleFunc("GET /ws", ws.ServeWS(hub, cfg.JWTSecret, convService))

	// Start server with CORS
	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Printf("Starting server on %s", addr)
	log.Fatal(http.ListenAndServe(addr, middleware.CORS(cfg.AllowedOrigin)(mux)))
}
