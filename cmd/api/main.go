package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"animeverse/cmd/app"
	"animeverse/internal/config"
	handlers "animeverse/internal/handler"
	"animeverse/internal/middleware"
	"animeverse/internal/models"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY не установлен в .env файле")
	}

	db, repo, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(repo, services, cfg)

	router := mux.NewRouter()

	router.HandleFunc("/", handlers.HomeHandler).Methods(http.MethodGet)
	router.HandleFunc("/health", handlers.HealthHandler).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()

	// auth
	api.HandleFunc("/auth/register", handler.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", handler.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/logout", handler.Logout).Methods(http.MethodPost)
	api.HandleFunc("/me", handler.GetCurrentAccount).Methods(http.MethodGet)

	// accounts
	api.HandleFunc("/accounts/{id:[0-9]+}", handler.GetAccount).Methods(http.MethodGet)
	api.HandleFunc("/accounts/{id:[0-9]+}", handler.UpdateProfile).Methods(http.MethodPut)
	api.HandleFunc("/accounts/{id:[0-9]+}", handler.DeleteAccount).Methods(http.MethodDelete)
	api.HandleFunc("/accounts/{id:[0-9]+}/avatar", handler.UploadAvatar).Methods(http.MethodPost)

	// topics and posts
	api.HandleFunc("/topics", handler.GetTopics).Methods(http.MethodGet)
	api.HandleFunc("/posts", handler.GetPosts).Methods(http.MethodGet)
	api.HandleFunc("/posts", handler.CreatePost).Methods(http.MethodPost)
	api.HandleFunc("/posts/{id:[0-9]+}", handler.GetPost).Methods(http.MethodGet)
	api.HandleFunc("/posts/{id:[0-9]+}", handler.UpdatePost).Methods(http.MethodPut)
	api.HandleFunc("/posts/{id:[0-9]+}", handler.DeletePost).Methods(http.MethodDelete)
	api.HandleFunc("/posts/{id:[0-9]+}/like", handler.LikePost).Methods(http.MethodPost)
	api.HandleFunc("/posts/{id:[0-9]+}/image", handler.AttachImage).Methods(http.MethodPost)
	api.HandleFunc("/posts/{id:[0-9]+}/image", handler.RemoveImage).Methods(http.MethodDelete)

	// comments and ratings
	api.HandleFunc("/posts/{id:[0-9]+}/comments", handler.AddComment).Methods(http.MethodPost)
	api.HandleFunc("/posts/{id:[0-9]+}/comments", handler.GetComments).Methods(http.MethodGet)
	api.HandleFunc("/comments/{id:[0-9]+}", handler.DeleteComment).Methods(http.MethodDelete)
	api.HandleFunc("/posts/{id:[0-9]+}/rating", handler.RatePost).Methods(http.MethodPost)
	api.HandleFunc("/posts/{id:[0-9]+}/rating", handler.GetAverageRating).Methods(http.MethodGet)

	// reports
	api.HandleFunc("/posts/{id:[0-9]+}/report", handler.ReportPost).Methods(http.MethodPost)

	// moderation, Admin/Moderator only
	mod := api.PathPrefix("/moderation").Subrouter()
	mod.Use(middleware.ModeratorOnlyMiddleware)
	mod.HandleFunc("/accounts/{id:[0-9]+}/ban", handler.BanAccount).Methods(http.MethodPost)
	mod.HandleFunc("/accounts/{id:[0-9]+}/ban", handler.UnbanAccount).Methods(http.MethodDelete)
	mod.HandleFunc("/accounts/{id:[0-9]+}/temp-ban", handler.TempBanAccount).Methods(http.MethodPost)
	mod.HandleFunc("/bans", handler.ListBans).Methods(http.MethodGet)
	mod.HandleFunc("/posts/{id:[0-9]+}/ban", handler.BanPost).Methods(http.MethodPost)
	mod.HandleFunc("/comments/{id:[0-9]+}/ban", handler.BanComment).Methods(http.MethodPost)
	mod.HandleFunc("/reports", handler.ListReports).Methods(http.MethodGet)
	mod.HandleFunc("/reports/pending-count", handler.PendingReportCount).Methods(http.MethodGet)
	mod.HandleFunc("/reports/{id:[0-9]+}/review", handler.ReviewReport).Methods(http.MethodPost)
	mod.HandleFunc("/reports/{id:[0-9]+}/dismiss", handler.DismissReport).Methods(http.MethodPost)

	// admin stats
	stats := api.PathPrefix("/stats").Subrouter()
	stats.Use(middleware.RoleMiddleware(models.RoleAdmin))
	stats.HandleFunc("", handler.StatsHandler).Methods(http.MethodGet)

	handlerChain := middleware.Chain(
		router,
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware,
		middleware.AuthMiddleware(cfg),
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	fmt.Printf("Сервер запущен на %s\n", addr)
	fmt.Printf("База данных: %s\n", cfg.DB.DbNAME)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
