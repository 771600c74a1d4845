package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"animeverse/internal/config"
	"animeverse/internal/repository"
	"animeverse/internal/service"
)

type Handlers struct {
	AuthService       service.AuthService
	AccountService    service.AccountService
	PostService       service.PostService
	CommentService    service.CommentService
	RatingService     service.RatingService
	ModerationService service.ModerationService
	StatsService      service.StatsService
	TopicRepo         repository.TopicRepository
	Cfg               *config.Config
	Validate          *validator.Validate
}

func NewHandlers(repo *repository.Repository, service *service.Service, config *config.Config) *Handlers {
	return &Handlers{
		AuthService:       service.Auth,
		AccountService:    service.Account,
		PostService:       service.Post,
		CommentService:    service.Comment,
		RatingService:     service.Rating,
		ModerationService: service.Moderation,
		StatsService:      service.Stats,
		TopicRepo:         repo.Topic,
		Cfg:               config,
		Validate:          validator.New(),
	}
}

func HomeHandler(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, map[string]string{"service": "AnimeVerse API"}, http.StatusOK)
}

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, map[string]string{"status": "ok"}, http.StatusOK)
}

func (h *Handlers) StatsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := h.StatsService.Snapshot(r.Context())
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, stats, http.StatusOK)
}

func (h *Handlers) GetTopics(w http.ResponseWriter, r *http.Request) {
	topics, err := h.TopicRepo.GetAll(r.Context())
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(topics)
}
