package service

import (
	"animeverse/internal/config"
	"animeverse/internal/repository"
	"animeverse/internal/session"
	"animeverse/internal/storage"
)

type Service struct {
	Auth       AuthService
	Account    AccountService
	Post       PostService
	Comment    CommentService
	Rating     RatingService
	Moderation ModerationService
	Stats      StatsService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage, sessions session.Store) *Service {
	return &Service{
		Auth:       NewAuthService(rep.Account, sessions, cfg),
		Account:    NewAccountService(rep.Account, storage, cfg),
		Post:       NewPostService(rep.Post, rep.Topic, storage, cfg),
		Comment:    NewCommentService(rep.Comment, rep.Post),
		Rating:     NewRatingService(rep.Rating, rep.Post),
		Moderation: NewModerationService(rep.Account, rep.Post, rep.Comment, rep.Report, rep.Ban),
		Stats:      NewStatsService(rep.Stats),
	}
}
