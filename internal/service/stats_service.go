package service

import (
	"context"

	"animeverse/internal/repository"
)

type StatsService interface {
	Snapshot(ctx context.Context) (*repository.Stats, error)
}

type statsService struct {
	statsRepo repository.StatsRepository
}

func NewStatsService(statsRepo repository.StatsRepository) StatsService {
	return &statsService{statsRepo: statsRepo}
}

func (s *statsService) Snapshot(ctx context.Context) (*repository.Stats, error) {
	stats, err := s.statsRepo.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	return stats, nil
}
