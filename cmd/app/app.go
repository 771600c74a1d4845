package app

import (
	"log"

	"animeverse/internal/config"
	"animeverse/internal/database"
	"animeverse/internal/repository"
	"animeverse/internal/service"
	"animeverse/internal/session"
	"animeverse/internal/storage"
)

func App(cfg *config.Config) (*database.DB, *repository.Repository, *service.Service) {
	// connection DB
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Не удалось подключиться к БД: %v", err)
	}

	// connection MinIO
	minioClient, err := storage.NewMinIOClient(cfg)
	if err != nil {
		log.Fatalf("Не удалось инициализировать MinIO: %v", err)
	}

	// session key-value file
	sessions := session.NewFileStore(cfg.SessionFile)

	// enabling dependencies
	repo := repository.NewRepository(db.DB)

	services := service.NewService(repo, cfg, minioClient, sessions)

	return db, repo, services
}
