package main

import (
	"context"
	"log"
	"net/http"
	"path/filepath"

	"content-planner/api/router"
	"content-planner/config"
	"content-planner/db"
	_ "content-planner/docs"
	"content-planner/eventbus"
	"content-planner/generator"
	"content-planner/logger"
	"content-planner/quota"
	"content-planner/repositories"
	"content-planner/services"
	"content-planner/storage"
)

// @title           Content Planner API
// @version         1.0
// @description     API for planning and generating long-form content
// @BasePath        /api/v1
func main() {
	config.InitApp()
	logger.InitFromEnv("LOG_LEVEL")
	cfg := config.GetConfig()

	if err := db.Init(context.Background()); err != nil {
		log.Fatal(err)
	}

	var blobs storage.BlobStore
	var err error
	switch cfg.Storage.Mode {
	case "minio":
		blobs, err = storage.NewMinIOStore(cfg.Storage.MinIO)
	default:
		blobs, err = storage.NewFileStore(filepath.Join(config.GetBasePath(), cfg.Storage.Dir))
	}
	if err != nil {
		log.Fatal(err)
	}

	var publisher eventbus.Publisher = eventbus.NoopPublisher{}
	if cfg.KafkaBrokers != "" {
		kp, err := eventbus.NewKafkaPublisher(cfg.KafkaBrokers)
		if err != nil {
			log.Fatal(err)
		}
		defer kp.Close()
		publisher = kp
	}

	database := db.Database()
	postsRepo := repositories.NewPostRepository(database)
	contextRepo := repositories.NewContextRepository(database)
	contentRepo := repositories.NewContentRepository(database)

	textProvider := generator.NewGeminiTextProvider(cfg.GeminiAPIKey, cfg.GeminiModel)
	imageProvider := generator.NewGeminiImageProvider(cfg.GeminiAPIKey, cfg.ImageModel)
	images := generator.NewImagePersister(blobs)
	limiter := quota.NewGenerationQuotaLimiterFromConfig(cfg)

	orch := generator.NewOrchestrator(postsRepo, contextRepo, contentRepo,
		textProvider, imageProvider, images, limiter)

	postSvc := services.NewPostService(postsRepo, contentRepo, orch, publisher)
	ctxSvc := services.NewContextService(contextRepo)

	r := router.New(postSvc, ctxSvc)
	if err := r.Run(cfg.HTTPAddr); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
