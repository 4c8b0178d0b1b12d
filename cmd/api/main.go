package main

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/triply-app/triply-backend/internal/config"
	"github.com/triply-app/triply-backend/internal/logging"
	"github.com/triply-app/triply-backend/internal/media"
	miniorepo "github.com/triply-app/triply-backend/internal/repository/minio"
	"github.com/triply-app/triply-backend/internal/repository/postgres"
	"github.com/triply-app/triply-backend/internal/service"
	transport "github.com/triply-app/triply-backend/internal/transport/http"
	"github.com/triply-app/triply-backend/internal/util"
)

func main() {
	cfg := config.Load()

	if cfg.LogstashTCPAddr != "" {
		writer, err := logging.NewLogstashWriter(cfg.LogstashTCPAddr)
		if err != nil {
			log.Printf("Warning: logstash mirror disabled: %v", err)
		} else {
			defer writer.Close()
			log.SetOutput(io.MultiWriter(os.Stdout, writer))
		}
	}

	db, err := postgres.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer db.Close()

	minioClient, err := miniorepo.NewClient(cfg.MinIOEndpoint, cfg.MinIOAccessKey, cfg.MinIOSecretKey, cfg.MinIOUseSSL)
	if err != nil {
		log.Fatalf("connect minio: %v", err)
	}

	itineraryRepo := postgres.NewItineraryRepo(db)
	favoriteRepo := postgres.NewFavoriteRepo(db)
	storage := miniorepo.NewStorage(minioClient, cfg.MinIOUseSSL)

	itineraries := service.NewItineraryService(itineraryRepo)
	favorites := service.NewFavoriteService(favoriteRepo, itineraryRepo)
	images := service.NewImageService(storage, media.NewFFMPEGProcessor(cfg.FFMPEGPath, cfg.ImageMaxDimension), service.ImageServiceConfig{
		Bucket:        cfg.MinIOBucketImages,
		PublicBaseURL: cfg.MinIOPublicURL,
		MaxBytes:      cfg.ImageMaxBytes,
		MaxDimension:  cfg.ImageMaxDimension,
	})

	jwtManager := util.NewJWTManager(cfg.JWTSecret, 24*time.Hour)

	e := transport.NewRouter(cfg.AllowOrigins)
	transport.RegisterItineraries(e, itineraries, jwtManager)
	transport.RegisterFavorites(e, favorites, jwtManager)
	transport.RegisterImages(e, images, cfg.ImageMaxBytes)
	transport.RegisterSwagger(e)

	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
