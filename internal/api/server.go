package api

import (
	"context"

	"deltapi/internal/app/config"
	"deltapi/internal/app/dsn"
	"deltapi/internal/app/handler"
	"deltapi/internal/app/middleware"
	"deltapi/internal/app/redis"
	"deltapi/internal/app/repository"
	"deltapi/internal/app/storage"
	"deltapi/internal/pkg"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// StartServer assemble la configuration, les dépendances et lance le serveur HTTP
func StartServer() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal("configuration: ", err)
	}

	repo, err := repository.New(dsn.FromEnv())
	if err != nil {
		logrus.Fatal("connexion base de données: ", err)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis)
	if err != nil {
		logrus.Fatal("connexion redis: ", err)
	}
	defer redisClient.Close()

	// l'archivage des reçus est optionnel : sans MinIO le service tourne quand même
	minioClient, err := storage.NewMinIOClient(
		cfg.Minio.Endpoint,
		cfg.Minio.AccessKey,
		cfg.Minio.SecretKey,
		cfg.Minio.Bucket,
		cfg.Minio.UseSSL,
	)
	if err != nil {
		logrus.Warn("minio indisponible, archivage des reçus désactivé: ", err)
		minioClient = nil
	}

	authHandler := handler.NewAuthHandler(repo, redisClient, cfg)
	apiHandler := handler.NewAPIHandler(repo, minioClient, authHandler)
	authMiddleware := middleware.NewAuthMiddleware(redisClient, cfg)

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	app := pkg.NewApp(cfg, router, apiHandler, authMiddleware)
	app.RunApp()
}
