package main

import (
	"log"
	"net/http"
	"time"

	"facilitydocs/config"
	"facilitydocs/jobs"
	"facilitydocs/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	config.LoadConfig()
	cfg := config.AppConfig

	ctx, cancel := config.CreateContext(10 * time.Second)
	defer cancel()

	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	defer func() {
		disconnectCtx, disconnectCancel := config.CreateContext(5 * time.Second)
		defer disconnectCancel()
		if err = mongoClient.Disconnect(disconnectCtx); err != nil {
			log.Printf("Failed to disconnect MongoDB: %v", err)
		}
	}()

	if err = mongoClient.Ping(ctx, nil); err != nil {
		log.Fatalf("Failed to ping MongoDB: %v", err)
	}

	log.Println("Connected to MongoDB successfully")

	db := mongoClient.Database(cfg.DatabaseName)

	container, err := routes.NewServiceContainer(db, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize services: %v", err)
	}

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}))

	api := router.Group("/api")
	routes.SetupRoutes(api, container)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().UTC(),
		})
	})

	if cfg.OrphanSweepInterval > 0 {
		sweeper := jobs.NewBlobSweeper(db, container.StorageService)
		go sweeper.Start(cfg.OrphanSweepInterval)
	}

	log.Printf("Starting facility document server on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
