package main

import (
	"api/cache"
	"api/config"
	"api/database"
	"api/github"
	"api/middleware"
	v1 "api/routes/v1"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	config.Load()
	if !config.MutationConfigured() {
		log.Warn("GITHUB_PAT or AUTH_JWT_SECRET missing: submissions are read-only")
	}

	database.InitDB()

	// Read cache: redis when configured, in-memory otherwise
	var store cache.Store
	if config.RedisAddr != "" {
		redisStore, err := cache.NewRedisStore(config.RedisAddr, config.RedisPassword)
		if err != nil {
			log.WithError(err).Fatal("failed to connect to redis")
		}
		store = redisStore
		log.Info("using redis read cache")
	} else {
		store = cache.NewMemoryStore()
	}
	github.Init(store)

	r := gin.Default()
	r.HandleMethodNotAllowed = true

	r.Use(cors.New(cors.Config{
		AllowAllOrigins:           true,
		AllowMethods:              []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:              []string{"Content-Type", "Authorization"},
		OptionsResponseStatusCode: 200,
	}))

	v1.Register(r)
	middleware.UpdateSystemMetrics()

	log.Info("listening on :", config.ServerPort)
	if err := r.Run(":" + config.ServerPort); err != nil {
		log.Fatal("server stopped: ", err)
	}
}
