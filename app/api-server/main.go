package main

import (
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/omoluabi/heartville/config"
	"github.com/omoluabi/heartville/internal/api/handlers"
	"github.com/omoluabi/heartville/internal/api/middleware"
	"github.com/omoluabi/heartville/internal/api/routes"
	"github.com/omoluabi/heartville/internal/logger"
	"github.com/omoluabi/heartville/internal/realtime"
	"github.com/omoluabi/heartville/internal/repositories/memory"
	"github.com/omoluabi/heartville/internal/services"
)

func main() {
	_ = godotenv.Load()

	log := logger.New()
	cfg := config.Load()

	// In-memory stores, seeded with the demo fixtures. Everything resets on
	// restart.
	profileRepo := memory.NewProfileRepo(memory.DemoProfiles())
	matchRepo := memory.NewMatchRepo(memory.DemoMatches(services.DefaultUserID))
	messageRepo := memory.NewMessageRepo(memory.DemoMessagePreviews())
	catalogueRepo := memory.NewCatalogueRepo(memory.DemoAlbum())

	hub := realtime.NewHub(log)

	profileSvc := services.NewProfileService(profileRepo)
	matchSvc := services.NewMatchService(profileRepo, matchRepo, messageRepo, hub)
	catalogueSvc := services.NewCatalogueService(catalogueRepo)
	insightsSvc := services.NewInsightsService(memory.DemoInsights())

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORS(cfg.CORSOrigins))

	routes.RegisterRoutes(r, routes.Deps{
		Profile:   handlers.NewProfileHandler(profileSvc),
		Match:     handlers.NewMatchHandler(matchSvc),
		Insights:  handlers.NewInsightsHandler(insightsSvc),
		Catalogue: handlers.NewCatalogueHandler(catalogueSvc),
		WS:        handlers.NewWSHandler(hub),
		StaticDir: cfg.StaticDir,
	})

	log.WithField("port", cfg.Port).Info("Heartville API running")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
