package routes

import (
	"context"
	"log"

	websocket "github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nicholasjozef-cloud/Pacer/internal/config"
	"github.com/nicholasjozef-cloud/Pacer/internal/handlers"
	"github.com/nicholasjozef-cloud/Pacer/internal/llm"
	"github.com/nicholasjozef-cloud/Pacer/internal/middleware"
	"github.com/nicholasjozef-cloud/Pacer/internal/repository"
	"github.com/nicholasjozef-cloud/Pacer/internal/services"
	"github.com/nicholasjozef-cloud/Pacer/internal/strava"
	insightws "github.com/nicholasjozef-cloud/Pacer/internal/websocket"
)

func RegisterRoutes(app *fiber.App, cfg *config.Config, db *pgxpool.Pool) {
	userRepo := repository.NewUserRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	planRepo := repository.NewPlanRepository(db)
	dayDetailsRepo := repository.NewDayDetailsRepository(db)
	nutritionRepo := repository.NewNutritionRepository(db)
	stravaRepo := repository.NewStravaConnectionRepository(db)
	messageRepo := repository.NewMessageRepository(db)

	hub := insightws.NewHub()
	go hub.Run()

	settingsService := services.NewSettingsService(settingsRepo)
	planService := services.NewPlanService(planRepo)
	dayLogService := services.NewDayLogService(dayDetailsRepo)
	nutritionService := services.NewNutritionService(nutritionRepo)
	dashboardService := services.NewDashboardService(settingsService, planService, dayLogService)

	var generator llm.ChatGenerator
	if cfg.CoachEnabled() {
		g, err := llm.NewGeminiGenerator(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Printf("coach model unavailable: %v", err)
		} else {
			generator = g
		}
	}
	coachService := services.NewCoachService(generator, messageRepo, settingsService, planService)

	var stravaClient *strava.Client
	if cfg.StravaEnabled() {
		stravaClient = strava.NewClient(cfg.StravaClientID, cfg.StravaClientSecret)
	}
	var stravaService *services.StravaService
	if stravaClient != nil {
		stravaService = services.NewStravaService(stravaClient, stravaRepo, settingsService, planService, hub)
		go stravaService.RunPeriodicSync(context.Background(), cfg.StravaSyncInterval)
	} else {
		stravaService = services.NewStravaService(nil, stravaRepo, settingsService, planService, hub)
	}

	authHandler := handlers.NewAuthHandler(userRepo, cfg.JWTSecret)
	settingsHandler := handlers.NewSettingsHandler(settingsService)
	planHandler := handlers.NewPlanHandler(planService)
	dayLogHandler := handlers.NewDayLogHandler(dayLogService)
	nutritionHandler := handlers.NewNutritionHandler(nutritionService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	coachHandler := handlers.NewCoachHandler(coachService)
	stravaHandler := handlers.NewStravaHandler(stravaService)
	insightHandler := handlers.NewInsightHandler(hub, cfg.JWTSecret)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	api.Get("/config", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"coach_enabled":    cfg.CoachEnabled(),
			"strava_enabled":   cfg.StravaEnabled(),
			"strava_client_id": cfg.StravaClientID,
		})
	})

	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Get("/me", middleware.AuthRequired(cfg.JWTSecret), authHandler.Me)

	authProtected := api.Group("/v1", middleware.AuthRequired(cfg.JWTSecret))

	authProtected.Get("/settings", settingsHandler.GetSettings)
	authProtected.Put("/settings", settingsHandler.UpdateSettings)

	authProtected.Get("/plan", planHandler.GetPlan)
	authProtected.Put("/plan/:week/:day", planHandler.UpdateWorkout)

	authProtected.Get("/days", dayLogHandler.GetDays)
	authProtected.Put("/days/:date", dayLogHandler.UpsertDay)

	nutrition := authProtected.Group("/nutrition")
	nutrition.Get("", nutritionHandler.ListEntries)
	nutrition.Post("", nutritionHandler.LogEntry)

	authProtected.Get("/dashboard", dashboardHandler.GetDashboard)

	coach := authProtected.Group("/coach")
	coach.Post("/chat", coachHandler.Chat)
	coach.Get("/history", coachHandler.History)

	stravaGroup := authProtected.Group("/strava")
	stravaGroup.Post("/connect", stravaHandler.Connect)
	stravaGroup.Get("/status", stravaHandler.Status)
	stravaGroup.Delete("/disconnect", stravaHandler.Disconnect)
	stravaGroup.Post("/sync", stravaHandler.Sync)

	api.Use("/v1/ws", insightHandler.WebSocketAuth)
	api.Get("/v1/ws", websocket.New(insightHandler.HandleWebSocket))
}
