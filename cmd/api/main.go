package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/limbo/fast800/internal/api"
	"github.com/limbo/fast800/internal/cache"
	"github.com/limbo/fast800/internal/parser"
	"github.com/limbo/fast800/internal/repository"
	"github.com/limbo/fast800/internal/service"
	"github.com/limbo/fast800/pkg/assets"
	"github.com/limbo/fast800/pkg/cleanup"
	"github.com/limbo/fast800/pkg/config"
	jwtservice "github.com/limbo/fast800/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	if cfg.GetString("LOG_LEVEL") == "debug" {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}
	pool := repository.Connect(&repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	})
	defer cleanup.CleanUp()

	clock := service.SystemClock(cfg.GetLocation("APP_TIMEZONE"))
	assetsDir := cfg.GetStringOr("ASSETS_DIR", "./data/assets")
	images, err := assets.NewFileStore(assetsDir, cfg.GetStringOr("ASSETS_BASE_URL", "/assets"))
	if err != nil {
		log.Fatal(err)
	}
	var recipeParser service.RecipeParser
	if key := cfg.GetString("GEMINI_API_KEY"); key != "" {
		recipeParser = parser.NewGeminiClient(parser.Config{
			APIKey:     key,
			Model:      cfg.GetString("GEMINI_MODEL"),
			MaxRetries: uint64(cfg.GetInt("GEMINI_MAX_RETRIES", 3)),
			Timeout:    cfg.GetDuration("GEMINI_TIMEOUT", time.Minute),
		})
	} else {
		slog.Warn("GEMINI_API_KEY is empty, text and photo parsing is disabled")
	}

	usersRepo := repository.NewUsersRepo(pool)
	recipesRepo := repository.NewRecipesRepo(pool)
	plansRepo := repository.NewDayPlansRepo(pool)
	legacyRepo := repository.NewLegacyPlansRepo(pool)
	logsRepo := repository.NewDailyLogsRepo(pool)
	summariesRepo := repository.NewSummariesRepo(pool)
	statsRepo := repository.NewStatsRepo(pool)
	fastingRepo := repository.NewFastingRepo(pool)

	plansService := service.NewPlansService(plansRepo, legacyRepo, service.NewNormalizer(recipesRepo))
	fastingService := service.NewFastingService(fastingRepo, logsRepo, clock)
	archiveService := service.NewArchiveService(logsRepo, summariesRepo, clock)

	serv := api.New(&api.ServicesList{
		UserService:        service.NewUserService(usersRepo),
		PlansService:       plansService,
		LogsService:        service.NewLogsService(logsRepo, fastingService, recipeParser, clock),
		RecipesService:     service.NewRecipesService(recipesRepo, images, recipeParser, clock),
		StatsService:       service.NewStatsService(statsRepo),
		FastingService:     fastingService,
		ArchiveService:     archiveService,
		AnalyticsService:   service.NewAnalyticsService(statsRepo, fastingRepo, archiveService, clock),
		AchievementService: service.NewAchievementService(logsRepo, fastingRepo, statsRepo, plansRepo, clock),
		ShoppingService:    service.NewShoppingService(plansService, recipeParser, cache.NewIngredientCache()),
		MigrationService:   service.NewMigrationService(recipesRepo, plansRepo, legacyRepo, images, archiveService, clock),
		JwtService:         jwtservice.New(cfg.GetString("JWT_SECRET"), cfg.GetDuration("JWT_TTL", jwtservice.DefaultTokenTTL)),
		AssetsDir:          assetsDir,
		AllowedOrigins:     splitList(cfg.GetString("CORS_ORIGINS")),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := serv.Shutdown(shutdownCtx); err != nil {
			log.Println("Server shutdown error: " + err.Error())
		}
	}()

	err = serv.Run(cfg.GetStringOr("API_ADDRESS", ":8080"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
