package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"

	"github.com/limbo/fast800/internal/service"
)

type Server struct {
	mx                 *chi.Mux
	srv                *http.Server
	userService        service.UserServiceI
	plansService       service.PlansServiceI
	logsService        service.LogsServiceI
	recipesService     service.RecipesServiceI
	statsService       service.StatsServiceI
	fastingService     service.FastingServiceI
	archiveService     service.ArchiveServiceI
	analyticsService   service.AnalyticsServiceI
	achievementService service.AchievementServiceI
	shoppingService    service.ShoppingServiceI
	migrationService   service.MigrationServiceI
	jwtService         JWTServiceI
	assetsDir          string
	allowedOrigins     []string
}

type ServicesList struct {
	UserService        service.UserServiceI
	PlansService       service.PlansServiceI
	LogsService        service.LogsServiceI
	RecipesService     service.RecipesServiceI
	StatsService       service.StatsServiceI
	FastingService     service.FastingServiceI
	ArchiveService     service.ArchiveServiceI
	AnalyticsService   service.AnalyticsServiceI
	AchievementService service.AchievementServiceI
	ShoppingService    service.ShoppingServiceI
	MigrationService   service.MigrationServiceI
	JwtService         JWTServiceI
	// Directory served under /assets. Empty disables the file server
	AssetsDir string
	// CORS origins, every origin is allowed when empty
	AllowedOrigins []string
}

func New(servicesOptions *ServicesList) *Server {
	return &Server{
		mx:                 chi.NewMux(),
		userService:        servicesOptions.UserService,
		plansService:       servicesOptions.PlansService,
		logsService:        servicesOptions.LogsService,
		recipesService:     servicesOptions.RecipesService,
		statsService:       servicesOptions.StatsService,
		fastingService:     servicesOptions.FastingService,
		archiveService:     servicesOptions.ArchiveService,
		analyticsService:   servicesOptions.AnalyticsService,
		achievementService: servicesOptions.AchievementService,
		shoppingService:    servicesOptions.ShoppingService,
		migrationService:   servicesOptions.MigrationService,
		jwtService:         servicesOptions.JwtService,
		assetsDir:          servicesOptions.AssetsDir,
		allowedOrigins:     servicesOptions.AllowedOrigins,
	}
}

// MountEndpoints registers middlewares and every route. Run calls it, tests may call it directly.
func (s *Server) MountEndpoints() {
	origins := s.allowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	s.mx.Use(cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler)
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware, s.AccessLogMiddleware)

	if s.assetsDir != "" {
		s.mx.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServer(http.Dir(s.assetsDir))))
	}

	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)

		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)

			r.Delete("/account", s.DeleteAccount)

			r.Get("/plans", s.GetDayPlansInRange)
			r.Get("/plans/{date}", s.GetDayPlan)
			r.Put("/plans/{date}", s.SaveDayPlan)
			r.Put("/plans/{date}/type", s.SetDayType)
			r.Post("/plans/{date}/meals", s.AddMeal)
			r.Put("/plans/{date}/meals/{mealID}", s.SwapMeal)
			r.Delete("/plans/{date}/meals/{mealID}", s.RemoveMeal)
			r.Post("/plans/{date}/meals/{mealID}/toggle", s.ToggleMealCompleted)

			r.Post("/logs/analyze", s.AnalyzeFoodText)
			r.Get("/logs/{date}", s.GetDailyLog)
			r.Put("/logs/{date}", s.SaveDailyLog)
			r.Post("/logs/{date}/items", s.AddFoodItem)
			r.Delete("/logs/{date}/items/{itemID}", s.RemoveFoodItem)
			r.Post("/logs/{date}/workouts", s.AddWorkout)
			r.Delete("/logs/{date}/workouts/{workoutID}", s.RemoveWorkout)
			r.Post("/logs/{date}/water", s.AddWater)

			r.Get("/recipes", s.GetRecipes)
			r.Post("/recipes", s.SaveRecipe)
			r.Post("/recipes/parse/text", s.ParseRecipeText)
			r.Post("/recipes/parse/image", s.ParseRecipeImage)
			r.Get("/recipes/{id}", s.GetRecipe)
			r.Put("/recipes/{id}", s.SaveRecipe)
			r.Delete("/recipes/{id}", s.DeleteRecipe)
			r.Post("/recipes/{id}/image", s.UploadRecipeImage)

			r.Get("/stats", s.GetUserStats)
			r.Put("/stats/goals", s.UpdateGoals)
			r.Post("/stats/weight", s.AddWeightEntry)

			r.Get("/fasting", s.GetFastingState)
			r.Put("/fasting/config", s.UpdateFastingConfig)
			r.Get("/fasting/history", s.GetFastingHistory)
			r.Post("/fasting/meal", s.RecordMeal)

			r.Post("/summaries/archive", s.ArchiveYesterdaysLog)
			r.Get("/summaries", s.GetDailySummaries)

			r.Get("/analytics/series", s.GetAnalyticsData)
			r.Get("/analytics/projection", s.GetGoalProjection)
			r.Get("/analytics/weight-trend", s.GetWeightTrend)
			r.Get("/analytics/consistency", s.GetConsistency)
			r.Get("/analytics/period/{period}", s.GetPeriodSummary)
			r.Post("/achievements/today", s.EvaluateToday)

			r.Get("/shopping-list", s.BuildShoppingList)

			r.Post("/maintenance/run", s.RunMigrations)
			r.Post("/maintenance/images", s.MigrateInlineImages)
			r.Post("/maintenance/logs", s.MigrateAllLogs)
			r.Post("/maintenance/plans", s.MigrateDayPlans)
			r.Post("/maintenance/legacy-cleanup", s.CleanupLegacyData)
		})
	})
}

func (s *Server) Run(address string) error {
	s.MountEndpoints()
	s.srv = &http.Server{
		Addr:              address,
		Handler:           s.mx,
		ReadHeaderTimeout: 10 * time.Second,
	}
	slog.Info("server started", slog.String("address", address))
	err := s.srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}

// Handler exposes the router, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.mx
}
