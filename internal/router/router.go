package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/healthtrackapp/healthtrack/internal/foodlog"
	"github.com/healthtrackapp/healthtrack/internal/goal"
	"github.com/healthtrackapp/healthtrack/internal/mealplan"
	"github.com/healthtrackapp/healthtrack/internal/middlewares"
	"github.com/healthtrackapp/healthtrack/internal/user"
)

type RouterConfig struct {
	UserHandler     *user.Handler
	FoodLogHandler  *foodlog.Handler
	GoalHandler     *goal.Handler
	MealPlanHandler *mealplan.Handler
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Route("/users", func(r chi.Router) {
		r.Post("/", cfg.UserHandler.Create)
		r.Get("/", cfg.UserHandler.List)

		r.Route("/{userID}", func(r chi.Router) {
			r.Get("/", cfg.UserHandler.Get)

			r.Mount("/logs", foodlog.Routes(cfg.FoodLogHandler))
			r.Mount("/goals", goal.Routes(cfg.GoalHandler))
			r.Mount("/meals", mealplan.Routes(cfg.MealPlanHandler))

			r.Get("/progress/daily", cfg.GoalHandler.DailyProgress)
			r.Get("/progress/weekly", cfg.GoalHandler.WeeklyProgress)
			r.Get("/nutrition/weekly", cfg.MealPlanHandler.WeeklyNutrition)
			r.Get("/mealplan", cfg.MealPlanHandler.Suggest)
		})
	})

	return r
}
