package main

import (
	"net/http"

	"github.com/healthtrackapp/healthtrack/internal/config"
	"github.com/healthtrackapp/healthtrack/internal/container"
	"github.com/healthtrackapp/healthtrack/internal/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.Logger().Fatalf("Invalid configuration: %v", err)
	}

	c, err := container.New(cfg)
	if err != nil {
		config.Logger().Fatalf("Failed to initialize application: %v", err)
	}

	handler := router.New(router.RouterConfig{
		UserHandler:     c.UserContainer.Handler,
		FoodLogHandler:  c.FoodLogContainer.Handler,
		GoalHandler:     c.GoalContainer.Handler,
		MealPlanHandler: c.MealPlanContainer.Handler,
	})

	config.Logger().Infof("Listening on %s", cfg.HTTPAddr)
	if err := http.ListenAndServe(cfg.HTTPAddr, handler); err != nil {
		config.Logger().Fatalf("Server stopped: %v", err)
	}
}
