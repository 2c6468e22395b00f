package mealplan

import (
	"github.com/healthtrackapp/healthtrack/internal/foodlog"
	"github.com/healthtrackapp/healthtrack/internal/goal"
)

type Container struct {
	Handler *Handler
	Service Service
}

func NewContainer(foodService foodlog.Service, foodRepo foodlog.Repository, goalRepo goal.Repository) *Container {
	service := NewService(foodService, foodRepo, goalRepo)
	handler := NewHandler(service)

	return &Container{
		Handler: handler,
		Service: service,
	}
}
