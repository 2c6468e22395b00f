package goal

import (
	"github.com/healthtrackapp/healthtrack/internal/foodlog"
	"gorm.io/gorm"
)

type Container struct {
	Handler *Handler
	Service Service
	Repo    Repository
}

func NewContainer(db *gorm.DB, foodRepo foodlog.Repository) *Container {
	repo := NewRepository(db)
	service := NewService(repo, foodRepo)
	handler := NewHandler(service)

	return &Container{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
