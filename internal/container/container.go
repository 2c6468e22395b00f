package container

import (
	"context"

	"github.com/healthtrackapp/healthtrack/internal/config"
	"github.com/healthtrackapp/healthtrack/internal/foodlog"
	"github.com/healthtrackapp/healthtrack/internal/goal"
	"github.com/healthtrackapp/healthtrack/internal/mealplan"
	"github.com/healthtrackapp/healthtrack/internal/user"
	util "github.com/healthtrackapp/healthtrack/internal/utils"
	"gorm.io/gorm"
)

type Container struct {
	UserContainer     *user.Container
	FoodLogContainer  *foodlog.Container
	GoalContainer     *goal.Container
	MealPlanContainer *mealplan.Container
}

func New(cfg *config.Config) (*Container, error) {
	config.Init()
	config.SetLevel(cfg.LogLevel)
	util.InitValidator()

	if err := config.Connect(context.Background(), cfg.DBDriver, cfg.DBDSN); err != nil {
		return nil, err
	}
	if err := migrate(config.DB); err != nil {
		return nil, err
	}

	userContainer := user.NewContainer(config.DB)
	foodLogContainer := foodlog.NewContainer(config.DB)
	goalContainer := goal.NewContainer(config.DB, foodLogContainer.Repo)
	mealPlanContainer := mealplan.NewContainer(
		foodLogContainer.Service,
		foodLogContainer.Repo,
		goalContainer.Repo,
	)

	return &Container{
		UserContainer:     userContainer,
		FoodLogContainer:  foodLogContainer,
		GoalContainer:     goalContainer,
		MealPlanContainer: mealPlanContainer,
	}, nil
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&user.User{},
		&foodlog.FoodEntry{},
		&goal.Goal{},
	)
}
