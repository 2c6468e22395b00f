package mealplan_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/healthtrackapp/healthtrack/internal/foodlog"
	"github.com/healthtrackapp/healthtrack/internal/goal"
	"github.com/healthtrackapp/healthtrack/internal/mealplan"
	"github.com/healthtrackapp/healthtrack/internal/user"
	util "github.com/healthtrackapp/healthtrack/internal/utils"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&user.User{}, &foodlog.FoodEntry{}, &goal.Goal{}))
	return db
}

type fixture struct {
	planner mealplan.Service
	goals   goal.Service
	userID  uuid.UUID
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	db := newTestDB(t)

	owner := user.User{ID: uuid.New(), Name: "alice"}
	require.NoError(t, db.Create(&owner).Error)

	foodRepo := foodlog.NewRepository(db)
	foodService := foodlog.NewService(foodRepo)
	goalRepo := goal.NewRepository(db)

	return fixture{
		planner: mealplan.NewService(foodService, foodRepo, goalRepo),
		goals:   goal.NewService(goalRepo, foodRepo),
		userID:  owner.ID,
	}
}

func (f fixture) logTyped(t *testing.T, food, mealType string, calories int, day util.Date) {
	t.Helper()
	_, err := f.planner.LogMeal(context.Background(), f.userID, mealplan.LogMealDTO{
		FoodName: food,
		Calories: calories,
		MealType: mealType,
		Date:     &day,
	})
	require.NoError(t, err)
}

func TestLogMealValidatesMealType(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.planner.LogMeal(ctx, f.userID, mealplan.LogMealDTO{
		FoodName: "Pancakes",
		Calories: 350,
		MealType: "brunch",
	})
	assert.ErrorIs(t, err, mealplan.ErrInvalidMealType)

	entry, err := f.planner.LogMeal(ctx, f.userID, mealplan.LogMealDTO{
		FoodName: "Pancakes",
		Calories: 350,
		MealType: "Breakfast",
	})
	require.NoError(t, err)
	assert.Equal(t, "breakfast", entry.MealType, "meal type is lower-cased on write")
}

func TestGetDailyLogsGrouped(t *testing.T) {
	f := newFixture(t)
	day := util.NewDate(2026, time.August, 10)

	f.logTyped(t, "Eggs", "breakfast", 150, day)
	f.logTyped(t, "Toast", "breakfast", 120, day)
	f.logTyped(t, "Salad", "lunch", 300, day)

	grouped, err := f.planner.GetDailyLogsGrouped(context.Background(), f.userID, day)
	require.NoError(t, err)
	require.Len(t, grouped, 2)
	require.Len(t, grouped["breakfast"], 2)
	assert.Equal(t, "Eggs", grouped["breakfast"][0].FoodName)
	assert.Equal(t, "Toast", grouped["breakfast"][1].FoodName)
	require.Len(t, grouped["lunch"], 1)
}

func TestGetWeeklyNutrition(t *testing.T) {
	f := newFixture(t)
	start := util.NewDate(2026, time.August, 10)
	day3 := start.AddDays(3)

	f.logTyped(t, "Eggs", "breakfast", 150, day3)
	f.logTyped(t, "Salad", "lunch", 300, day3)
	f.logTyped(t, "Yogurt", "breakfast", 100, day3)

	days, err := f.planner.GetWeeklyNutrition(context.Background(), f.userID, start)
	require.NoError(t, err)
	require.Len(t, days, 7)

	for i, d := range days {
		assert.True(t, d.Date.Equal(start.AddDays(i)))
		if i != 3 {
			assert.Zero(t, d.TotalCalories)
			assert.Zero(t, d.MealCount)
			assert.Empty(t, d.MealTypes)
		}
	}

	assert.Equal(t, 550, days[3].TotalCalories)
	assert.Equal(t, 3, days[3].MealCount)
	assert.ElementsMatch(t, []string{"breakfast", "lunch"}, days[3].MealTypes)
}

func TestGetMealHistory(t *testing.T) {
	f := newFixture(t)

	older := util.NewDate(2026, time.August, 10)
	newer := util.NewDate(2026, time.August, 12)

	f.logTyped(t, "Eggs", "breakfast", 150, older)
	f.logTyped(t, "Salad", "lunch", 300, newer)
	f.logTyped(t, "Pancakes", "breakfast", 350, newer)

	history, err := f.planner.GetMealHistory(context.Background(), f.userID, "Breakfast", 5)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "Pancakes", history[0].FoodName)
	assert.Equal(t, "Eggs", history[1].FoodName)

	_, err = f.planner.GetMealHistory(context.Background(), f.userID, "supper", 5)
	assert.ErrorIs(t, err, mealplan.ErrInvalidMealType)
}

func TestSuggestMealPlan(t *testing.T) {
	tests := []struct {
		name      string
		target    int
		existing  int
		breakfast int
		lunch     int
		dinner    int
		snack     int
		snackName string
	}{
		{
			name:   "generous budget, no scaling",
			target: 2200, existing: 0,
			breakfast: 300, lunch: 450, dinner: 550, snack: 150,
			snackName: "Handful of almonds",
		},
		{
			name:   "mid budget scales once",
			target: 1300, existing: 0,
			// Table picks 200/450/550/150 = 1350 > 1300, so every estimate
			// is scaled by 0.8 with truncation.
			breakfast: 160, lunch: 360, dinner: 440, snack: 120,
			snackName: "Handful of almonds",
		},
		{
			name:   "tight budget switches snack",
			target: 2000, existing: 1900,
			breakfast: 160, lunch: 280, dinner: 320, snack: 120,
			snackName: "Apple slices",
		},
		{
			name:   "consumed over target",
			target: 1800, existing: 2000,
			breakfast: 160, lunch: 280, dinner: 320, snack: 120,
			snackName: "Apple slices",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := mealplan.SuggestMealPlan(tt.target, tt.existing)
			assert.Equal(t, tt.breakfast, plan.Breakfast.EstimatedCalories)
			assert.Equal(t, tt.lunch, plan.Lunch.EstimatedCalories)
			assert.Equal(t, tt.dinner, plan.Dinner.EstimatedCalories)
			assert.Equal(t, tt.snack, plan.Snack.EstimatedCalories)
			assert.Equal(t, tt.snackName, plan.Snack.Suggestion)
		})
	}
}

func TestSuggestForDate(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	day := util.NewDate(2026, time.August, 10)

	_, err := f.planner.SuggestForDate(ctx, f.userID, day)
	assert.ErrorIs(t, err, mealplan.ErrGoalNotSet)

	_, err = f.goals.SetGoals(ctx, f.userID, goal.SetGoalsDTO{DailyCalories: 2000, WeeklyCalories: 14000})
	require.NoError(t, err)
	f.logTyped(t, "Eggs", "breakfast", 400, day)

	plan, err := f.planner.SuggestForDate(ctx, f.userID, day)
	require.NoError(t, err)

	expected := mealplan.SuggestMealPlan(2000, 400)
	assert.Equal(t, expected, *plan)
}
