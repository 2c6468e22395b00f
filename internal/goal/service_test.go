package goal_test

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
	goals  goal.Service
	logs   foodlog.Service
	userID uuid.UUID
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	db := newTestDB(t)

	owner := user.User{ID: uuid.New(), Name: "alice"}
	require.NoError(t, db.Create(&owner).Error)

	foodRepo := foodlog.NewRepository(db)
	return fixture{
		goals:  goal.NewService(goal.NewRepository(db), foodRepo),
		logs:   foodlog.NewService(foodRepo),
		userID: owner.ID,
	}
}

func (f fixture) log(t *testing.T, calories int, day util.Date) {
	t.Helper()
	_, err := f.logs.LogMeal(context.Background(), f.userID, foodlog.LogMealDTO{
		FoodName: "Meal",
		Calories: calories,
		Date:     &day,
	})
	require.NoError(t, err)
}

func floatPtr(v float64) *float64 { return &v }

func TestSetGoalsRoundTrip(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	set, err := f.goals.SetGoals(ctx, f.userID, goal.SetGoalsDTO{
		DailyCalories:  2000,
		WeeklyCalories: 14000,
		ProteinGoal:    floatPtr(120),
	})
	require.NoError(t, err)

	got, err := f.goals.GetGoals(ctx, f.userID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, set.ID, got.ID)
	assert.Equal(t, 2000, got.DailyCalories)
	assert.Equal(t, 14000, got.WeeklyCalories)
	require.NotNil(t, got.ProteinGoal)
	assert.Equal(t, 120.0, *got.ProteinGoal)
	assert.Nil(t, got.CarbGoal)
	assert.Nil(t, got.FatGoal)
}

func TestSetGoalsUpsertRetainsMacros(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	first, err := f.goals.SetGoals(ctx, f.userID, goal.SetGoalsDTO{
		DailyCalories:  2000,
		WeeklyCalories: 14000,
		ProteinGoal:    floatPtr(120),
		FatGoal:        floatPtr(70),
	})
	require.NoError(t, err)

	// Second call omits the macro goals: calorie values overwrite, macros stay.
	second, err := f.goals.SetGoals(ctx, f.userID, goal.SetGoalsDTO{
		DailyCalories:  1800,
		WeeklyCalories: 12600,
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "upsert must not create a second row")
	assert.Equal(t, 1800, second.DailyCalories)
	require.NotNil(t, second.ProteinGoal)
	assert.Equal(t, 120.0, *second.ProteinGoal)
	require.NotNil(t, second.FatGoal)
	assert.Equal(t, 70.0, *second.FatGoal)

	// Supplying a macro goal replaces it.
	third, err := f.goals.SetGoals(ctx, f.userID, goal.SetGoalsDTO{
		DailyCalories:  1800,
		WeeklyCalories: 12600,
		ProteinGoal:    floatPtr(130),
	})
	require.NoError(t, err)
	assert.Equal(t, 130.0, *third.ProteinGoal)
	assert.Equal(t, 70.0, *third.FatGoal)
}

func TestGetGoalsNotSet(t *testing.T) {
	f := newFixture(t)

	got, err := f.goals.GetGoals(context.Background(), f.userID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDailyProgressNoEntries(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	day := util.NewDate(2026, time.August, 10)

	_, err := f.goals.SetGoals(ctx, f.userID, goal.SetGoalsDTO{DailyCalories: 2000, WeeklyCalories: 14000})
	require.NoError(t, err)

	p, err := f.goals.GetDailyProgress(ctx, f.userID, day)
	require.NoError(t, err)
	assert.Equal(t, 0, p.TotalCalories)
	require.NotNil(t, p.DailyGoal)
	assert.Equal(t, 2000, *p.DailyGoal)
	require.NotNil(t, p.Remaining)
	assert.Equal(t, 2000, *p.Remaining)
	require.NotNil(t, p.Percentage)
	assert.Equal(t, 0.0, *p.Percentage)
}

func TestDailyProgressOverGoal(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	day := util.NewDate(2026, time.August, 10)

	_, err := f.goals.SetGoals(ctx, f.userID, goal.SetGoalsDTO{DailyCalories: 2000, WeeklyCalories: 14000})
	require.NoError(t, err)

	for _, calories := range []int{200, 300, 1600} {
		f.log(t, calories, day)
	}

	p, err := f.goals.GetDailyProgress(ctx, f.userID, day)
	require.NoError(t, err)
	assert.Equal(t, 2100, p.TotalCalories)
	require.NotNil(t, p.Remaining)
	assert.Equal(t, 0, *p.Remaining, "over-goal shows as remaining 0")
	require.NotNil(t, p.Percentage)
	assert.Equal(t, 100.0, *p.Percentage, "percentage is clamped at 100")
}

func TestDailyProgressPartial(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	day := util.NewDate(2026, time.August, 10)

	_, err := f.goals.SetGoals(ctx, f.userID, goal.SetGoalsDTO{DailyCalories: 2000, WeeklyCalories: 14000})
	require.NoError(t, err)
	f.log(t, 500, day)

	p, err := f.goals.GetDailyProgress(ctx, f.userID, day)
	require.NoError(t, err)
	assert.Equal(t, 500, p.TotalCalories)
	assert.Equal(t, 1500, *p.Remaining)
	assert.Equal(t, 25.0, *p.Percentage)
}

func TestDailyProgressNoGoal(t *testing.T) {
	f := newFixture(t)
	day := util.NewDate(2026, time.August, 10)
	f.log(t, 500, day)

	p, err := f.goals.GetDailyProgress(context.Background(), f.userID, day)
	require.NoError(t, err)
	assert.Equal(t, 500, p.TotalCalories)
	assert.Nil(t, p.DailyGoal)
	assert.Nil(t, p.Remaining)
	assert.Nil(t, p.Percentage)
}

func TestDailyProgressZeroGoal(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	day := util.NewDate(2026, time.August, 10)

	_, err := f.goals.SetGoals(ctx, f.userID, goal.SetGoalsDTO{DailyCalories: 0, WeeklyCalories: 14000})
	require.NoError(t, err)
	f.log(t, 500, day)

	p, err := f.goals.GetDailyProgress(ctx, f.userID, day)
	require.NoError(t, err)
	// The goal row exists, so the goal value is reported, but a zero goal
	// disables remaining and percentage.
	require.NotNil(t, p.DailyGoal)
	assert.Equal(t, 0, *p.DailyGoal)
	assert.Nil(t, p.Remaining)
	assert.Nil(t, p.Percentage)
}

func TestWeeklyProgressWindow(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	start := util.NewDate(2026, time.August, 10)

	_, err := f.goals.SetGoals(ctx, f.userID, goal.SetGoalsDTO{DailyCalories: 2000, WeeklyCalories: 14000})
	require.NoError(t, err)

	f.log(t, 100, start)            // first day, included
	f.log(t, 200, start.AddDays(6)) // last day, included
	f.log(t, 400, start.AddDays(7)) // outside the window

	p, err := f.goals.GetWeeklyProgress(ctx, f.userID, start)
	require.NoError(t, err)
	assert.True(t, p.StartDate.Equal(start))
	assert.True(t, p.EndDate.Equal(start.AddDays(6)))
	assert.Equal(t, 300, p.TotalCalories)
	require.NotNil(t, p.WeeklyGoal)
	assert.Equal(t, 14000, *p.WeeklyGoal)
	assert.Equal(t, 13700, *p.Remaining)
}

func TestWeeklyProgressPercentageRounding(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	start := util.NewDate(2026, time.August, 10)

	_, err := f.goals.SetGoals(ctx, f.userID, goal.SetGoalsDTO{DailyCalories: 2000, WeeklyCalories: 14000})
	require.NoError(t, err)
	f.log(t, 999, start)

	p, err := f.goals.GetWeeklyProgress(ctx, f.userID, start)
	require.NoError(t, err)
	require.NotNil(t, p.Percentage)
	// 999/14000*100 = 7.1357... rounded to two decimals.
	assert.Equal(t, 7.14, *p.Percentage)
}
