package mealplan

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/healthtrackapp/healthtrack/internal/config"
	"github.com/healthtrackapp/healthtrack/internal/foodlog"
	"github.com/healthtrackapp/healthtrack/internal/goal"
	util "github.com/healthtrackapp/healthtrack/internal/utils"
)

// ErrInvalidMealType is the food log's meal-type sentinel, re-exported so
// callers of this package match on it without importing foodlog.
var ErrInvalidMealType = foodlog.ErrInvalidMealType

var ErrGoalNotSet = errors.New("goals not set")

type Service interface {
	LogMeal(ctx context.Context, userID uuid.UUID, dto LogMealDTO) (*foodlog.FoodEntryResponse, error)
	GetDailyLogsGrouped(ctx context.Context, userID uuid.UUID, day util.Date) (GroupedLogsResponse, error)
	GetWeeklyNutrition(ctx context.Context, userID uuid.UUID, startDate util.Date) ([]DayNutrition, error)
	GetMealHistory(ctx context.Context, userID uuid.UUID, mealType string, limit int) ([]foodlog.FoodEntryResponse, error)
	SuggestForDate(ctx context.Context, userID uuid.UUID, day util.Date) (*MealPlanResponse, error)
}

type service struct {
	foodService foodlog.Service
	foodRepo    foodlog.Repository
	goalRepo    goal.Repository
}

func NewService(foodService foodlog.Service, foodRepo foodlog.Repository, goalRepo goal.Repository) Service {
	return &service{
		foodService: foodService,
		foodRepo:    foodRepo,
		goalRepo:    goalRepo,
	}
}

// LogMeal wraps the plain food logger with a required meal type; membership
// in the four labels is enforced by the food log service itself.
func (s *service) LogMeal(ctx context.Context, userID uuid.UUID, dto LogMealDTO) (*foodlog.FoodEntryResponse, error) {
	if dto.MealType == "" {
		return nil, ErrInvalidMealType
	}

	return s.foodService.LogMeal(ctx, userID, foodlog.LogMealDTO{
		FoodName: dto.FoodName,
		Calories: dto.Calories,
		Protein:  dto.Protein,
		Carbs:    dto.Carbs,
		Fats:     dto.Fats,
		MealType: dto.MealType,
		Notes:    dto.Notes,
		Date:     dto.Date,
	})
}

func (s *service) GetDailyLogsGrouped(ctx context.Context, userID uuid.UUID, day util.Date) (GroupedLogsResponse, error) {
	entries, err := s.foodRepo.FindByDayGrouped(userID, day)
	if err != nil {
		return nil, err
	}

	grouped := GroupedLogsResponse{}
	for i := range entries {
		key := entries[i].MealType
		grouped[key] = append(grouped[key], *foodlog.ToResponse(&entries[i]))
	}
	return grouped, nil
}

// GetWeeklyNutrition walks all 7 days of [startDate, startDate+6], emitting a
// zero row for days without entries.
func (s *service) GetWeeklyNutrition(ctx context.Context, userID uuid.UUID, startDate util.Date) ([]DayNutrition, error) {
	endDate := startDate.AddDays(6)
	entries, err := s.foodRepo.FindInRange(userID, startDate, endDate)
	if err != nil {
		return nil, err
	}

	days := make([]DayNutrition, 0, 7)
	for offset := 0; offset < 7; offset++ {
		day := startDate.AddDays(offset)
		row := DayNutrition{
			Date:      day,
			MealTypes: []string{},
		}

		seen := map[string]bool{}
		for i := range entries {
			if !entries[i].Date.Equal(day) {
				continue
			}
			row.TotalCalories += entries[i].Calories
			row.MealCount++
			if mt := entries[i].MealType; mt != "" && !seen[mt] {
				seen[mt] = true
				row.MealTypes = append(row.MealTypes, mt)
			}
		}
		days = append(days, row)
	}
	return days, nil
}

func (s *service) GetMealHistory(ctx context.Context, userID uuid.UUID, mealType string, limit int) ([]foodlog.FoodEntryResponse, error) {
	if !foodlog.ValidMealType(mealType) {
		return nil, ErrInvalidMealType
	}
	mealType = strings.ToLower(mealType)
	if limit <= 0 {
		limit = 5
	}

	entries, err := s.foodRepo.FindRecentByMealType(userID, mealType, limit)
	if err != nil {
		return nil, err
	}
	return foodlog.ToResponses(entries), nil
}

// SuggestForDate seeds the canned plan from the user's daily goal and what
// was already consumed on the given day.
func (s *service) SuggestForDate(ctx context.Context, userID uuid.UUID, day util.Date) (*MealPlanResponse, error) {
	log := config.WithContext(ctx)

	g, err := s.goalRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrGoalNotSet
	}

	entries, err := s.foodRepo.FindByDay(userID, day)
	if err != nil {
		return nil, err
	}
	consumed := 0
	for i := range entries {
		consumed += entries[i].Calories
	}

	plan := SuggestMealPlan(g.DailyCalories, consumed)
	log.WithField("user_id", userID).Debugf("Suggested plan for %s with %d calories consumed", day, consumed)
	return &plan, nil
}

// SuggestMealPlan picks from a fixed suggestion table keyed by remaining
// calories, then scales every estimate down by a flat 20% (truncating) when
// the suggested total would exceed the remaining budget. The scale-down is
// applied at most once.
func SuggestMealPlan(calorieTarget, existingCalories int) MealPlanResponse {
	remaining := calorieTarget - existingCalories

	plan := MealPlanResponse{
		Breakfast: MealSuggestion{
			Suggestion:        "Greek yogurt with berries and granola",
			EstimatedCalories: pickCalories(remaining >= 1600, 300, 200),
		},
		Lunch: MealSuggestion{
			Suggestion:        "Grilled chicken salad with olive oil dressing",
			EstimatedCalories: pickCalories(remaining >= 1200, 450, 350),
		},
		Dinner: MealSuggestion{
			Suggestion:        "Salmon with quinoa and steamed vegetables",
			EstimatedCalories: pickCalories(remaining >= 700, 550, 400),
		},
		Snack: MealSuggestion{
			Suggestion:        "Apple slices",
			EstimatedCalories: 150,
		},
	}
	if remaining > 200 {
		plan.Snack.Suggestion = "Handful of almonds"
	}

	total := plan.Breakfast.EstimatedCalories +
		plan.Lunch.EstimatedCalories +
		plan.Dinner.EstimatedCalories +
		plan.Snack.EstimatedCalories
	if total > remaining {
		plan.Breakfast.EstimatedCalories = scaleDown(plan.Breakfast.EstimatedCalories)
		plan.Lunch.EstimatedCalories = scaleDown(plan.Lunch.EstimatedCalories)
		plan.Dinner.EstimatedCalories = scaleDown(plan.Dinner.EstimatedCalories)
		plan.Snack.EstimatedCalories = scaleDown(plan.Snack.EstimatedCalories)
	}

	return plan
}

func pickCalories(generous bool, high, low int) int {
	if generous {
		return high
	}
	return low
}

func scaleDown(calories int) int {
	return int(float64(calories) * 0.8)
}
