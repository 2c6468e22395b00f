package mealplan

import (
	"github.com/healthtrackapp/healthtrack/internal/foodlog"
	util "github.com/healthtrackapp/healthtrack/internal/utils"
)

// LogMealDTO is the meal-typed variant of food logging: the meal type is
// required and validated against the four known labels.
type LogMealDTO struct {
	FoodName string     `json:"food_name" validate:"required,max=100"`
	Calories int        `json:"calories"`
	MealType string     `json:"meal_type" validate:"required"`
	Notes    string     `json:"notes,omitempty"`
	Date     *util.Date `json:"date,omitempty"`
	Protein  *float64   `json:"protein,omitempty"`
	Carbs    *float64   `json:"carbs,omitempty"`
	Fats     *float64   `json:"fats,omitempty"`
}

// DayNutrition summarizes one day of a weekly window. Days without entries
// produce a zero row with an empty meal-type set.
type DayNutrition struct {
	Date          util.Date `json:"date"`
	TotalCalories int       `json:"total_calories"`
	MealCount     int       `json:"meal_count"`
	MealTypes     []string  `json:"meal_types"`
}

type MealSuggestion struct {
	Suggestion        string `json:"suggestion"`
	EstimatedCalories int    `json:"estimated_calories"`
}

type MealPlanResponse struct {
	Breakfast MealSuggestion `json:"breakfast"`
	Lunch     MealSuggestion `json:"lunch"`
	Dinner    MealSuggestion `json:"dinner"`
	Snack     MealSuggestion `json:"snack"`
}

type GroupedLogsResponse map[string][]foodlog.FoodEntryResponse
