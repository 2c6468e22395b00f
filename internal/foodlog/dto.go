package foodlog

import (
	"time"

	"github.com/google/uuid"
	util "github.com/healthtrackapp/healthtrack/internal/utils"
)

type LogMealDTO struct {
	FoodName string     `json:"food_name" validate:"required,max=100"`
	Calories int        `json:"calories"`
	Protein  *float64   `json:"protein,omitempty"`
	Carbs    *float64   `json:"carbs,omitempty"`
	Fats     *float64   `json:"fats,omitempty"`
	MealType string     `json:"meal_type,omitempty"`
	Notes    string     `json:"notes,omitempty"`
	Date     *util.Date `json:"date,omitempty"`
}

type UpdateEntryDTO struct {
	FoodName *string    `json:"food_name,omitempty" validate:"omitempty,max=100"`
	Calories *int       `json:"calories,omitempty"`
	Protein  *float64   `json:"protein,omitempty"`
	Carbs    *float64   `json:"carbs,omitempty"`
	Fats     *float64   `json:"fats,omitempty"`
	MealType *string    `json:"meal_type,omitempty"`
	Notes    *string    `json:"notes,omitempty"`
	Date     *util.Date `json:"date,omitempty"`
}

type FoodEntryResponse struct {
	ID        uint      `json:"id"`
	FoodName  string    `json:"food_name"`
	Calories  int       `json:"calories"`
	Protein   float64   `json:"protein"`
	Carbs     float64   `json:"carbs"`
	Fats      float64   `json:"fats"`
	MealType  string    `json:"meal_type,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	Date      util.Date `json:"date"`
	UserID    uuid.UUID `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToResponse(e *FoodEntry) *FoodEntryResponse {
	return &FoodEntryResponse{
		ID:        e.ID,
		FoodName:  e.FoodName,
		Calories:  e.Calories,
		Protein:   e.Protein,
		Carbs:     e.Carbs,
		Fats:      e.Fats,
		MealType:  e.MealType,
		Notes:     e.Notes,
		Date:      e.Date,
		UserID:    e.UserID,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToResponses(entries []FoodEntry) []FoodEntryResponse {
	responses := make([]FoodEntryResponse, 0, len(entries))
	for i := range entries {
		responses = append(responses, *ToResponse(&entries[i]))
	}
	return responses
}
