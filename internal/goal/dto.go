package goal

import (
	"time"

	"github.com/google/uuid"
	util "github.com/healthtrackapp/healthtrack/internal/utils"
)

// SetGoalsDTO overwrites the calorie goals unconditionally; macro goals are
// only touched when supplied.
type SetGoalsDTO struct {
	DailyCalories  int      `json:"daily_calories"`
	WeeklyCalories int      `json:"weekly_calories"`
	ProteinGoal    *float64 `json:"protein_goal,omitempty"`
	CarbGoal       *float64 `json:"carb_goal,omitempty"`
	FatGoal        *float64 `json:"fat_goal,omitempty"`
}

type GoalResponse struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	DailyCalories  int       `json:"daily_calories"`
	WeeklyCalories int       `json:"weekly_calories"`
	ProteinGoal    *float64  `json:"protein_goal,omitempty"`
	CarbGoal       *float64  `json:"carb_goal,omitempty"`
	FatGoal        *float64  `json:"fat_goal,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// DailyProgressResponse reports consumed vs. goal calories for one day.
// DailyGoal is present whenever a goal row exists; Remaining and Percentage
// are only present when the goal value is non-zero.
type DailyProgressResponse struct {
	Date          util.Date `json:"date"`
	TotalCalories int       `json:"total_calories"`
	DailyGoal     *int      `json:"daily_goal"`
	Remaining     *int      `json:"remaining"`
	Percentage    *float64  `json:"progress_percentage"`
}

type WeeklyProgressResponse struct {
	StartDate     util.Date `json:"start_date"`
	EndDate       util.Date `json:"end_date"`
	TotalCalories int       `json:"total_calories"`
	WeeklyGoal    *int      `json:"weekly_goal"`
	Remaining     *int      `json:"remaining"`
	Percentage    *float64  `json:"progress_percentage"`
}
