package goal

import (
	"time"

	"github.com/google/uuid"
	"github.com/healthtrackapp/healthtrack/internal/user"
)

// Goal holds a user's calorie (and optionally macro) targets. At most one row
// per user; SetGoals upserts in place.
type Goal struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID         uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	User           user.User `gorm:"foreignKey:UserID" json:"-"`
	DailyCalories  int       `json:"daily_calories"`
	WeeklyCalories int       `json:"weekly_calories"`
	ProteinGoal    *float64  `json:"protein_goal,omitempty"`
	CarbGoal       *float64  `json:"carb_goal,omitempty"`
	FatGoal        *float64  `json:"fat_goal,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
