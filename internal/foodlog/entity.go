package foodlog

import (
	"time"

	"github.com/google/uuid"
	"github.com/healthtrackapp/healthtrack/internal/user"
	util "github.com/healthtrackapp/healthtrack/internal/utils"
)

// FoodEntry is a single logged food item. The autoincrement id doubles as the
// insertion-order tie-break for every query ordering.
type FoodEntry struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	FoodName string    `gorm:"size:100;not null" json:"food_name"`
	Calories int       `gorm:"not null;check:calories >= 0" json:"calories"`
	Protein  float64   `json:"protein"`
	Carbs    float64   `json:"carbs"`
	Fats     float64   `json:"fats"`
	MealType string    `gorm:"size:20" json:"meal_type,omitempty"`
	Notes    string    `json:"notes,omitempty"`
	Date     util.Date `gorm:"type:date;not null;index" json:"date"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	User     user.User `gorm:"foreignKey:UserID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
