package foodlog

import (
	"context"
	"errors"
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/healthtrackapp/healthtrack/internal/config"
	util "github.com/healthtrackapp/healthtrack/internal/utils"
)

var (
	ErrNegativeCalories = errors.New("calories cannot be negative")
	ErrNegativeMacro    = errors.New("macro values cannot be negative")
	ErrEmptyFoodName    = errors.New("food name is required")
	ErrInvalidMealType  = errors.New("invalid meal type, must be one of: breakfast, lunch, dinner, snack")
)

var validMealTypes = map[string]bool{
	"breakfast": true,
	"lunch":     true,
	"dinner":    true,
	"snack":     true,
}

// ValidMealType reports whether s is one of the four known meal labels,
// case-insensitively.
func ValidMealType(s string) bool {
	return validMealTypes[strings.ToLower(s)]
}

type Service interface {
	LogMeal(ctx context.Context, userID uuid.UUID, dto LogMealDTO) (*FoodEntryResponse, error)
	GetDailyLogs(ctx context.Context, userID uuid.UUID, day util.Date) ([]FoodEntryResponse, error)
	GetLogsInRange(ctx context.Context, userID uuid.UUID, start, end util.Date) ([]FoodEntryResponse, error)
	UpdateEntry(ctx context.Context, entryID uint, userID uuid.UUID, dto UpdateEntryDTO) (*FoodEntryResponse, error)
	DeleteEntry(ctx context.Context, entryID uint, userID uuid.UUID) (bool, error)
	GetRecentLogs(ctx context.Context, userID uuid.UUID, limit int) ([]FoodEntryResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// round1 matches the storage rule for macros: one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func validateMacro(v *float64) (float64, error) {
	if v == nil {
		return 0, nil
	}
	if *v < 0 {
		return 0, ErrNegativeMacro
	}
	return round1(*v), nil
}

func (s *service) LogMeal(ctx context.Context, userID uuid.UUID, dto LogMealDTO) (*FoodEntryResponse, error) {
	log := config.WithContext(ctx)

	if strings.TrimSpace(dto.FoodName) == "" {
		return nil, ErrEmptyFoodName
	}
	if dto.Calories < 0 {
		return nil, ErrNegativeCalories
	}
	if dto.MealType != "" && !ValidMealType(dto.MealType) {
		return nil, ErrInvalidMealType
	}

	protein, err := validateMacro(dto.Protein)
	if err != nil {
		return nil, err
	}
	carbs, err := validateMacro(dto.Carbs)
	if err != nil {
		return nil, err
	}
	fats, err := validateMacro(dto.Fats)
	if err != nil {
		return nil, err
	}

	day := util.Today()
	if dto.Date != nil {
		day = *dto.Date
	}

	entry := FoodEntry{
		FoodName: dto.FoodName,
		Calories: dto.Calories,
		Protein:  protein,
		Carbs:    carbs,
		Fats:     fats,
		MealType: strings.ToLower(dto.MealType),
		Notes:    dto.Notes,
		Date:     day,
		UserID:   userID,
	}

	if err := s.repo.Create(&entry); err != nil {
		log.WithError(err).Error("Failed to log meal")
		return nil, err
	}

	return ToResponse(&entry), nil
}

func (s *service) GetDailyLogs(ctx context.Context, userID uuid.UUID, day util.Date) ([]FoodEntryResponse, error) {
	entries, err := s.repo.FindByDay(userID, day)
	if err != nil {
		return nil, err
	}
	return ToResponses(entries), nil
}

func (s *service) GetLogsInRange(ctx context.Context, userID uuid.UUID, start, end util.Date) ([]FoodEntryResponse, error) {
	entries, err := s.repo.FindInRange(userID, start, end)
	if err != nil {
		return nil, err
	}
	return ToResponses(entries), nil
}

// UpdateEntry overwrites only the supplied fields. A nil response with nil
// error means the entry does not exist or is not owned by userID.
func (s *service) UpdateEntry(ctx context.Context, entryID uint, userID uuid.UUID, dto UpdateEntryDTO) (*FoodEntryResponse, error) {
	log := config.WithContext(ctx)

	entry, err := s.repo.FindOwned(entryID, userID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, nil
	}

	if dto.FoodName != nil {
		if strings.TrimSpace(*dto.FoodName) == "" {
			return nil, ErrEmptyFoodName
		}
		entry.FoodName = *dto.FoodName
	}
	if dto.Calories != nil {
		if *dto.Calories < 0 {
			return nil, ErrNegativeCalories
		}
		entry.Calories = *dto.Calories
	}
	if dto.Protein != nil {
		v, err := validateMacro(dto.Protein)
		if err != nil {
			return nil, err
		}
		entry.Protein = v
	}
	if dto.Carbs != nil {
		v, err := validateMacro(dto.Carbs)
		if err != nil {
			return nil, err
		}
		entry.Carbs = v
	}
	if dto.Fats != nil {
		v, err := validateMacro(dto.Fats)
		if err != nil {
			return nil, err
		}
		entry.Fats = v
	}
	if dto.MealType != nil {
		if *dto.MealType != "" && !ValidMealType(*dto.MealType) {
			return nil, ErrInvalidMealType
		}
		entry.MealType = strings.ToLower(*dto.MealType)
	}
	if dto.Notes != nil {
		entry.Notes = *dto.Notes
	}
	if dto.Date != nil {
		entry.Date = *dto.Date
	}

	if err := s.repo.Update(entry); err != nil {
		log.WithError(err).Error("Failed to update food entry")
		return nil, err
	}

	return ToResponse(entry), nil
}

// DeleteEntry is idempotent: a missing or non-owned entry yields false, not
// an error.
func (s *service) DeleteEntry(ctx context.Context, entryID uint, userID uuid.UUID) (bool, error) {
	log := config.WithContext(ctx)

	deleted, err := s.repo.Delete(entryID, userID)
	if err != nil {
		log.WithError(err).Error("Failed to delete food entry")
		return false, err
	}
	return deleted, nil
}

func (s *service) GetRecentLogs(ctx context.Context, userID uuid.UUID, limit int) ([]FoodEntryResponse, error) {
	if limit <= 0 {
		limit = 10
	}
	entries, err := s.repo.FindRecent(userID, limit)
	if err != nil {
		return nil, err
	}
	return ToResponses(entries), nil
}
