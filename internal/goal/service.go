package goal

import (
	"context"
	"math"

	"github.com/google/uuid"
	"github.com/healthtrackapp/healthtrack/internal/config"
	"github.com/healthtrackapp/healthtrack/internal/foodlog"
	util "github.com/healthtrackapp/healthtrack/internal/utils"
)

type Service interface {
	SetGoals(ctx context.Context, userID uuid.UUID, dto SetGoalsDTO) (*GoalResponse, error)
	GetGoals(ctx context.Context, userID uuid.UUID) (*GoalResponse, error)
	GetDailyProgress(ctx context.Context, userID uuid.UUID, day util.Date) (*DailyProgressResponse, error)
	GetWeeklyProgress(ctx context.Context, userID uuid.UUID, startDate util.Date) (*WeeklyProgressResponse, error)
}

type service struct {
	repo     Repository
	foodRepo foodlog.Repository
}

func NewService(repo Repository, foodRepo foodlog.Repository) Service {
	return &service{repo: repo, foodRepo: foodRepo}
}

// SetGoals creates the user's goal row on first call and updates it in place
// afterwards. Calorie values overwrite unconditionally; omitted macro goals
// keep their previous values. Goal values are deliberately not checked for
// positivity: a zero goal disables remaining/percentage in progress reports.
func (s *service) SetGoals(ctx context.Context, userID uuid.UUID, dto SetGoalsDTO) (*GoalResponse, error) {
	log := config.WithContext(ctx)

	g, err := s.repo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	created := false
	if g == nil {
		g = &Goal{ID: uuid.New(), UserID: userID}
		created = true
	}

	g.DailyCalories = dto.DailyCalories
	g.WeeklyCalories = dto.WeeklyCalories
	if dto.ProteinGoal != nil {
		g.ProteinGoal = dto.ProteinGoal
	}
	if dto.CarbGoal != nil {
		g.CarbGoal = dto.CarbGoal
	}
	if dto.FatGoal != nil {
		g.FatGoal = dto.FatGoal
	}

	if created {
		err = s.repo.Create(g)
	} else {
		err = s.repo.Update(g)
	}
	if err != nil {
		log.WithError(err).Error("Failed to set goals")
		return nil, err
	}

	return toResponse(g), nil
}

// GetGoals returns nil, nil when the user has not set goals yet.
func (s *service) GetGoals(ctx context.Context, userID uuid.UUID) (*GoalResponse, error) {
	g, err := s.repo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, nil
	}
	return toResponse(g), nil
}

func (s *service) GetDailyProgress(ctx context.Context, userID uuid.UUID, day util.Date) (*DailyProgressResponse, error) {
	g, err := s.repo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	entries, err := s.foodRepo.FindByDay(userID, day)
	if err != nil {
		return nil, err
	}

	total := sumCalories(entries)
	resp := &DailyProgressResponse{
		Date:          day,
		TotalCalories: total,
	}
	if g != nil {
		resp.DailyGoal = intPtr(g.DailyCalories)
		resp.Remaining, resp.Percentage = progressAgainst(g.DailyCalories, total)
	}
	return resp, nil
}

// GetWeeklyProgress reports over the inclusive 7-day window
// [startDate, startDate+6], against the weekly calorie goal.
func (s *service) GetWeeklyProgress(ctx context.Context, userID uuid.UUID, startDate util.Date) (*WeeklyProgressResponse, error) {
	endDate := startDate.AddDays(6)

	g, err := s.repo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	entries, err := s.foodRepo.FindInRange(userID, startDate, endDate)
	if err != nil {
		return nil, err
	}

	total := sumCalories(entries)
	resp := &WeeklyProgressResponse{
		StartDate:     startDate,
		EndDate:       endDate,
		TotalCalories: total,
	}
	if g != nil {
		resp.WeeklyGoal = intPtr(g.WeeklyCalories)
		resp.Remaining, resp.Percentage = progressAgainst(g.WeeklyCalories, total)
	}
	return resp, nil
}

// progressAgainst computes remaining and percentage for a non-zero goal.
// The percentage is rounded to two decimals and then clamped at 100: being
// over goal shows as remaining == 0, never as a percentage above 100.
func progressAgainst(goalCalories, total int) (*int, *float64) {
	if goalCalories == 0 {
		return nil, nil
	}

	remaining := goalCalories - total
	if remaining < 0 {
		remaining = 0
	}

	var pct *float64
	if goalCalories > 0 {
		v := math.Round(float64(total)/float64(goalCalories)*100*100) / 100
		if v > 100 {
			v = 100
		}
		pct = &v
	}
	return &remaining, pct
}

func sumCalories(entries []foodlog.FoodEntry) int {
	total := 0
	for i := range entries {
		total += entries[i].Calories
	}
	return total
}

func intPtr(v int) *int {
	return &v
}

func toResponse(g *Goal) *GoalResponse {
	return &GoalResponse{
		ID:             g.ID,
		UserID:         g.UserID,
		DailyCalories:  g.DailyCalories,
		WeeklyCalories: g.WeeklyCalories,
		ProteinGoal:    g.ProteinGoal,
		CarbGoal:       g.CarbGoal,
		FatGoal:        g.FatGoal,
		CreatedAt:      g.CreatedAt,
		UpdatedAt:      g.UpdatedAt,
	}
}
