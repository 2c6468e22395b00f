package foodlog

import (
	"errors"

	"github.com/google/uuid"
	util "github.com/healthtrackapp/healthtrack/internal/utils"
	"gorm.io/gorm"
)

type Repository interface {
	Create(e *FoodEntry) error
	FindOwned(id uint, userID uuid.UUID) (*FoodEntry, error)
	FindByDay(userID uuid.UUID, day util.Date) ([]FoodEntry, error)
	FindByDayGrouped(userID uuid.UUID, day util.Date) ([]FoodEntry, error)
	FindInRange(userID uuid.UUID, start, end util.Date) ([]FoodEntry, error)
	FindRecent(userID uuid.UUID, limit int) ([]FoodEntry, error)
	FindRecentByMealType(userID uuid.UUID, mealType string, limit int) ([]FoodEntry, error)
	Update(e *FoodEntry) error
	Delete(id uint, userID uuid.UUID) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(e *FoodEntry) error {
	return r.db.Create(e).Error
}

func (r *repository) FindOwned(id uint, userID uuid.UUID) (*FoodEntry, error) {
	var e FoodEntry
	err := r.db.First(&e, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (r *repository) FindByDay(userID uuid.UUID, day util.Date) ([]FoodEntry, error) {
	var entries []FoodEntry
	err := r.db.
		Where("user_id = ? AND date = ?", userID, day).
		Order("id").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// FindByDayGrouped orders by meal type first so callers can bucket entries
// without re-sorting.
func (r *repository) FindByDayGrouped(userID uuid.UUID, day util.Date) ([]FoodEntry, error) {
	var entries []FoodEntry
	err := r.db.
		Where("user_id = ? AND date = ?", userID, day).
		Order("meal_type, id").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *repository) FindInRange(userID uuid.UUID, start, end util.Date) ([]FoodEntry, error) {
	var entries []FoodEntry
	err := r.db.
		Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end).
		Order("date, id").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *repository) FindRecent(userID uuid.UUID, limit int) ([]FoodEntry, error) {
	var entries []FoodEntry
	err := r.db.
		Where("user_id = ?", userID).
		Order("date DESC, id DESC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *repository) FindRecentByMealType(userID uuid.UUID, mealType string, limit int) ([]FoodEntry, error) {
	var entries []FoodEntry
	err := r.db.
		Where("user_id = ? AND meal_type = ?", userID, mealType).
		Order("date DESC, id DESC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *repository) Update(e *FoodEntry) error {
	return r.db.Save(e).Error
}

func (r *repository) Delete(id uint, userID uuid.UUID) (bool, error) {
	tx := r.db.Delete(&FoodEntry{}, "id = ? AND user_id = ?", id, userID)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}
