package goal

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(g *Goal) error
	Update(g *Goal) error
	FindByUserID(userID uuid.UUID) (*Goal, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(g *Goal) error {
	return r.db.Create(g).Error
}

func (r *repository) Update(g *Goal) error {
	return r.db.Save(g).Error
}

func (r *repository) FindByUserID(userID uuid.UUID) (*Goal, error) {
	var g Goal
	if err := r.db.First(&g, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &g, nil
}
