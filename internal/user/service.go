package user

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/healthtrackapp/healthtrack/internal/config"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrNameTaken    = errors.New("user name already taken")
	ErrEmptyName    = errors.New("user name is required")
)

type Service interface {
	Create(ctx context.Context, dto CreateUserDTO) (*UserResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*UserResponse, error)
	GetByName(ctx context.Context, name string) (*UserResponse, error)
	List(ctx context.Context) ([]UserResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, dto CreateUserDTO) (*UserResponse, error) {
	log := config.WithContext(ctx)

	name := strings.TrimSpace(dto.Name)
	if name == "" {
		return nil, ErrEmptyName
	}

	// Conflict check before any write.
	existing, err := s.repo.FindByName(name)
	if err != nil {
		log.WithError(err).Error("Failed to look up user name")
		return nil, err
	}
	if existing != nil {
		return nil, ErrNameTaken
	}

	u := User{
		ID:   uuid.New(),
		Name: name,
	}
	if err := s.repo.Create(&u); err != nil {
		log.WithError(err).Error("Failed to create user")
		return nil, err
	}

	log.WithField("user_id", u.ID).Infof("Created user %s", u.Name)
	return toResponse(&u), nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*UserResponse, error) {
	u, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return toResponse(u), nil
}

func (s *service) GetByName(ctx context.Context, name string) (*UserResponse, error) {
	u, err := s.repo.FindByName(name)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return toResponse(u), nil
}

func (s *service) List(ctx context.Context) ([]UserResponse, error) {
	users, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}

	responses := make([]UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, *toResponse(&users[i]))
	}
	return responses, nil
}

func toResponse(u *User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
