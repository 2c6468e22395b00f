package user

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/healthtrackapp/healthtrack/internal/config"
	util "github.com/healthtrackapp/healthtrack/internal/utils"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto CreateUserDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := util.Validate.Struct(dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	response, err := h.service.Create(r.Context(), dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrNameTaken):
			http.Error(w, err.Error(), http.StatusConflict)
		case errors.Is(err, ErrEmptyName):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			log.WithError(err).Error("Failed to create user")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusCreated, response)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}

	response, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to get user")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, response)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	responses, err := h.service.List(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list users")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, responses)
}
