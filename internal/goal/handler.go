package goal

import (
	"encoding/json"
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

func userIDParam(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "userID"))
}

func (h *Handler) SetGoals(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, err := userIDParam(r)
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}

	var dto SetGoalsDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := util.Validate.Struct(dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	response, err := h.service.SetGoals(r.Context(), userID, dto)
	if err != nil {
		log.WithError(err).Error("Failed to set goals")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, response)
}

func (h *Handler) GetGoals(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, err := userIDParam(r)
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}

	response, err := h.service.GetGoals(r.Context(), userID)
	if err != nil {
		log.WithError(err).Error("Failed to get goals")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if response == nil {
		http.Error(w, "goals not set", http.StatusNotFound)
		return
	}

	config.JSON(w, http.StatusOK, response)
}

func (h *Handler) DailyProgress(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, err := userIDParam(r)
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}

	day := util.Today()
	if v := r.URL.Query().Get("date"); v != "" {
		day, err = util.ParseDate(v)
		if err != nil {
			http.Error(w, "invalid date", http.StatusBadRequest)
			return
		}
	}

	response, err := h.service.GetDailyProgress(r.Context(), userID, day)
	if err != nil {
		log.WithError(err).Error("Failed to compute daily progress")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, response)
}

func (h *Handler) WeeklyProgress(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, err := userIDParam(r)
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}

	v := r.URL.Query().Get("start")
	if v == "" {
		http.Error(w, "start date required", http.StatusBadRequest)
		return
	}
	start, err := util.ParseDate(v)
	if err != nil {
		http.Error(w, "invalid start date", http.StatusBadRequest)
		return
	}

	response, err := h.service.GetWeeklyProgress(r.Context(), userID, start)
	if err != nil {
		log.WithError(err).Error("Failed to compute weekly progress")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, response)
}
