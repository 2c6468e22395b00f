package mealplan

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/healthtrackapp/healthtrack/internal/config"
	"github.com/healthtrackapp/healthtrack/internal/foodlog"
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

func dateQuery(r *http.Request, key string) (util.Date, error) {
	if v := r.URL.Query().Get(key); v != "" {
		return util.ParseDate(v)
	}
	return util.Today(), nil
}

func (h *Handler) LogMeal(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, err := userIDParam(r)
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}

	var dto LogMealDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := util.Validate.Struct(dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	response, err := h.service.LogMeal(r.Context(), userID, dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidMealType),
			errors.Is(err, foodlog.ErrNegativeCalories),
			errors.Is(err, foodlog.ErrNegativeMacro),
			errors.Is(err, foodlog.ErrEmptyFoodName):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			log.WithError(err).Error("Failed to log meal")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusCreated, response)
}

func (h *Handler) DailyGrouped(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, err := userIDParam(r)
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}
	day, err := dateQuery(r, "date")
	if err != nil {
		http.Error(w, "invalid date", http.StatusBadRequest)
		return
	}

	response, err := h.service.GetDailyLogsGrouped(r.Context(), userID, day)
	if err != nil {
		log.WithError(err).Error("Failed to group daily logs")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, response)
}

func (h *Handler) WeeklyNutrition(w http.ResponseWriter, r *http.Request) {
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

	response, err := h.service.GetWeeklyNutrition(r.Context(), userID, start)
	if err != nil {
		log.WithError(err).Error("Failed to compute weekly nutrition")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, response)
}

func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, err := userIDParam(r)
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}

	mealType := r.URL.Query().Get("meal_type")
	limit := 5
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err = strconv.Atoi(v)
		if err != nil || limit <= 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
	}

	response, err := h.service.GetMealHistory(r.Context(), userID, mealType, limit)
	if err != nil {
		if errors.Is(err, ErrInvalidMealType) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.WithError(err).Error("Failed to get meal history")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, response)
}

func (h *Handler) Suggest(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, err := userIDParam(r)
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}
	day, err := dateQuery(r, "date")
	if err != nil {
		http.Error(w, "invalid date", http.StatusBadRequest)
		return
	}

	response, err := h.service.SuggestForDate(r.Context(), userID, day)
	if err != nil {
		if errors.Is(err, ErrGoalNotSet) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to suggest meal plan")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, response)
}
