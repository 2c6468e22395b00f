package foodlog

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

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

func writeValidationError(w http.ResponseWriter, err error) bool {
	if errors.Is(err, ErrNegativeCalories) || errors.Is(err, ErrNegativeMacro) ||
		errors.Is(err, ErrEmptyFoodName) || errors.Is(err, ErrInvalidMealType) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return true
	}
	return false
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
		if writeValidationError(w, err) {
			return
		}
		log.WithError(err).Error("Failed to log meal")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusCreated, response)
}

// List serves three query shapes: ?date= for one day, ?start=&end= for an
// inclusive range, and ?limit= (or nothing) for most recent entries.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, err := userIDParam(r)
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}

	q := r.URL.Query()

	var responses []FoodEntryResponse
	switch {
	case q.Get("date") != "":
		day, err := util.ParseDate(q.Get("date"))
		if err != nil {
			http.Error(w, "invalid date", http.StatusBadRequest)
			return
		}
		responses, err = h.service.GetDailyLogs(r.Context(), userID, day)
		if err != nil {
			log.WithError(err).Error("Failed to list daily logs")
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

	case q.Get("start") != "" || q.Get("end") != "":
		start, err := util.ParseDate(q.Get("start"))
		if err != nil {
			http.Error(w, "invalid start date", http.StatusBadRequest)
			return
		}
		end, err := util.ParseDate(q.Get("end"))
		if err != nil {
			http.Error(w, "invalid end date", http.StatusBadRequest)
			return
		}
		responses, err = h.service.GetLogsInRange(r.Context(), userID, start, end)
		if err != nil {
			log.WithError(err).Error("Failed to list logs in range")
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

	default:
		limit := 10
		if v := q.Get("limit"); v != "" {
			limit, err = strconv.Atoi(v)
			if err != nil || limit <= 0 {
				http.Error(w, "invalid limit", http.StatusBadRequest)
				return
			}
		}
		responses, err = h.service.GetRecentLogs(r.Context(), userID, limit)
		if err != nil {
			log.WithError(err).Error("Failed to list recent logs")
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
	}

	config.JSON(w, http.StatusOK, responses)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, err := userIDParam(r)
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}
	entryID, err := strconv.ParseUint(chi.URLParam(r, "entryID"), 10, 64)
	if err != nil {
		http.Error(w, "invalid entry id", http.StatusBadRequest)
		return
	}

	var dto UpdateEntryDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := util.Validate.Struct(dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	response, err := h.service.UpdateEntry(r.Context(), uint(entryID), userID, dto)
	if err != nil {
		if writeValidationError(w, err) {
			return
		}
		log.WithError(err).Error("Failed to update food entry")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if response == nil {
		http.Error(w, "entry not found", http.StatusNotFound)
		return
	}

	config.JSON(w, http.StatusOK, response)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, err := userIDParam(r)
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}
	entryID, err := strconv.ParseUint(chi.URLParam(r, "entryID"), 10, 64)
	if err != nil {
		http.Error(w, "invalid entry id", http.StatusBadRequest)
		return
	}

	deleted, err := h.service.DeleteEntry(r.Context(), uint(entryID), userID)
	if err != nil {
		log.WithError(err).Error("Failed to delete food entry")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if !deleted {
		http.Error(w, "entry not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
