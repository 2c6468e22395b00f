package mealplan

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/", h.LogMeal)
	r.Get("/grouped", h.DailyGrouped)
	r.Get("/history", h.History)

	return r
}
