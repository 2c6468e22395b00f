package foodlog

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/", h.LogMeal)
	r.Get("/", h.List)
	r.Patch("/{entryID}", h.Update)
	r.Delete("/{entryID}", h.Delete)

	return r
}
