package goal

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Put("/", h.SetGoals)
	r.Get("/", h.GetGoals)

	return r
}
