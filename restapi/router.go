package restapi

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// every response carries the standard headers, errors included
func standardHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		AddStandardHeaders(w)
		next.ServeHTTP(w, r)
	})
}

func NewRouter(api *API) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	// request lines go through the standard logger so LOG_FILE picks them up too
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{Logger: log.Default(), NoColor: true}))
	r.Use(middleware.Recoverer)
	r.Use(standardHeaders)

	r.Get("/health", api.HealthHandler)

	r.Route("/api/events", func(r chi.Router) {
		r.Get("/", api.ListEventsHandler)
		r.Post("/", api.CreateEventHandler)
		r.Get("/search", api.SearchEventsByParamHandler)
		r.Get("/search/{query}", api.SearchEventsHandler)
		r.Get("/{id}", api.GetEventHandler)
		r.Put("/{id}", api.UpdateEventHandler)
		r.Delete("/{id}", api.DeleteEventHandler)
	})

	return r
}
