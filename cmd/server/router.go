package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	apiMiddleware "github.com/phrazzld/gym-api/internal/api/middleware"
)

// newRouter creates the application router with all routes and middleware.
func newRouter(h handlers, allowedOrigins []string, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Trace-ID"},
		ExposedHeaders:   []string{"Content-Disposition", "X-Trace-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Route("/persons", func(r chi.Router) {
			r.Post("/", h.persons.CreatePerson)
			r.Get("/", h.persons.ListPersons)
			r.Post("/batch", h.persons.CreatePersons)
			r.Get("/by-gym-type", h.persons.ListPersonsByGymType)

			// Cache inspection
			r.Get("/cache", h.persons.GetCachedPersons)
			r.Get("/cache/stats", h.persons.GetCacheStats)
			r.Delete("/cache/clear", h.persons.ClearCache)

			r.Get("/{id}", h.persons.GetPerson)
			r.Put("/{id}", h.persons.UpdatePerson)
			r.Delete("/{id}", h.persons.DeletePerson)
			r.Put("/{id}/trainer/{trainerId}", h.persons.AssignTrainer)
			r.Put("/{id}/gym/{gymId}", h.persons.AssignGym)
		})

		r.Route("/trainers", func(r chi.Router) {
			r.Post("/", h.trainers.CreateTrainer)
			r.Get("/", h.trainers.ListTrainers)
			r.Get("/{id}", h.trainers.GetTrainer)
			r.Put("/{id}", h.trainers.UpdateTrainer)
			r.Delete("/{id}", h.trainers.DeleteTrainer)
		})

		r.Route("/gyms", func(r chi.Router) {
			r.Post("/", h.gyms.CreateGym)
			r.Get("/", h.gyms.ListGyms)
			r.Get("/{id}", h.gyms.GetGym)
			r.Put("/{id}", h.gyms.UpdateGym)
			r.Delete("/{id}", h.gyms.DeleteGym)
		})

		r.Route("/memberships", func(r chi.Router) {
			r.Post("/person/{personId}", h.memberships.CreateMembership)
			r.Get("/person/{personId}", h.memberships.ListPersonMemberships)
			r.Get("/{id}", h.memberships.GetMembership)
			r.Delete("/{id}", h.memberships.DeleteMembership)
		})

		r.Route("/logs", func(r chi.Router) {
			r.Post("/generate", h.logs.GenerateLogs)
			r.Get("/status/{taskId}", h.logs.GetStatus)
			r.Get("/download/{taskId}", h.logs.DownloadLogs)
		})

		r.Post("/visit/track", h.visits.Track)
		r.Get("/visit/track", h.visits.Track)
		r.Get("/visit/count", h.visits.Count)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			logger.Error("failed to write health check response", slog.String("error", err.Error()))
		}
	})

	return r
}
