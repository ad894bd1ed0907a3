package hc

import (
	"context"
	"net/http"
	"time"

	"dsc/handler/render"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
)

// Check a readiness probe, a non nil error fails the health check
type Check func(ctx context.Context) error

// Handle handle hc request
func Handle(ver string, checks ...Check) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.NoCache)
	r.Get("/", handle(ver, checks))
	return r
}

func handle(version string, checks []Check) http.HandlerFunc {
	started := time.Now()
	return func(w http.ResponseWriter, r *http.Request) {
		for _, check := range checks {
			if err := check(r.Context()); err != nil {
				render.Error(w, err)
				return
			}
		}

		render.JSON(w, render.H{
			"uptime":  time.Since(started).Truncate(time.Millisecond).String(),
			"version": version,
		})
	}
}
