package handler

import (
	"net/http"

	"dsc/core"
	"dsc/handler/auth"
	"dsc/handler/render"
	"dsc/handler/rest"

	"github.com/go-chi/chi"
	"github.com/twitchtv/twirp"
)

// Server server
type Server struct {
	engine   core.IEngine
	monitor  rest.UnhealthyLister
	observer rest.LiquidationObserver
	faucet   rest.Faucet
}

// New new server function
func New(
	engine core.IEngine,
	monitor rest.UnhealthyLister,
	observer rest.LiquidationObserver,
	faucet rest.Faucet,
) Server {
	return Server{
		engine:   engine,
		monitor:  monitor,
		observer: observer,
		faucet:   faucet,
	}
}

// HandleRestAPI handle restful apis
func (s Server) HandleRestAPI() http.Handler {
	r := chi.NewRouter()
	r.Use(resetRoutePath)
	r.Use(render.WrapResponse)
	r.Use(auth.HandleAuthentication())
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		render.Error(w, twirp.NotFoundError("not found"))
	})

	r.Mount("/", rest.Handle(s.engine, s.monitor, s.observer, s.faucet))
	return r
}

func resetRoutePath(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if c := chi.RouteContext(ctx); c != nil {
			c.RoutePath = r.URL.Path
		}

		next.ServeHTTP(w, r)
	}

	return http.HandlerFunc(fn)
}
