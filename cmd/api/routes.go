package main

import (
	"expvar"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func (app *application) routes() http.Handler {
	router := chi.NewRouter()

	// Router
	router.NotFound(app.notFoundResponse)
	router.MethodNotAllowed(app.methodNotAllowedResponse)

	// Middleware
	router.Use(app.metrics)
	router.Use(app.recoverPanic)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: app.config.cors.trustedOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))
	router.Use(app.rateLimit)

	// Healthcheck
	router.Get("/v1/healthcheck", app.HealthCheck)
	router.Method(http.MethodGet, "/v1/metrics", expvar.Handler())

	// Game Endpoints
	router.Get("/v1/game", app.GetTodaysGames)

	// Ticket Endpoints
	router.Route("/v1/ticket", func(router chi.Router) {
		router.Post("/", app.CreateTicket)
		router.Get("/", app.GetAllTickets)
		router.Post("/refresh", app.RefreshAllTickets)
		router.Get("/{id}", app.GetTicket)
		router.Delete("/{id}", app.DeleteTicket)
		router.Post("/{id}/refresh", app.RefreshTicket)
	})

	return router
}
