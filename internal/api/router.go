package api

import (
	"net/http"

	"trip-planner-service/internal/api/handlers"
	"trip-planner-service/internal/ports"
	"trip-planner-service/internal/services"
)

const plansPrefix = "/api/v1/travel/plans"

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(planner *services.TripPlanner, repo ports.TripPlanRepository) http.Handler {
	mux := http.NewServeMux()

	travelHandler := &handlers.TravelHandler{Planner: planner, Repo: repo}
	planHandler := &handlers.PlanHandler{Repo: repo}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/api/v1/travel/route", travelHandler.PlanRoute)
	mux.HandleFunc(plansPrefix+"/", planHandler.Serve(plansPrefix))

	return loggingMiddleware(mux)
}
