package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"trip-planner-service/internal/api/dto"
	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/ports"
	"trip-planner-service/internal/services"
)

// TravelHandler plans trips and persists the result for later retrieval.
type TravelHandler struct {
	Planner *services.TripPlanner
	Repo    ports.TripPlanRepository
}

// PlanRoute handles POST /api/v1/travel/route: validate, plan, persist,
// respond with the full plan plus its share link.
func (h *TravelHandler) PlanRoute(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.TravelRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	passengers := req.Passengers
	if passengers == 0 {
		passengers = 1
	}

	svcReq := services.PlanTripRequest{
		Origin:         req.Origin,
		Destination:    req.Destination,
		Transport:      domain.TransportType(req.TransportationType),
		Passengers:     passengers,
		CarSpec:        req.CarSpecifications.ToDomain(),
		MotorcycleSpec: req.MotorcycleSpecifications.ToDomain(),
	}
	if req.Budget != nil {
		svcReq.BudgetMin = req.Budget.MinAmount
		svcReq.BudgetMax = req.Budget.MaxAmount
	}
	if req.OvernightStay != nil {
		svcReq.OvernightRequired = req.OvernightStay.Required
	}

	plan, err := h.Planner.PlanTrip(r.Context(), svcReq)
	if err != nil {
		writePlanningError(w, r, err)
		return
	}

	if err := h.Repo.Save(r.Context(), plan); err != nil {
		log.Printf("save plan failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	shareURL := services.BuildShareLink(plan.Origin, plan.Destination, plan.Stops, plan.Transport)
	writeJSON(w, r, http.StatusOK, dto.NewTravelResponse(plan, shareURL))
}

// writePlanningError maps domain failures onto HTTP statuses. Typed domain
// errors keep their message; everything else collapses to a generic 500.
func writePlanningError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		ve  *domain.ValidationError
		ire *domain.InsufficientRangeError
		re  *domain.InvalidRouteError
		pe  *services.ProviderError
	)

	switch {
	case errors.As(err, &ve):
		writeError(w, r, http.StatusBadRequest, ve.Error())
	case errors.As(err, &ire):
		writeError(w, r, http.StatusUnprocessableEntity, ire.Error())
	case errors.As(err, &re):
		writeError(w, r, http.StatusBadRequest, re.Error())
	case errors.As(err, &pe):
		log.Printf("planning provider failed: %v", err)
		writeError(w, r, http.StatusBadGateway, "upstream provider unavailable")
	default:
		log.Printf("plan trip failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}
