package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"trip-planner-service/internal/api/dto"
	"trip-planner-service/internal/ports"
	"trip-planner-service/internal/services"
)

// PlanHandler serves previously computed plans.
type PlanHandler struct {
	Repo ports.TripPlanRepository
}

// Serve handles GET /api/v1/travel/plans/{id} and
// GET /api/v1/travel/plans/{id}/share.
func (h *PlanHandler) Serve(prefix string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.Header().Set("Allow", http.MethodGet)
			writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		rest := strings.Trim(strings.TrimPrefix(r.URL.Path, prefix), "/")
		if rest == "" {
			writeError(w, r, http.StatusBadRequest, "plan id is required")
			return
		}

		id := rest
		share := false
		if strings.HasSuffix(rest, "/share") {
			id = strings.TrimSuffix(rest, "/share")
			share = true
		}
		if id == "" || strings.Contains(id, "/") {
			writeError(w, r, http.StatusNotFound, "plan not found")
			return
		}

		plan, err := h.Repo.Get(r.Context(), id)
		if errors.Is(err, ports.ErrPlanNotFound) {
			writeError(w, r, http.StatusNotFound, "plan not found")
			return
		}
		if err != nil {
			log.Printf("get plan %s failed: %v", id, err)
			writeError(w, r, http.StatusInternalServerError, "internal server error")
			return
		}

		shareURL := services.BuildShareLink(plan.Origin, plan.Destination, plan.Stops, plan.Transport)
		if share {
			writeJSON(w, r, http.StatusOK, dto.ShareResponse{ShareURL: shareURL})
			return
		}

		writeJSON(w, r, http.StatusOK, dto.NewTravelResponse(plan, shareURL))
	}
}
