package get_availability

import (
	"errors"
	"net/http"

	"github.com/ninoramishvili/OXY-CoachBooking/internal/api/handlers"
	"github.com/ninoramishvili/OXY-CoachBooking/internal/service/availability"
)

const (
	msgInvalidCoachID = "некорректный ID коуча"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/coaches/{coachId}/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	coachID, err := handlers.PathInt64(r, "coachId")
	if err != nil {
		h.logger.Warn("GET /coaches/{id}/availability - Invalid coach ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCoachID)
		return
	}

	result, err := h.service.GetWeeklyTemplate(r.Context(), coachID)
	if err != nil {
		if errors.Is(err, availability.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgInvalidCoachID)
			return
		}
		h.logger.Error("GET /coaches/{id}/availability - Failed to get template: coach_id=%d, error=%v", coachID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /coaches/{id}/availability - Template retrieved: coach_id=%d, rules=%d",
		coachID, len(result.Rules))
	handlers.RespondJSON(w, http.StatusOK, result)
}
