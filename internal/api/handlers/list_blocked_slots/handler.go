package list_blocked_slots

import (
	"errors"
	"net/http"

	"github.com/ninoramishvili/OXY-CoachBooking/internal/api/handlers"
	"github.com/ninoramishvili/OXY-CoachBooking/internal/service/availability"
	"github.com/ninoramishvili/OXY-CoachBooking/internal/service/availability/models"
)

const (
	msgInvalidCoachID = "некорректный ID коуча"
	msgInvalidPeriod  = "некорректный период, ожидается from <= to в формате YYYY-MM-DD"
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

// Handle GET /api/v1/coaches/{coachId}/blocked-slots?from=&to=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	coachID, err := handlers.PathInt64(r, "coachId")
	if err != nil {
		h.logger.Warn("GET /coaches/{id}/blocked-slots - Invalid coach ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCoachID)
		return
	}

	from, err := handlers.QueryDate(r, "from")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}
	to, err := handlers.QueryDate(r, "to")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	result, err := h.service.ListBlockedSlots(r.Context(), &models.ListBlockedSlotsRequest{
		CoachID: coachID,
		From:    from,
		To:      to,
	})
	if err != nil {
		if errors.Is(err, availability.ErrInvalidInput) {
			h.logger.Warn("GET /coaches/{id}/blocked-slots - Invalid input: coach_id=%d, error=%v", coachID, err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)
			return
		}
		h.logger.Error("GET /coaches/{id}/blocked-slots - Failed to list: coach_id=%d, error=%v", coachID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /coaches/{id}/blocked-slots - Retrieved: coach_id=%d, count=%d", coachID, len(result.BlockedSlots))
	handlers.RespondJSON(w, http.StatusOK, result)
}
