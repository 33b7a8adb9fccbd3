package create_blocked_slot

import (
	"errors"
	"net/http"

	"github.com/ninoramishvili/OXY-CoachBooking/internal/api/handlers"
	"github.com/ninoramishvili/OXY-CoachBooking/internal/api/middleware"
	"github.com/ninoramishvili/OXY-CoachBooking/internal/service/availability"
)

const (
	msgInvalidCoachID     = "некорректный ID коуча"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "коуч может изменять только свое расписание"
	msgInvalidSlot        = "некорректное время блокировки, ожидается целый час HH:00"
	msgConflict           = "этот час уже заблокирован"
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

// Handle POST /api/v1/coaches/{coachId}/blocked-slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	coachID, err := handlers.PathInt64(r, "coachId")
	if err != nil {
		h.logger.Warn("POST /coaches/{id}/blocked-slots - Invalid coach ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCoachID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /coaches/{id}/blocked-slots - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req BlockSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /coaches/{id}/blocked-slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest(userID, coachID)
	if err != nil {
		h.logger.Warn("POST /coaches/{id}/blocked-slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	slot, err := h.service.BlockSlot(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrAccessDenied):
			h.logger.Warn("POST /coaches/{id}/blocked-slots - Access denied: coach_id=%d, user_id=%d", coachID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, availability.ErrConflict):
			h.logger.Warn("POST /coaches/{id}/blocked-slots - Already blocked: coach_id=%d, date=%s, time=%s",
				coachID, req.Date, req.Time)
			handlers.RespondConflict(w, msgConflict)

		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("POST /coaches/{id}/blocked-slots - Invalid input: coach_id=%d, error=%v", coachID, err)
			handlers.RespondBadRequest(w, msgInvalidSlot)

		default:
			h.logger.Error("POST /coaches/{id}/blocked-slots - Failed to block slot: coach_id=%d, error=%v", coachID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /coaches/{id}/blocked-slots - Slot blocked: id=%d, coach_id=%d, date=%s, time=%s",
		slot.ID, coachID, slot.Date, slot.Time)
	handlers.RespondJSON(w, http.StatusCreated, slot)
}
