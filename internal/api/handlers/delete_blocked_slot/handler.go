package delete_blocked_slot

import (
	"errors"
	"net/http"

	"github.com/ninoramishvili/OXY-CoachBooking/internal/api/handlers"
	"github.com/ninoramishvili/OXY-CoachBooking/internal/api/middleware"
	"github.com/ninoramishvili/OXY-CoachBooking/internal/service/availability"
	"github.com/ninoramishvili/OXY-CoachBooking/internal/service/availability/models"
)

const (
	msgInvalidCoachID       = "некорректный ID коуча"
	msgInvalidBlockedSlotID = "некорректный ID блокировки"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgForbidden            = "коуч может изменять только свое расписание"
	msgNotFound             = "блокировка не найдена"
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

// Handle DELETE /api/v1/coaches/{coachId}/blocked-slots/{blockedSlotId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	coachID, err := handlers.PathInt64(r, "coachId")
	if err != nil {
		h.logger.Warn("DELETE /coaches/{id}/blocked-slots/{slotId} - Invalid coach ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCoachID)
		return
	}

	blockedSlotID, err := handlers.PathInt64(r, "blockedSlotId")
	if err != nil {
		h.logger.Warn("DELETE /coaches/{id}/blocked-slots/{slotId} - Invalid blocked slot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBlockedSlotID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /coaches/{id}/blocked-slots/{slotId} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	err = h.service.UnblockSlot(r.Context(), &models.UnblockSlotRequest{
		UserID:        userID,
		CoachID:       coachID,
		BlockedSlotID: blockedSlotID,
	})
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrAccessDenied):
			h.logger.Warn("DELETE /coaches/{id}/blocked-slots/{slotId} - Access denied: coach_id=%d, user_id=%d", coachID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, availability.ErrBlockedSlotNotFound):
			h.logger.Warn("DELETE /coaches/{id}/blocked-slots/{slotId} - Not found: id=%d, coach_id=%d", blockedSlotID, coachID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, availability.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidBlockedSlotID)

		default:
			h.logger.Error("DELETE /coaches/{id}/blocked-slots/{slotId} - Failed to unblock: id=%d, error=%v", blockedSlotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /coaches/{id}/blocked-slots/{slotId} - Unblocked: id=%d, coach_id=%d", blockedSlotID, coachID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
