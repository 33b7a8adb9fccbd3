package delete_availability_rule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/ninoramishvili/OXY-CoachBooking/internal/api/handlers"
	"github.com/ninoramishvili/OXY-CoachBooking/internal/api/middleware"
	"github.com/ninoramishvili/OXY-CoachBooking/internal/service/availability"
	"github.com/ninoramishvili/OXY-CoachBooking/internal/service/availability/models"
)

const (
	msgInvalidCoachID   = "некорректный ID коуча"
	msgInvalidDayOfWeek = "некорректный день недели, ожидается 0..6"
	msgMissingUserID    = "отсутствует ID пользователя"
	msgForbidden        = "коуч может изменять только свое расписание"
	msgNotFound         = "правило на этот день недели не найдено"
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

// Handle DELETE /api/v1/coaches/{coachId}/availability/{dayOfWeek}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	coachID, err := handlers.PathInt64(r, "coachId")
	if err != nil {
		h.logger.Warn("DELETE /coaches/{id}/availability/{day} - Invalid coach ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCoachID)
		return
	}

	dayOfWeek, err := strconv.Atoi(mux.Vars(r)["dayOfWeek"])
	if err != nil {
		h.logger.Warn("DELETE /coaches/{id}/availability/{day} - Invalid day of week: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDayOfWeek)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /coaches/{id}/availability/{day} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	err = h.service.DeleteRule(r.Context(), &models.DeleteRuleRequest{
		UserID:    userID,
		CoachID:   coachID,
		DayOfWeek: dayOfWeek,
	})
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrAccessDenied):
			h.logger.Warn("DELETE /coaches/{id}/availability/{day} - Access denied: coach_id=%d, user_id=%d", coachID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, availability.ErrRuleNotFound):
			h.logger.Warn("DELETE /coaches/{id}/availability/{day} - Rule not found: coach_id=%d, day=%d", coachID, dayOfWeek)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, availability.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidDayOfWeek)

		default:
			h.logger.Error("DELETE /coaches/{id}/availability/{day} - Failed to delete rule: coach_id=%d, error=%v", coachID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /coaches/{id}/availability/{day} - Rule deleted: coach_id=%d, day=%d", coachID, dayOfWeek)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
