package create_availability_rule

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
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "коуч может изменять только свое расписание"
	msgInvalidRule        = "некорректное правило: ожидаются целые часы и начало раньше конца"
	msgConflict           = "правило на этот день недели уже существует"
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

// Handle POST /api/v1/coaches/{coachId}/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	coachID, err := handlers.PathInt64(r, "coachId")
	if err != nil {
		h.logger.Warn("POST /coaches/{id}/availability - Invalid coach ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCoachID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /coaches/{id}/availability - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req RuleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /coaches/{id}/availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	rule, err := h.service.CreateRule(r.Context(), req.ToServiceRequest(userID, coachID))
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrAccessDenied):
			h.logger.Warn("POST /coaches/{id}/availability - Access denied: coach_id=%d, user_id=%d", coachID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, availability.ErrConflict):
			h.logger.Warn("POST /coaches/{id}/availability - Rule exists: coach_id=%d, day=%d", coachID, *req.DayOfWeek)
			handlers.RespondConflict(w, msgConflict)

		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("POST /coaches/{id}/availability - Invalid rule: coach_id=%d, error=%v", coachID, err)
			handlers.RespondBadRequest(w, msgInvalidRule)

		default:
			h.logger.Error("POST /coaches/{id}/availability - Failed to create rule: coach_id=%d, error=%v", coachID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /coaches/{id}/availability - Rule created: rule_id=%d, coach_id=%d, day=%d",
		rule.ID, coachID, rule.DayOfWeek)
	handlers.RespondJSON(w, http.StatusCreated, rule)
}
