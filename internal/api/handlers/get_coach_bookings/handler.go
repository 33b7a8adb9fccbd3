package get_coach_bookings

import (
	"errors"
	"net/http"

	"github.com/ninoramishvili/OXY-CoachBooking/internal/api/handlers"
	"github.com/ninoramishvili/OXY-CoachBooking/internal/api/middleware"
	"github.com/ninoramishvili/OXY-CoachBooking/internal/service/bookings"
	"github.com/ninoramishvili/OXY-CoachBooking/internal/service/bookings/models"
)

const (
	msgInvalidCoachID = "некорректный ID коуча"
	msgMissingUserID  = "отсутствует ID пользователя"
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidFlag    = "некорректное значение includeInactive"
	msgInvalidInput   = "некорректные параметры запроса"
	msgForbidden      = "доступ запрещен"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/coaches/{coachId}/bookings?from=&to=&status=&includeInactive=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	coachID, err := handlers.PathInt64(r, "coachId")
	if err != nil {
		h.logger.Warn("GET /coaches/{id}/bookings - Invalid coach ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCoachID)
		return
	}

	callerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /coaches/{id}/bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	from, err := handlers.QueryDate(r, "from")
	if err != nil {
		h.logger.Warn("GET /coaches/{id}/bookings - Invalid from: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	to, err := handlers.QueryDate(r, "to")
	if err != nil {
		h.logger.Warn("GET /coaches/{id}/bookings - Invalid to: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	includeInactive, err := handlers.QueryBool(r, "includeInactive")
	if err != nil {
		h.logger.Warn("GET /coaches/{id}/bookings - Invalid includeInactive: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFlag)
		return
	}

	serviceReq := &models.GetCoachBookingsRequest{
		CallerID:        callerID,
		CoachID:         coachID,
		StartDate:       from,
		EndDate:         to,
		Status:          handlers.QueryString(r, "status"),
		IncludeInactive: includeInactive,
	}

	result, err := h.service.GetCoachBookings(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /coaches/{id}/bookings - Access denied: coach_id=%d, caller_id=%d", coachID, callerID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /coaches/{id}/bookings - Invalid input: coach_id=%d, error=%v", coachID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /coaches/{id}/bookings - Failed to get bookings: coach_id=%d, error=%v", coachID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /coaches/{id}/bookings - Bookings retrieved successfully: coach_id=%d, count=%d",
		coachID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
