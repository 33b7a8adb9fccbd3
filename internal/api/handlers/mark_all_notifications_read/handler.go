package mark_all_notifications_read

import (
	"errors"
	"net/http"

	"github.com/ninoramishvili/OXY-CoachBooking/internal/api/handlers"
	"github.com/ninoramishvili/OXY-CoachBooking/internal/api/middleware"
	"github.com/ninoramishvili/OXY-CoachBooking/internal/service/notifications"
	"github.com/ninoramishvili/OXY-CoachBooking/internal/service/notifications/models"
	"github.com/ninoramishvili/OXY-CoachBooking/pkg/ptr"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgInvalidRole   = "некорректная роль, ожидается coach | user"
)

type Handler struct {
	service NotificationService
	logger  Logger
}

func NewHandler(service NotificationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/notifications/read-all?role=coach
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /notifications/read-all - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.MarkAllRead(r.Context(), &models.OwnerRequest{
		UserID: userID,
		Role:   ptr.Value(handlers.QueryString(r, "role"), ""),
	})
	if err != nil {
		if errors.Is(err, notifications.ErrInvalidInput) {
			h.logger.Warn("PATCH /notifications/read-all - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidRole)
			return
		}
		h.logger.Error("PATCH /notifications/read-all - Failed to mark all read: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PATCH /notifications/read-all - Marked read: user_id=%d, updated=%d", userID, result.Updated)
	handlers.RespondJSON(w, http.StatusOK, result)
}
