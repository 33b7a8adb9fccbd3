package mark_notification_read

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
	msgInvalidNotificationID = "некорректный ID уведомления"
	msgMissingUserID         = "отсутствует ID пользователя"
	msgInvalidRole           = "некорректная роль, ожидается coach | user"
	msgNotFound              = "уведомление не найдено"
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

// Handle PATCH /api/v1/notifications/{notificationId}/read?role=coach
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	notificationID, err := handlers.PathInt64(r, "notificationId")
	if err != nil {
		h.logger.Warn("PATCH /notifications/{id}/read - Invalid notification ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidNotificationID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /notifications/{id}/read - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	err = h.service.MarkRead(r.Context(), notificationID, &models.OwnerRequest{
		UserID: userID,
		Role:   ptr.Value(handlers.QueryString(r, "role"), ""),
	})
	if err != nil {
		switch {
		case errors.Is(err, notifications.ErrNotificationNotFound):
			// Чужое уведомление не раскрываем, отвечаем как на отсутствующее
			h.logger.Warn("PATCH /notifications/{id}/read - Not found: id=%d, user_id=%d", notificationID, userID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, notifications.ErrInvalidInput):
			h.logger.Warn("PATCH /notifications/{id}/read - Invalid input: id=%d, error=%v", notificationID, err)
			handlers.RespondBadRequest(w, msgInvalidRole)

		default:
			h.logger.Error("PATCH /notifications/{id}/read - Failed to mark read: id=%d, error=%v", notificationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /notifications/{id}/read - Marked read: id=%d, user_id=%d", notificationID, userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
