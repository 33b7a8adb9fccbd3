package list_notifications

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
	msgInvalidQuery  = "некорректные параметры запроса, role: coach | user, unread: true | false"
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

// Handle GET /api/v1/notifications?role=coach&unread=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /notifications - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	unreadOnly, err := handlers.QueryBool(r, "unread")
	if err != nil {
		h.logger.Warn("GET /notifications - Invalid unread flag: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.service.List(r.Context(), &models.ListRequest{
		OwnerRequest: models.OwnerRequest{
			UserID: userID,
			Role:   ptr.Value(handlers.QueryString(r, "role"), ""),
		},
		UnreadOnly: unreadOnly,
	})
	if err != nil {
		if errors.Is(err, notifications.ErrInvalidInput) {
			h.logger.Warn("GET /notifications - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidQuery)
			return
		}
		h.logger.Error("GET /notifications - Failed to list notifications: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /notifications - Retrieved: user_id=%d, count=%d, unread=%d",
		userID, len(result.Notifications), result.UnreadCount)
	handlers.RespondJSON(w, http.StatusOK, result)
}
