package list_notifications

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ninoramishvili/OXY-CoachBooking/internal/api/middleware"
	"github.com/ninoramishvili/OXY-CoachBooking/internal/service/notifications"
	"github.com/ninoramishvili/OXY-CoachBooking/internal/service/notifications/models"
	"github.com/ninoramishvili/OXY-CoachBooking/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) List(ctx context.Context, req *models.ListRequest) (*models.NotificationListResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*models.NotificationListResponse)
	return resp, args.Error(1)
}

func serve(svc *mockService, target string) *httptest.ResponseRecorder {
	h := NewHandler(svc, logger.NewDiscard())
	r := mux.NewRouter()
	r.Use(middleware.Auth)
	r.HandleFunc("/api/v1/notifications", h.Handle).Methods(http.MethodGet)

	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.Header.Set(middleware.UserIDHeader, "7")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandler_UnreadCoachInbox(t *testing.T) {
	svc := &mockService{}
	svc.On("List", mock.Anything, &models.ListRequest{
		OwnerRequest: models.OwnerRequest{UserID: 7, Role: "coach"},
		UnreadOnly:   true,
	}).Return(&models.NotificationListResponse{
		Notifications: []models.NotificationResponse{{ID: 1, Type: "booking_requested"}},
		UnreadCount:   1,
	}, nil)

	w := serve(svc, "/api/v1/notifications?role=coach&unread=true")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"unreadCount":1`)
	svc.AssertExpectations(t)
}

func TestHandler_DefaultsPassedThrough(t *testing.T) {
	svc := &mockService{}
	svc.On("List", mock.Anything, &models.ListRequest{
		OwnerRequest: models.OwnerRequest{UserID: 7},
	}).Return(&models.NotificationListResponse{Notifications: []models.NotificationResponse{}}, nil)

	w := serve(svc, "/api/v1/notifications")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"notifications":[]`)
}

func TestHandler_BadUnreadFlag(t *testing.T) {
	svc := &mockService{}

	w := serve(svc, "/api/v1/notifications?unread=maybe")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestHandler_UnknownRole(t *testing.T) {
	svc := &mockService{}
	svc.On("List", mock.Anything, mock.Anything).Return(nil, notifications.ErrInvalidInput)

	w := serve(svc, "/api/v1/notifications?role=admin")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
