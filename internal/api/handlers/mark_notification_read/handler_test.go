package mark_notification_read

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

func (m *mockService) MarkRead(ctx context.Context, id int64, req *models.OwnerRequest) error {
	args := m.Called(ctx, id, req)
	return args.Error(0)
}

func serve(svc *mockService, target string) *httptest.ResponseRecorder {
	h := NewHandler(svc, logger.NewDiscard())
	r := mux.NewRouter()
	r.Use(middleware.Auth)
	r.HandleFunc("/api/v1/notifications/{notificationId}/read", h.Handle).Methods(http.MethodPatch)

	req := httptest.NewRequest(http.MethodPatch, target, nil)
	req.Header.Set(middleware.UserIDHeader, "7")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandler_MarkedRead(t *testing.T) {
	svc := &mockService{}
	svc.On("MarkRead", mock.Anything, int64(5), &models.OwnerRequest{UserID: 7, Role: "user"}).Return(nil)

	w := serve(svc, "/api/v1/notifications/5/read?role=user")

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
	svc.AssertExpectations(t)
}

func TestHandler_ForeignNotificationIsNotFound(t *testing.T) {
	svc := &mockService{}
	svc.On("MarkRead", mock.Anything, int64(5), mock.Anything).Return(notifications.ErrNotificationNotFound)

	w := serve(svc, "/api/v1/notifications/5/read")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_InvalidID(t *testing.T) {
	svc := &mockService{}

	w := serve(svc, "/api/v1/notifications/zero/read")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "MarkRead", mock.Anything, mock.Anything, mock.Anything)
}
