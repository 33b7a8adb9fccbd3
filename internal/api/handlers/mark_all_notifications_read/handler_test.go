package mark_all_notifications_read

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

func (m *mockService) MarkAllRead(ctx context.Context, req *models.OwnerRequest) (*models.MarkAllReadResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*models.MarkAllReadResponse)
	return resp, args.Error(1)
}

func serve(svc *mockService, target string) *httptest.ResponseRecorder {
	h := NewHandler(svc, logger.NewDiscard())
	r := mux.NewRouter()
	r.Use(middleware.Auth)
	r.HandleFunc("/api/v1/notifications/read-all", h.Handle).Methods(http.MethodPatch)

	req := httptest.NewRequest(http.MethodPatch, target, nil)
	req.Header.Set(middleware.UserIDHeader, "7")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandler_MarkedAll(t *testing.T) {
	svc := &mockService{}
	svc.On("MarkAllRead", mock.Anything, &models.OwnerRequest{UserID: 7, Role: "coach"}).
		Return(&models.MarkAllReadResponse{Updated: 3}, nil)

	w := serve(svc, "/api/v1/notifications/read-all?role=coach")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"updated":3`)
}

func TestHandler_UnknownRole(t *testing.T) {
	svc := &mockService{}
	svc.On("MarkAllRead", mock.Anything, mock.Anything).Return(nil, notifications.ErrInvalidInput)

	w := serve(svc, "/api/v1/notifications/read-all?role=admin")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
