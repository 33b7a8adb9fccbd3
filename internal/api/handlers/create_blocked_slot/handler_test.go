package create_blocked_slot

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ninoramishvili/OXY-CoachBooking/internal/api/middleware"
	"github.com/ninoramishvili/OXY-CoachBooking/internal/service/availability"
	"github.com/ninoramishvili/OXY-CoachBooking/internal/service/availability/models"
	"github.com/ninoramishvili/OXY-CoachBooking/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) BlockSlot(ctx context.Context, req *models.BlockSlotRequest) (*models.BlockedSlotResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*models.BlockedSlotResponse)
	return resp, args.Error(1)
}

func serve(svc *mockService, body string) *httptest.ResponseRecorder {
	h := NewHandler(svc, logger.NewDiscard())
	r := mux.NewRouter()
	r.Use(middleware.Auth)
	r.HandleFunc("/api/v1/coaches/{coachId}/blocked-slots", h.Handle).Methods(http.MethodPost)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/coaches/7/blocked-slots", strings.NewReader(body))
	req.Header.Set(middleware.UserIDHeader, "7")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandler_Blocked(t *testing.T) {
	svc := &mockService{}
	svc.On("BlockSlot", mock.Anything, mock.MatchedBy(func(req *models.BlockSlotRequest) bool {
		return req.UserID == 7 && req.CoachID == 7 && req.Time == "10:00" &&
			req.Date.Equal(time.Date(2030, 1, 7, 0, 0, 0, 0, time.UTC)) && req.Reason == "dentist"
	})).Return(&models.BlockedSlotResponse{ID: 3, CoachID: 7, Date: "2030-01-07", Time: "10:00"}, nil)

	w := serve(svc, `{"date":"2030-01-07","time":"10:00","reason":"dentist"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"id":3`)
	svc.AssertExpectations(t)
}

func TestHandler_AlreadyBlocked(t *testing.T) {
	svc := &mockService{}
	svc.On("BlockSlot", mock.Anything, mock.Anything).Return(nil, availability.ErrConflict)

	w := serve(svc, `{"date":"2030-01-07","time":"10:00"}`)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_BadDate(t *testing.T) {
	svc := &mockService{}

	w := serve(svc, `{"date":"07.01.2030","time":"10:00"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "BlockSlot", mock.Anything, mock.Anything)
}

func TestHandler_MissingTime(t *testing.T) {
	svc := &mockService{}

	w := serve(svc, `{"date":"2030-01-07"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "BlockSlot", mock.Anything, mock.Anything)
}

func TestHandler_OtherCoachForbidden(t *testing.T) {
	svc := &mockService{}
	svc.On("BlockSlot", mock.Anything, mock.Anything).Return(nil, availability.ErrAccessDenied)

	w := serve(svc, `{"date":"2030-01-07","time":"10:00"}`)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
