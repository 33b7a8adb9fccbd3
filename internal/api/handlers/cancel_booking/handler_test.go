package cancel_booking

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ninoramishvili/OXY-CoachBooking/internal/api/middleware"
	"github.com/ninoramishvili/OXY-CoachBooking/internal/service/bookings"
	"github.com/ninoramishvili/OXY-CoachBooking/internal/service/bookings/models"
	"github.com/ninoramishvili/OXY-CoachBooking/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) (*models.BookingResponse, error) {
	args := m.Called(ctx, bookingID, req)
	resp, _ := args.Get(0).(*models.BookingResponse)
	return resp, args.Error(1)
}

func serve(svc *mockService, path, body string) *httptest.ResponseRecorder {
	h := NewHandler(svc, logger.NewDiscard())
	r := mux.NewRouter()
	r.Use(middleware.Auth)
	r.HandleFunc("/api/v1/bookings/{bookingId}/cancel", h.Handle).Methods(http.MethodPatch)

	req := httptest.NewRequest(http.MethodPatch, path, bytes.NewBufferString(body))
	req.Header.Set(middleware.UserIDHeader, "7")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandler_CoachCancelWithReason(t *testing.T) {
	svc := &mockService{}
	svc.On("Cancel", mock.Anything, int64(42), &models.CancelBookingRequest{
		UserID: 7,
		Role:   "coach",
		Reason: "sick",
	}).Return(&models.BookingResponse{ID: 42, Status: "cancelled"}, nil)

	w := serve(svc, "/api/v1/bookings/42/cancel", `{"role":"coach","cancellationReason":"sick"}`)

	require.Equal(t, http.StatusOK, w.Code)
	var resp models.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "cancelled", resp.Status)
}

func TestHandler_EmptyBodyDefaultsToUser(t *testing.T) {
	svc := &mockService{}
	svc.On("Cancel", mock.Anything, int64(42), &models.CancelBookingRequest{UserID: 7, Role: "user"}).
		Return(&models.BookingResponse{ID: 42, Status: "cancelled"}, nil)

	w := serve(svc, "/api/v1/bookings/42/cancel", "")

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestHandler_InvalidRole(t *testing.T) {
	svc := &mockService{}

	w := serve(svc, "/api/v1/bookings/42/cancel", `{"role":"admin"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "Cancel", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{bookings.ErrBookingNotFound, http.StatusNotFound},
		{bookings.ErrAccessDenied, http.StatusForbidden},
		{fmt.Errorf("%w: booking is cancelled", bookings.ErrInvalidState), http.StatusConflict},
		{bookings.ErrInvalidInput, http.StatusBadRequest},
		{bookings.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			svc := &mockService{}
			svc.On("Cancel", mock.Anything, int64(42), mock.Anything).Return(nil, tt.err)

			w := serve(svc, "/api/v1/bookings/42/cancel", "")

			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestHandler_InvalidBookingID(t *testing.T) {
	svc := &mockService{}

	w := serve(svc, "/api/v1/bookings/abc/cancel", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
