package get_available_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ninoramishvili/OXY-CoachBooking/internal/api/middleware"
	"github.com/ninoramishvili/OXY-CoachBooking/internal/domain"
	getAvailableSlots "github.com/ninoramishvili/OXY-CoachBooking/internal/usecase/get_available_slots"
	"github.com/ninoramishvili/OXY-CoachBooking/pkg/logger"
	"github.com/ninoramishvili/OXY-CoachBooking/pkg/ptr"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*getAvailableSlots.Response)
	return resp, args.Error(1)
}

func newRouter(uc *mockUseCase) *mux.Router {
	h := NewHandler(uc, logger.NewDiscard())
	r := mux.NewRouter()
	r.Use(middleware.OptionalAuth)
	r.HandleFunc("/api/v1/coaches/{coachId}/slots", h.Handle).Methods(http.MethodGet)
	return r
}

func TestHandler_ReturnsSlots(t *testing.T) {
	uc := &mockUseCase{}
	pending := domain.StatusPending
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(r *getAvailableSlots.Request) bool {
		return r.CoachID == 7 && r.RequesterID != nil && *r.RequesterID == 100
	})).Return(&getAvailableSlots.Response{
		CoachID: 7,
		Slots: []domain.SlotStatus{
			{Time: "09:00", State: domain.SlotAvailable},
			{Time: "10:00", State: domain.SlotHeld, BookingID: ptr.Ptr(int64(1)), HolderUserID: ptr.Ptr(int64(100)), BookingStatus: &pending, Mine: true},
		},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/coaches/7/slots?date=2030-01-07", nil)
	req.Header.Set(middleware.UserIDHeader, "100")
	w := httptest.NewRecorder()
	newRouter(uc).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp SlotsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Slots, 2)
	assert.Equal(t, "available", resp.Slots[0].Status)
	assert.Nil(t, resp.Slots[0].BookingID)
	assert.Equal(t, "held", resp.Slots[1].Status)
	assert.Equal(t, "pending", *resp.Slots[1].BookingStatus)
	assert.True(t, resp.Slots[1].Mine)
}

func TestHandler_AnonymousRequest(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(r *getAvailableSlots.Request) bool {
		return r.RequesterID == nil
	})).Return(&getAvailableSlots.Response{CoachID: 7, Slots: []domain.SlotStatus{}}, nil)

	w := httptest.NewRecorder()
	newRouter(uc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/coaches/7/slots?date=2030-01-07", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"coachId":7,"date":"0001-01-01","slots":[]}`, w.Body.String())
}

func TestHandler_BadRequests(t *testing.T) {
	for _, url := range []string{
		"/api/v1/coaches/abc/slots?date=2030-01-07",
		"/api/v1/coaches/7/slots",
		"/api/v1/coaches/7/slots?date=tomorrow",
	} {
		uc := &mockUseCase{}
		w := httptest.NewRecorder()
		newRouter(uc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))

		assert.Equal(t, http.StatusBadRequest, w.Code, url)
		uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
	}
}

func TestHandler_InternalError(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.Anything).Return(nil, getAvailableSlots.ErrInternal)

	w := httptest.NewRecorder()
	newRouter(uc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/coaches/7/slots?date=2030-01-07", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
