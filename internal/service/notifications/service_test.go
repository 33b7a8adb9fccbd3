package notifications

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ninoramishvili/OXY-CoachBooking/internal/domain"
	notificationRepo "github.com/ninoramishvili/OXY-CoachBooking/internal/infra/storage/notification"
	"github.com/ninoramishvili/OXY-CoachBooking/internal/service/notifications/models"
	"github.com/ninoramishvili/OXY-CoachBooking/pkg/logger"
	"github.com/ninoramishvili/OXY-CoachBooking/pkg/ptr"
)

type mockNotificationRepo struct {
	mock.Mock
}

func (m *mockNotificationRepo) Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	args := m.Called(ctx, n)
	created, _ := args.Get(0).(*domain.Notification)
	return created, args.Error(1)
}

func (m *mockNotificationRepo) ListByOwner(ctx context.Context, owner domain.NotificationOwner, unreadOnly bool, limit uint64) ([]*domain.Notification, error) {
	args := m.Called(ctx, owner, unreadOnly, limit)
	list, _ := args.Get(0).([]*domain.Notification)
	return list, args.Error(1)
}

func (m *mockNotificationRepo) CountUnread(ctx context.Context, owner domain.NotificationOwner) (int64, error) {
	args := m.Called(ctx, owner)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockNotificationRepo) MarkRead(ctx context.Context, id int64, owner domain.NotificationOwner) error {
	args := m.Called(ctx, id, owner)
	return args.Error(0)
}

func (m *mockNotificationRepo) MarkAllRead(ctx context.Context, owner domain.NotificationOwner) (int64, error) {
	args := m.Called(ctx, owner)
	return args.Get(0).(int64), args.Error(1)
}

func testBooking() *domain.Booking {
	return &domain.Booking{
		ID:          42,
		CoachID:     7,
		UserID:      100,
		BookingDate: time.Date(2030, 1, 7, 0, 0, 0, 0, time.UTC),
		BookingTime: "10:00",
		Status:      domain.StatusCancelled,
	}
}

func TestService_Emit_Recorded(t *testing.T) {
	repo := &mockNotificationRepo{}
	svc := NewService(repo, logger.NewDiscard())

	n := NewBookingRequested(testBooking())
	repo.On("Create", mock.Anything, n).Return(n, nil).Once()

	svc.Emit(context.Background(), n)

	repo.AssertExpectations(t)
}

func TestService_Emit_SwallowsError(t *testing.T) {
	repo := &mockNotificationRepo{}
	svc := NewService(repo, logger.NewDiscard())

	repo.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("disk full"))

	assert.NotPanics(t, func() {
		svc.Emit(context.Background(), NewBookingRequested(testBooking()))
	})
	repo.AssertNumberOfCalls(t, "Create", 1)
}

func TestNewBookingCancelledByCoach_CarriesReason(t *testing.T) {
	b := testBooking()
	b.CancellationReason = ptr.Ptr("coach is sick")

	n := NewBookingCancelledByCoach(b)

	assert.Equal(t, domain.RecipientUser, n.RecipientRole)
	assert.Equal(t, domain.NotificationBookingCancelled, n.Type)
	assert.Equal(t, int64(100), n.RecipientID())
	assert.Contains(t, n.Message, "coach is sick")
	require.NotNil(t, n.BookingID)
	assert.Equal(t, int64(42), *n.BookingID)
}

func TestNewBookingRequested_AddressedToCoach(t *testing.T) {
	n := NewBookingRequested(testBooking())

	assert.Equal(t, domain.RecipientCoach, n.RecipientRole)
	assert.Equal(t, domain.NotificationNewBooking, n.Type)
	assert.Equal(t, int64(7), n.RecipientID())
	assert.Contains(t, n.Message, "2030-01-07")
	assert.Contains(t, n.Message, "10:00")
}

func TestService_List(t *testing.T) {
	repo := &mockNotificationRepo{}
	svc := NewService(repo, logger.NewDiscard())

	owner := domain.NotificationOwner{ID: 100, Role: domain.RecipientUser}
	repo.On("ListByOwner", mock.Anything, owner, true, uint64(defaultListLimit)).Return([]*domain.Notification{
		{ID: 1, CoachID: 7, UserID: 100, RecipientRole: domain.RecipientUser, Type: domain.NotificationBookingCancelled},
	}, nil)
	repo.On("CountUnread", mock.Anything, owner).Return(int64(1), nil)

	resp, err := svc.List(context.Background(), &models.ListRequest{
		OwnerRequest: models.OwnerRequest{UserID: 100, Role: "user"},
		UnreadOnly:   true,
	})

	require.NoError(t, err)
	require.Len(t, resp.Notifications, 1)
	assert.Equal(t, "booking_cancelled", resp.Notifications[0].Type)
	assert.Equal(t, int64(1), resp.UnreadCount)
}

func TestService_List_DefaultsToCoachInbox(t *testing.T) {
	repo := &mockNotificationRepo{}
	svc := NewService(repo, logger.NewDiscard())

	owner := domain.NotificationOwner{ID: 7, Role: domain.RecipientCoach}
	repo.On("ListByOwner", mock.Anything, owner, false, uint64(defaultListLimit)).Return([]*domain.Notification{}, nil)
	repo.On("CountUnread", mock.Anything, owner).Return(int64(0), nil)

	resp, err := svc.List(context.Background(), &models.ListRequest{OwnerRequest: models.OwnerRequest{UserID: 7}})

	require.NoError(t, err)
	assert.NotNil(t, resp.Notifications)
	assert.Empty(t, resp.Notifications)
}

func TestService_List_InvalidRole(t *testing.T) {
	svc := NewService(&mockNotificationRepo{}, logger.NewDiscard())

	_, err := svc.List(context.Background(), &models.ListRequest{OwnerRequest: models.OwnerRequest{UserID: 7, Role: "admin"}})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_MarkRead_NotFound(t *testing.T) {
	repo := &mockNotificationRepo{}
	svc := NewService(repo, logger.NewDiscard())

	owner := domain.NotificationOwner{ID: 7, Role: domain.RecipientCoach}
	repo.On("MarkRead", mock.Anything, int64(5), owner).Return(notificationRepo.ErrNotificationNotFound)

	err := svc.MarkRead(context.Background(), 5, &models.OwnerRequest{UserID: 7, Role: "coach"})

	assert.ErrorIs(t, err, ErrNotificationNotFound)
}

func TestService_MarkAllRead(t *testing.T) {
	repo := &mockNotificationRepo{}
	svc := NewService(repo, logger.NewDiscard())

	owner := domain.NotificationOwner{ID: 7, Role: domain.RecipientCoach}
	repo.On("MarkAllRead", mock.Anything, owner).Return(int64(3), nil)

	resp, err := svc.MarkAllRead(context.Background(), &models.OwnerRequest{UserID: 7, Role: "coach"})

	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.Updated)
}
