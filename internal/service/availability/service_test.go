package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ninoramishvili/OXY-CoachBooking/internal/domain"
	availabilityRepo "github.com/ninoramishvili/OXY-CoachBooking/internal/infra/storage/availability"
	"github.com/ninoramishvili/OXY-CoachBooking/internal/service/availability/models"
	"github.com/ninoramishvili/OXY-CoachBooking/pkg/logger"
	"github.com/ninoramishvili/OXY-CoachBooking/pkg/ptr"
	"github.com/ninoramishvili/OXY-CoachBooking/pkg/types"
)

type mockAvailabilityRepo struct {
	mock.Mock
}

func (m *mockAvailabilityRepo) GetWeeklyTemplate(ctx context.Context, coachID int64) ([]*domain.AvailabilityRule, error) {
	args := m.Called(ctx, coachID)
	rules, _ := args.Get(0).([]*domain.AvailabilityRule)
	return rules, args.Error(1)
}

func (m *mockAvailabilityRepo) CreateRule(ctx context.Context, rule *domain.AvailabilityRule) (*domain.AvailabilityRule, error) {
	args := m.Called(ctx, rule)
	created, _ := args.Get(0).(*domain.AvailabilityRule)
	return created, args.Error(1)
}

func (m *mockAvailabilityRepo) UpsertRule(ctx context.Context, rule *domain.AvailabilityRule) (*domain.AvailabilityRule, error) {
	args := m.Called(ctx, rule)
	saved, _ := args.Get(0).(*domain.AvailabilityRule)
	return saved, args.Error(1)
}

func (m *mockAvailabilityRepo) DeleteRule(ctx context.Context, coachID int64, day time.Weekday) error {
	args := m.Called(ctx, coachID, day)
	return args.Error(0)
}

func (m *mockAvailabilityRepo) ListBlockedSlots(ctx context.Context, coachID int64, from, to *time.Time) ([]*domain.BlockedSlot, error) {
	args := m.Called(ctx, coachID, from, to)
	slots, _ := args.Get(0).([]*domain.BlockedSlot)
	return slots, args.Error(1)
}

func (m *mockAvailabilityRepo) CreateBlockedSlot(ctx context.Context, slot *domain.BlockedSlot) (*domain.BlockedSlot, error) {
	args := m.Called(ctx, slot)
	created, _ := args.Get(0).(*domain.BlockedSlot)
	return created, args.Error(1)
}

func (m *mockAvailabilityRepo) DeleteBlockedSlot(ctx context.Context, coachID, id int64) error {
	args := m.Called(ctx, coachID, id)
	return args.Error(0)
}

func newTestService(repo *mockAvailabilityRepo) *Service {
	return NewService(repo, logger.NewDiscard())
}

func TestService_SetRule_Upserts(t *testing.T) {
	repo := &mockAvailabilityRepo{}
	svc := newTestService(repo)

	repo.On("UpsertRule", mock.Anything, mock.MatchedBy(func(r *domain.AvailabilityRule) bool {
		return r.CoachID == 7 && r.DayOfWeek == time.Monday &&
			r.StartTime == "09:00" && r.EndTime == "17:00" && r.IsAvailable
	})).Return(&domain.AvailabilityRule{
		ID: 1, CoachID: 7, DayOfWeek: time.Monday, StartTime: "09:00", EndTime: "17:00", IsAvailable: true,
	}, nil)

	resp, err := svc.SetRule(context.Background(), &models.SetRuleRequest{
		UserID: 7, CoachID: 7, DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00",
	})

	require.NoError(t, err)
	assert.Equal(t, "Monday", resp.DayName)
	assert.Equal(t, "09:00", resp.StartTime)
	repo.AssertExpectations(t)
}

func TestService_SetRule_AcceptsSecondsAndMidnight(t *testing.T) {
	repo := &mockAvailabilityRepo{}
	svc := newTestService(repo)

	repo.On("UpsertRule", mock.Anything, mock.MatchedBy(func(r *domain.AvailabilityRule) bool {
		return r.StartTime == "20:00" && r.EndTime == types.EndOfDay && !r.IsAvailable
	})).Return(&domain.AvailabilityRule{ID: 2, CoachID: 7, DayOfWeek: time.Sunday, StartTime: "20:00", EndTime: types.EndOfDay}, nil)

	_, err := svc.SetRule(context.Background(), &models.SetRuleRequest{
		UserID: 7, CoachID: 7, DayOfWeek: 0, StartTime: "20:00:00", EndTime: "24:00", IsAvailable: ptr.Ptr(false),
	})

	require.NoError(t, err)
}

func TestService_SetRule_Validation(t *testing.T) {
	svc := newTestService(&mockAvailabilityRepo{})

	tests := []struct {
		name string
		req  models.SetRuleRequest
		err  error
	}{
		{"other coach", models.SetRuleRequest{UserID: 8, CoachID: 7, DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00"}, ErrAccessDenied},
		{"day out of range", models.SetRuleRequest{UserID: 7, CoachID: 7, DayOfWeek: 7, StartTime: "09:00", EndTime: "17:00"}, ErrInvalidInput},
		{"start after end", models.SetRuleRequest{UserID: 7, CoachID: 7, DayOfWeek: 1, StartTime: "17:00", EndTime: "09:00"}, ErrInvalidInput},
		{"empty window", models.SetRuleRequest{UserID: 7, CoachID: 7, DayOfWeek: 1, StartTime: "09:00", EndTime: "09:00"}, ErrInvalidInput},
		{"half hour start", models.SetRuleRequest{UserID: 7, CoachID: 7, DayOfWeek: 1, StartTime: "09:30", EndTime: "17:00"}, ErrInvalidInput},
		{"half hour end", models.SetRuleRequest{UserID: 7, CoachID: 7, DayOfWeek: 1, StartTime: "09:00", EndTime: "17:30"}, ErrInvalidInput},
		{"bad format", models.SetRuleRequest{UserID: 7, CoachID: 7, DayOfWeek: 1, StartTime: "9am", EndTime: "17:00"}, ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.req
			_, err := svc.SetRule(context.Background(), &req)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestService_CreateRule_DuplicateIsConflict(t *testing.T) {
	repo := &mockAvailabilityRepo{}
	svc := newTestService(repo)

	repo.On("CreateRule", mock.Anything, mock.Anything).Return(nil, availabilityRepo.ErrDuplicateRule)

	_, err := svc.CreateRule(context.Background(), &models.SetRuleRequest{
		UserID: 7, CoachID: 7, DayOfWeek: 2, StartTime: "10:00", EndTime: "12:00",
	})

	assert.ErrorIs(t, err, ErrConflict)
}

func TestService_DeleteRule_NotFound(t *testing.T) {
	repo := &mockAvailabilityRepo{}
	svc := newTestService(repo)

	repo.On("DeleteRule", mock.Anything, int64(7), time.Saturday).Return(availabilityRepo.ErrRuleNotFound)

	err := svc.DeleteRule(context.Background(), &models.DeleteRuleRequest{UserID: 7, CoachID: 7, DayOfWeek: 6})

	assert.ErrorIs(t, err, ErrRuleNotFound)
}

func TestService_BlockSlot(t *testing.T) {
	repo := &mockAvailabilityRepo{}
	svc := newTestService(repo)
	date := time.Date(2030, 1, 7, 0, 0, 0, 0, time.UTC)

	repo.On("CreateBlockedSlot", mock.Anything, mock.MatchedBy(func(s *domain.BlockedSlot) bool {
		return s.CoachID == 7 && s.BlockedTime == "10:00" && s.Reason == "dentist"
	})).Return(&domain.BlockedSlot{ID: 3, CoachID: 7, BlockedDate: date, BlockedTime: "10:00", Reason: "dentist"}, nil)

	resp, err := svc.BlockSlot(context.Background(), &models.BlockSlotRequest{
		UserID: 7, CoachID: 7, Date: date, Time: "10:00", Reason: "dentist",
	})

	require.NoError(t, err)
	assert.Equal(t, "2030-01-07", resp.Date)
	assert.Equal(t, "10:00", resp.Time)
}

func TestService_BlockSlot_DuplicateIsConflict(t *testing.T) {
	repo := &mockAvailabilityRepo{}
	svc := newTestService(repo)

	repo.On("CreateBlockedSlot", mock.Anything, mock.Anything).Return(nil, availabilityRepo.ErrDuplicateBlockedSlot)

	_, err := svc.BlockSlot(context.Background(), &models.BlockSlotRequest{
		UserID: 7, CoachID: 7, Date: time.Date(2030, 1, 7, 0, 0, 0, 0, time.UTC), Time: "10:00",
	})

	assert.ErrorIs(t, err, ErrConflict)
}

func TestService_BlockSlot_RejectsPartialHour(t *testing.T) {
	svc := newTestService(&mockAvailabilityRepo{})

	_, err := svc.BlockSlot(context.Background(), &models.BlockSlotRequest{
		UserID: 7, CoachID: 7, Date: time.Date(2030, 1, 7, 0, 0, 0, 0, time.UTC), Time: "10:15",
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_UnblockSlot_NotFound(t *testing.T) {
	repo := &mockAvailabilityRepo{}
	svc := newTestService(repo)

	repo.On("DeleteBlockedSlot", mock.Anything, int64(7), int64(99)).Return(availabilityRepo.ErrBlockedSlotNotFound)

	err := svc.UnblockSlot(context.Background(), &models.UnblockSlotRequest{UserID: 7, CoachID: 7, BlockedSlotID: 99})

	assert.ErrorIs(t, err, ErrBlockedSlotNotFound)
}

func TestService_GetWeeklyTemplate_RepositoryError(t *testing.T) {
	repo := &mockAvailabilityRepo{}
	svc := newTestService(repo)

	repo.On("GetWeeklyTemplate", mock.Anything, int64(7)).Return(nil, errors.New("timeout"))

	_, err := svc.GetWeeklyTemplate(context.Background(), 7)

	assert.ErrorIs(t, err, ErrInternal)
}
