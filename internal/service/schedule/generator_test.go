package schedule

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
	"github.com/ninoramishvili/OXY-CoachBooking/pkg/logger"
	"github.com/ninoramishvili/OXY-CoachBooking/pkg/types"
)

type mockAvailabilityRepo struct {
	mock.Mock
}

func (m *mockAvailabilityRepo) GetRuleByDay(ctx context.Context, coachID int64, day time.Weekday) (*domain.AvailabilityRule, error) {
	args := m.Called(ctx, coachID, day)
	rule, _ := args.Get(0).(*domain.AvailabilityRule)
	return rule, args.Error(1)
}

func (m *mockAvailabilityRepo) GetBlockedSlots(ctx context.Context, coachID int64, date time.Time) ([]*domain.BlockedSlot, error) {
	args := m.Called(ctx, coachID, date)
	slots, _ := args.Get(0).([]*domain.BlockedSlot)
	return slots, args.Error(1)
}

// 2030-01-07 понедельник
var monday = time.Date(2030, 1, 7, 0, 0, 0, 0, time.UTC)

func workdayRule(start, end types.TimeString) *domain.AvailabilityRule {
	return &domain.AvailabilityRule{
		ID:          1,
		CoachID:     7,
		DayOfWeek:   time.Monday,
		StartTime:   start,
		EndTime:     end,
		IsAvailable: true,
	}
}

func TestGenerator_Generate_NineToFive(t *testing.T) {
	repo := &mockAvailabilityRepo{}
	repo.On("GetRuleByDay", mock.Anything, int64(7), time.Monday).Return(workdayRule("09:00", "17:00"), nil)
	repo.On("GetBlockedSlots", mock.Anything, int64(7), monday).Return([]*domain.BlockedSlot{}, nil)

	g := NewGenerator(repo, logger.NewDiscard())

	grid, err := g.Generate(context.Background(), 7, monday)

	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00"}, grid)
	repo.AssertExpectations(t)
}

func TestGenerator_Generate_RemovesBlocked(t *testing.T) {
	repo := &mockAvailabilityRepo{}
	repo.On("GetRuleByDay", mock.Anything, int64(7), time.Monday).Return(workdayRule("09:00", "12:00"), nil)
	repo.On("GetBlockedSlots", mock.Anything, int64(7), monday).Return([]*domain.BlockedSlot{
		{CoachID: 7, BlockedDate: monday, BlockedTime: "10:00", Reason: "dentist"},
	}, nil)

	g := NewGenerator(repo, logger.NewDiscard())

	grid, err := g.Generate(context.Background(), 7, monday)

	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"09:00", "11:00"}, grid)
}

func TestGenerator_Generate_NoRuleIsEmptyDay(t *testing.T) {
	repo := &mockAvailabilityRepo{}
	repo.On("GetRuleByDay", mock.Anything, int64(7), time.Monday).Return(nil, availabilityRepo.ErrRuleNotFound)

	g := NewGenerator(repo, logger.NewDiscard())

	grid, err := g.Generate(context.Background(), 7, monday)

	require.NoError(t, err)
	assert.NotNil(t, grid)
	assert.Empty(t, grid)
	repo.AssertNotCalled(t, "GetBlockedSlots", mock.Anything, mock.Anything, mock.Anything)
}

func TestGenerator_Generate_UnavailableRuleIsEmptyDay(t *testing.T) {
	rule := workdayRule("09:00", "17:00")
	rule.IsAvailable = false

	repo := &mockAvailabilityRepo{}
	repo.On("GetRuleByDay", mock.Anything, int64(7), time.Monday).Return(rule, nil)

	g := NewGenerator(repo, logger.NewDiscard())

	grid, err := g.Generate(context.Background(), 7, monday)

	require.NoError(t, err)
	assert.Empty(t, grid)
}

func TestGenerator_Generate_PartialLastHourDropped(t *testing.T) {
	repo := &mockAvailabilityRepo{}
	repo.On("GetRuleByDay", mock.Anything, int64(7), time.Monday).Return(workdayRule("09:00", "11:30"), nil)
	repo.On("GetBlockedSlots", mock.Anything, int64(7), monday).Return(nil, nil)

	g := NewGenerator(repo, logger.NewDiscard())

	grid, err := g.Generate(context.Background(), 7, monday)

	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"09:00", "10:00"}, grid)
}

func TestGenerator_Generate_UntilMidnight(t *testing.T) {
	repo := &mockAvailabilityRepo{}
	repo.On("GetRuleByDay", mock.Anything, int64(7), time.Monday).Return(workdayRule("22:00", types.EndOfDay), nil)
	repo.On("GetBlockedSlots", mock.Anything, int64(7), monday).Return(nil, nil)

	g := NewGenerator(repo, logger.NewDiscard())

	grid, err := g.Generate(context.Background(), 7, monday)

	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"22:00", "23:00"}, grid)
}

func TestGenerator_Generate_RepositoryError(t *testing.T) {
	repo := &mockAvailabilityRepo{}
	repo.On("GetRuleByDay", mock.Anything, int64(7), time.Monday).Return(nil, errors.New("connection refused"))

	g := NewGenerator(repo, logger.NewDiscard())

	_, err := g.Generate(context.Background(), 7, monday)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestGenerator_Generate_InvalidInput(t *testing.T) {
	g := NewGenerator(&mockAvailabilityRepo{}, logger.NewDiscard())

	_, err := g.Generate(context.Background(), 0, monday)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = g.Generate(context.Background(), 7, time.Time{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGenerator_Contains(t *testing.T) {
	repo := &mockAvailabilityRepo{}
	repo.On("GetRuleByDay", mock.Anything, int64(7), time.Monday).Return(workdayRule("09:00", "17:00"), nil)
	repo.On("GetBlockedSlots", mock.Anything, int64(7), monday).Return(nil, nil)

	g := NewGenerator(repo, logger.NewDiscard())

	ok, err := g.Contains(context.Background(), 7, monday, "10:00")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = g.Contains(context.Background(), 7, monday, "18:00")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = g.Contains(context.Background(), 7, monday, "17:00")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEnumerateHours_NoDuplicates(t *testing.T) {
	hours, err := enumerateHours("00:00", types.EndOfDay)
	require.NoError(t, err)
	require.Len(t, hours, 24)

	seen := make(map[types.TimeString]bool)
	for _, h := range hours {
		assert.False(t, seen[h], "duplicate %s", h)
		seen[h] = true
	}
}
