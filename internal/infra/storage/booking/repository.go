package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/ninoramishvili/OXY-CoachBooking/internal/domain"
	"github.com/ninoramishvili/OXY-CoachBooking/pkg/dbmetrics"
	"github.com/ninoramishvili/OXY-CoachBooking/pkg/pgerr"
	"github.com/ninoramishvili/OXY-CoachBooking/pkg/psqlbuilder"
)

const (
	activeSlotConstraint      = "bookings_active_slot_uniq"
	hourGranularityConstraint = "bookings_hour_granularity_chk"
	wallClockLayout           = "2006-01-02 15:04:05"
)

var bookingColumns = []string{
	"id",
	"coach_id",
	"user_id",
	"booking_date",
	"booking_time",
	"status",
	"notes",
	"decline_reason",
	"cancellation_reason",
	"cancelled_by",
	"created_at",
	"updated_at",
}

// Transition параметры условного перехода статуса
type Transition struct {
	From               []domain.BookingStatus
	To                 domain.BookingStatus
	DeclineReason      *string
	CancellationReason *string
	CancelledBy        *domain.ActorRole
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование в статусе pending
// Если слот уже удерживается, частичный уникальный индекс отклоняет вставку и метод возвращает ErrSlotTaken.
// Это единственная защита от гонки двух одновременных запросов на один слот.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"coach_id",
			"user_id",
			"booking_date",
			"booking_time",
			"status",
			"notes",
		).
		Values(
			booking.CoachID,
			booking.UserID,
			booking.BookingDate.Format(domain.DateFormat),
			booking.BookingTime,
			booking.Status,
			booking.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if pgerr.IsUniqueViolation(err, activeSlotConstraint) {
		return nil, ErrSlotTaken
	}
	if pgerr.IsCheckViolation(err, hourGranularityConstraint) {
		return nil, ErrInvalidSlotTime
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetByUserID получает историю бронирований пользователя, новые первыми
// Опционально фильтрует по статусу
func (r *Repository) GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("booking_date DESC", "booking_time DESC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetByCoachWithFilter получает бронирования коуча с фильтрацией
// Поддерживает фильтрацию по:
// - Периоду (StartDate, EndDate) - опционально, границы включительно
// - Статусу (Status) - опционально
// - Включению неактивных бронирований (IncludeInactive)
//
// Для одной даты без статуса и без IncludeInactive возвращает ровно удерживающие бронирования дня,
// что использует сборка статусов слотов.
func (r *Repository) GetByCoachWithFilter(ctx context.Context, filter domain.CoachBookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"coach_id": filter.CoachID})

	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"booking_date": filter.StartDate.Format(domain.DateFormat)})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"booking_date": filter.EndDate.Format(domain.DateFormat)})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeInactive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": statusStrings(domain.HoldingStatuses)})
	}

	if isSingleDay(filter) {
		selectBuilder = selectBuilder.OrderBy("booking_time ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("booking_date ASC", "booking_time ASC")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCoachWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCoachWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetExpiredPending возвращает pending бронирования, чей час уже начался к моменту now
// booking_date/booking_time хранятся в UTC, now приводится к UTC
func (r *Repository) GetExpiredPending(ctx context.Context, now time.Time, limit uint64) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"status": domain.StatusPending}).
		Where(squirrel.Expr("(booking_date + booking_time) <= ?::timestamp", now.UTC().Format(wallClockLayout))).
		OrderBy("booking_date ASC", "booking_time ASC")

	if limit > 0 {
		selectBuilder = selectBuilder.Limit(limit)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetExpiredPending - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetExpiredPending - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// Transition атомарно переводит бронирование из одного из статусов t.From в t.To
// Обновление выполняется одним UPDATE ... WHERE status IN (...), поэтому из двух конкурентных
// переходов успешен ровно один. Если строка есть, но в другом статусе, возвращается ErrStatusMismatch.
func (r *Repository) Transition(ctx context.Context, id int64, t Transition) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("bookings").
		Set("status", t.To).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": statusStrings(t.From)})

	if t.DeclineReason != nil {
		updateBuilder = updateBuilder.Set("decline_reason", *t.DeclineReason)
	}
	if t.CancellationReason != nil {
		updateBuilder = updateBuilder.Set("cancellation_reason", *t.CancellationReason)
	}
	if t.CancelledBy != nil {
		updateBuilder = updateBuilder.Set("cancelled_by", *t.CancelledBy)
	}

	query, args, err := updateBuilder.
		Suffix("RETURNING " + strings.Join(bookingColumns, ", ")).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Transition - build update query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		// Различаем "нет такого бронирования" и "бронирование в другом статусе"
		if _, getErr := r.GetByID(ctx, id); getErr != nil {
			return nil, getErr
		}
		return nil, ErrStatusMismatch
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Transition - execute update: %v", ErrExecQuery, err)
	}

	return booking, nil
}

// scanBooking сканирует одну строку бронирования
func scanBooking(row scanner) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.CoachID,
		&booking.UserID,
		&booking.BookingDate,
		&booking.BookingTime,
		&booking.Status,
		&booking.Notes,
		&booking.DeclineReason,
		&booking.CancellationReason,
		&booking.CancelledBy,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

func statusStrings(statuses []domain.BookingStatus) []string {
	result := make([]string, len(statuses))
	for i, s := range statuses {
		result[i] = string(s)
	}
	return result
}

func isSingleDay(filter domain.CoachBookingsFilter) bool {
	return filter.StartDate != nil && filter.EndDate != nil && filter.StartDate.Equal(*filter.EndDate)
}
