package availability

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/ninoramishvili/OXY-CoachBooking/internal/domain"
	"github.com/ninoramishvili/OXY-CoachBooking/pkg/dbmetrics"
	"github.com/ninoramishvili/OXY-CoachBooking/pkg/pgerr"
	"github.com/ninoramishvili/OXY-CoachBooking/pkg/psqlbuilder"
)

const (
	ruleUniqueConstraint        = "availability_rules_coach_day_uniq"
	ruleTimeRangeConstraint     = "availability_rules_time_range_chk"
	blockedSlotUniqueConstraint = "blocked_slots_coach_date_time_uniq"
)

var ruleColumns = []string{
	"id",
	"coach_id",
	"day_of_week",
	"start_time",
	"end_time",
	"is_available",
	"created_at",
	"updated_at",
}

var blockedSlotColumns = []string{
	"id",
	"coach_id",
	"blocked_date",
	"blocked_time",
	"reason",
	"created_at",
}

// Repository репозиторий недельного расписания и заблокированных слотов коуча
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория доступности
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetWeeklyTemplate возвращает все правила коуча, отсортированные по дню недели
func (r *Repository) GetWeeklyTemplate(ctx context.Context, coachID int64) ([]*domain.AvailabilityRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(ruleColumns...).
		From("availability_rules").
		Where(squirrel.Eq{"coach_id": coachID}).
		OrderBy("day_of_week ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetWeeklyTemplate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWeeklyTemplate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rules := make([]*domain.AvailabilityRule, 0, 7)
	for rows.Next() {
		rule, err := scanRule(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetWeeklyTemplate - scan row: %v", ErrScanRow, err)
		}
		rules = append(rules, rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetWeeklyTemplate - rows error: %v", ErrScanRow, err)
	}

	return rules, nil
}

// GetRuleByDay возвращает правило коуча для дня недели
func (r *Repository) GetRuleByDay(ctx context.Context, coachID int64, day time.Weekday) (*domain.AvailabilityRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(ruleColumns...).
		From("availability_rules").
		Where(squirrel.Eq{"coach_id": coachID, "day_of_week": int(day)}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetRuleByDay - build select query: %v", ErrBuildQuery, err)
	}

	rule, err := scanRule(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRuleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetRuleByDay - scan rule: %v", ErrScanRow, err)
	}

	return rule, nil
}

// CreateRule создает правило для дня недели, на котором правила еще нет
func (r *Repository) CreateRule(ctx context.Context, rule *domain.AvailabilityRule) (*domain.AvailabilityRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("availability_rules").
		Columns("coach_id", "day_of_week", "start_time", "end_time", "is_available").
		Values(rule.CoachID, int(rule.DayOfWeek), rule.StartTime, rule.EndTime, rule.IsAvailable).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateRule - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&rule.ID, &createdAt, &updatedAt)

	if pgerr.IsUniqueViolation(err, ruleUniqueConstraint) {
		return nil, ErrDuplicateRule
	}
	if pgerr.IsCheckViolation(err, ruleTimeRangeConstraint) {
		return nil, ErrInvalidTimeRange
	}
	if err != nil {
		return nil, fmt.Errorf("%w: CreateRule - execute insert: %v", ErrExecQuery, err)
	}

	rule.CreatedAt = createdAt.Time
	rule.UpdatedAt = updatedAt.Time

	return rule, nil
}

// UpsertRule создает или заменяет правило коуча для дня недели
func (r *Repository) UpsertRule(ctx context.Context, rule *domain.AvailabilityRule) (*domain.AvailabilityRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("availability_rules").
		Columns("coach_id", "day_of_week", "start_time", "end_time", "is_available").
		Values(rule.CoachID, int(rule.DayOfWeek), rule.StartTime, rule.EndTime, rule.IsAvailable).
		Suffix(`ON CONFLICT (coach_id, day_of_week) DO UPDATE SET
			start_time = EXCLUDED.start_time,
			end_time = EXCLUDED.end_time,
			is_available = EXCLUDED.is_available,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpsertRule - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&rule.ID, &createdAt, &updatedAt)

	if pgerr.IsCheckViolation(err, ruleTimeRangeConstraint) {
		return nil, ErrInvalidTimeRange
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpsertRule - execute upsert: %v", ErrExecQuery, err)
	}

	rule.CreatedAt = createdAt.Time
	rule.UpdatedAt = updatedAt.Time

	return rule, nil
}

// DeleteRule удаляет правило дня недели, после чего день становится нерабочим
func (r *Repository) DeleteRule(ctx context.Context, coachID int64, day time.Weekday) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("availability_rules").
		Where(squirrel.Eq{"coach_id": coachID, "day_of_week": int(day)}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteRule - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteRule - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteRule - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrRuleNotFound
	}

	return nil
}

// GetBlockedSlots возвращает заблокированные часы коуча на дату
func (r *Repository) GetBlockedSlots(ctx context.Context, coachID int64, date time.Time) ([]*domain.BlockedSlot, error) {
	return r.ListBlockedSlots(ctx, coachID, &date, &date)
}

// ListBlockedSlots возвращает заблокированные часы коуча за период, границы включительно
// nil граница означает отсутствие ограничения с этой стороны
func (r *Repository) ListBlockedSlots(ctx context.Context, coachID int64, from, to *time.Time) ([]*domain.BlockedSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(blockedSlotColumns...).
		From("blocked_slots").
		Where(squirrel.Eq{"coach_id": coachID}).
		OrderBy("blocked_date ASC", "blocked_time ASC")

	if from != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"blocked_date": from.Format(domain.DateFormat)})
	}
	if to != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"blocked_date": to.Format(domain.DateFormat)})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListBlockedSlots - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBlockedSlots - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]*domain.BlockedSlot, 0)
	for rows.Next() {
		slot, err := scanBlockedSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListBlockedSlots - scan row: %v", ErrScanRow, err)
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListBlockedSlots - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

// CreateBlockedSlot блокирует один час коуча
func (r *Repository) CreateBlockedSlot(ctx context.Context, slot *domain.BlockedSlot) (*domain.BlockedSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("blocked_slots").
		Columns("coach_id", "blocked_date", "blocked_time", "reason").
		Values(slot.CoachID, slot.BlockedDate.Format(domain.DateFormat), slot.BlockedTime, slot.Reason).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateBlockedSlot - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&slot.ID, &createdAt)

	if pgerr.IsUniqueViolation(err, blockedSlotUniqueConstraint) {
		return nil, ErrDuplicateBlockedSlot
	}
	if err != nil {
		return nil, fmt.Errorf("%w: CreateBlockedSlot - execute insert: %v", ErrExecQuery, err)
	}

	slot.CreatedAt = createdAt.Time

	return slot, nil
}

// DeleteBlockedSlot снимает блокировку часа
func (r *Repository) DeleteBlockedSlot(ctx context.Context, coachID, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("blocked_slots").
		Where(squirrel.Eq{"id": id, "coach_id": coachID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteBlockedSlot - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteBlockedSlot - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteBlockedSlot - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBlockedSlotNotFound
	}

	return nil
}

func scanRule(row scanner) (*domain.AvailabilityRule, error) {
	var rule domain.AvailabilityRule
	var day int
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&rule.ID,
		&rule.CoachID,
		&day,
		&rule.StartTime,
		&rule.EndTime,
		&rule.IsAvailable,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	rule.DayOfWeek = time.Weekday(day)
	rule.CreatedAt = createdAt.Time
	rule.UpdatedAt = updatedAt.Time

	return &rule, nil
}

func scanBlockedSlot(row scanner) (*domain.BlockedSlot, error) {
	var slot domain.BlockedSlot
	var createdAt sql.NullTime

	err := row.Scan(
		&slot.ID,
		&slot.CoachID,
		&slot.BlockedDate,
		&slot.BlockedTime,
		&slot.Reason,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	slot.CreatedAt = createdAt.Time

	return &slot, nil
}
