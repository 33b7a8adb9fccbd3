package notification

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/ninoramishvili/OXY-CoachBooking/internal/domain"
	"github.com/ninoramishvili/OXY-CoachBooking/pkg/dbmetrics"
	"github.com/ninoramishvili/OXY-CoachBooking/pkg/psqlbuilder"
)

// Repository репозиторий уведомлений коуча и пользователя
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория уведомлений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет уведомление
func (r *Repository) Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("coach_notifications").
		Columns("coach_id", "user_id", "recipient_role", "type", "title", "message", "booking_id").
		Values(n.CoachID, n.UserID, n.RecipientRole, n.Type, n.Title, n.Message, n.BookingID).
		Suffix("RETURNING id, is_read, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&n.ID, &n.IsRead, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	n.CreatedAt = createdAt.Time

	return n, nil
}

// ListByOwner возвращает уведомления получателя, новые первыми
func (r *Repository) ListByOwner(ctx context.Context, owner domain.NotificationOwner, unreadOnly bool, limit uint64) ([]*domain.Notification, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"coach_id",
		"user_id",
		"recipient_role",
		"type",
		"title",
		"message",
		"booking_id",
		"is_read",
		"created_at",
	).
		From("coach_notifications").
		Where(ownerCondition(owner)).
		OrderBy("created_at DESC", "id DESC")

	if unreadOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_read": false})
	}
	if limit > 0 {
		selectBuilder = selectBuilder.Limit(limit)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByOwner - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByOwner - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	notifications := make([]*domain.Notification, 0)
	for rows.Next() {
		var n domain.Notification
		var createdAt sql.NullTime

		err := rows.Scan(
			&n.ID,
			&n.CoachID,
			&n.UserID,
			&n.RecipientRole,
			&n.Type,
			&n.Title,
			&n.Message,
			&n.BookingID,
			&n.IsRead,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByOwner - scan row: %v", ErrScanRow, err)
		}

		n.CreatedAt = createdAt.Time
		notifications = append(notifications, &n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByOwner - rows error: %v", ErrScanRow, err)
	}

	return notifications, nil
}

// CountUnread возвращает число непрочитанных уведомлений получателя
func (r *Repository) CountUnread(ctx context.Context, owner domain.NotificationOwner) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("coach_notifications").
		Where(ownerCondition(owner)).
		Where(squirrel.Eq{"is_read": false}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountUnread - build select query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountUnread - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// MarkRead отмечает уведомление прочитанным
// Чужое уведомление неотличимо от несуществующего
func (r *Repository) MarkRead(ctx context.Context, id int64, owner domain.NotificationOwner) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("coach_notifications").
		Set("is_read", true).
		Where(squirrel.Eq{"id": id}).
		Where(ownerCondition(owner)).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkRead - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkRead - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkRead - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrNotificationNotFound
	}

	return nil
}

// MarkAllRead отмечает прочитанными все уведомления получателя и возвращает их число
func (r *Repository) MarkAllRead(ctx context.Context, owner domain.NotificationOwner) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("coach_notifications").
		Set("is_read", true).
		Where(ownerCondition(owner)).
		Where(squirrel.Eq{"is_read": false}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: MarkAllRead - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: MarkAllRead - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: MarkAllRead - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

func ownerCondition(owner domain.NotificationOwner) squirrel.Eq {
	if owner.Role == domain.RecipientUser {
		return squirrel.Eq{"recipient_role": domain.RecipientUser, "user_id": owner.ID}
	}
	return squirrel.Eq{"recipient_role": domain.RecipientCoach, "coach_id": owner.ID}
}
