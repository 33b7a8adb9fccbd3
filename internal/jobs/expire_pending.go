package jobs

import (
	"context"
	"time"
)

// defaultRunTimeout ограничение одного прогона фоновой задачи
const defaultRunTimeout = time.Minute

// BookingExpirer отменяет просроченные pending заявки
type BookingExpirer interface {
	ExpireStale(ctx context.Context, now time.Time) (int, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// ExpirePendingJob периодически отменяет заявки, которые коуч не успел рассмотреть до начала часа
type ExpirePendingJob struct {
	expirer BookingExpirer
	logger  Logger
	timeout time.Duration
	now     func() time.Time
}

// NewExpirePendingJob создает задачу истечения заявок
func NewExpirePendingJob(expirer BookingExpirer, logger Logger) *ExpirePendingJob {
	return &ExpirePendingJob{
		expirer: expirer,
		logger:  logger,
		timeout: defaultRunTimeout,
		now:     time.Now,
	}
}

// WithClock подменяет источник времени (для тестов)
func (j *ExpirePendingJob) WithClock(now func() time.Time) *ExpirePendingJob {
	j.now = now
	return j
}

// Run реализует cron.Job
func (j *ExpirePendingJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	now := j.now().UTC()
	expired, err := j.expirer.ExpireStale(ctx, now)
	if err != nil {
		j.logger.Error("ExpirePendingJob: run failed at %s: %v", now.Format(time.RFC3339), err)
		return
	}

	if expired > 0 {
		j.logger.Info("ExpirePendingJob: expired %d pending bookings", expired)
	}
}
