package create_availability_rule

import (
	"context"

	"github.com/ninoramishvili/OXY-CoachBooking/internal/service/availability/models"
)

type AvailabilityService interface {
	CreateRule(ctx context.Context, req *models.SetRuleRequest) (*models.RuleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
