package create_blocked_slot

import (
	"time"

	"github.com/ninoramishvili/OXY-CoachBooking/internal/domain"
	"github.com/ninoramishvili/OXY-CoachBooking/internal/service/availability/models"
)

// BlockSlotRequest HTTP request model
type BlockSlotRequest struct {
	Date   string `json:"date" validate:"required"` // "2025-10-15"
	Time   string `json:"time" validate:"required"` // "10:00"
	Reason string `json:"reason,omitempty" validate:"max=255"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *BlockSlotRequest) ToServiceRequest(userID, coachID int64) (*models.BlockSlotRequest, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &models.BlockSlotRequest{
		UserID:  userID,
		CoachID: coachID,
		Date:    date,
		Time:    r.Time,
		Reason:  r.Reason,
	}, nil
}
