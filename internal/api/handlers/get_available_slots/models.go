package get_available_slots

import (
	"github.com/ninoramishvili/OXY-CoachBooking/internal/domain"
	getAvailableSlots "github.com/ninoramishvili/OXY-CoachBooking/internal/usecase/get_available_slots"
)

// SlotsResponse HTTP response model
type SlotsResponse struct {
	CoachID int64          `json:"coachId"`
	Date    string         `json:"date"`
	Slots   []SlotResponse `json:"slots"`
}

// SlotResponse один час сетки
type SlotResponse struct {
	Time          string  `json:"time"`
	Status        string  `json:"status"` // available | held
	BookingID     *int64  `json:"bookingId,omitempty"`
	HolderUserID  *int64  `json:"holderUserId,omitempty"`
	BookingStatus *string `json:"bookingStatus,omitempty"`
	Mine          bool    `json:"mine"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *SlotsResponse {
	result := &SlotsResponse{
		CoachID: resp.CoachID,
		Date:    resp.Date.Format(domain.DateFormat),
		Slots:   make([]SlotResponse, 0, len(resp.Slots)),
	}

	for _, s := range resp.Slots {
		slot := SlotResponse{
			Time:         s.Time.String(),
			Status:       string(s.State),
			BookingID:    s.BookingID,
			HolderUserID: s.HolderUserID,
			Mine:         s.Mine,
		}
		if s.BookingStatus != nil {
			status := string(*s.BookingStatus)
			slot.BookingStatus = &status
		}
		result.Slots = append(result.Slots, slot)
	}

	return result
}
