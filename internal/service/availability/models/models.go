package models

import (
	"time"

	"github.com/ninoramishvili/OXY-CoachBooking/internal/domain"
)

// Request модели

// SetRuleRequest запрос на создание или замену правила дня недели
type SetRuleRequest struct {
	UserID      int64  `json:"userId"`
	CoachID     int64  `json:"coachId"`
	DayOfWeek   int    `json:"dayOfWeek"` // 0 = воскресенье
	StartTime   string `json:"startTime"` // "09:00"
	EndTime     string `json:"endTime"`   // "17:00"
	IsAvailable *bool  `json:"isAvailable,omitempty"`
}

// DeleteRuleRequest запрос на удаление правила дня недели
type DeleteRuleRequest struct {
	UserID    int64 `json:"userId"`
	CoachID   int64 `json:"coachId"`
	DayOfWeek int   `json:"dayOfWeek"`
}

// BlockSlotRequest запрос на блокировку часа
type BlockSlotRequest struct {
	UserID  int64     `json:"userId"`
	CoachID int64     `json:"coachId"`
	Date    time.Time `json:"date"`
	Time    string    `json:"time"`
	Reason  string    `json:"reason"`
}

// UnblockSlotRequest запрос на снятие блокировки
type UnblockSlotRequest struct {
	UserID        int64 `json:"userId"`
	CoachID       int64 `json:"coachId"`
	BlockedSlotID int64 `json:"blockedSlotId"`
}

// ListBlockedSlotsRequest запрос списка блокировок за период
type ListBlockedSlotsRequest struct {
	CoachID int64      `json:"coachId"`
	From    *time.Time `json:"from,omitempty"`
	To      *time.Time `json:"to,omitempty"`
}

// Response модели

// RuleResponse правило недельного расписания
type RuleResponse struct {
	ID          int64     `json:"id"`
	CoachID     int64     `json:"coachId"`
	DayOfWeek   int       `json:"dayOfWeek"`
	DayName     string    `json:"dayName"`
	StartTime   string    `json:"startTime"`
	EndTime     string    `json:"endTime"`
	IsAvailable bool      `json:"isAvailable"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// WeeklyTemplateResponse недельное расписание коуча
type WeeklyTemplateResponse struct {
	CoachID int64          `json:"coachId"`
	Rules   []RuleResponse `json:"rules"`
}

// BlockedSlotResponse заблокированный час
type BlockedSlotResponse struct {
	ID        int64     `json:"id"`
	CoachID   int64     `json:"coachId"`
	Date      string    `json:"date"` // "2025-10-15"
	Time      string    `json:"time"` // "10:00"
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"createdAt"`
}

// BlockedSlotListResponse список заблокированных часов
type BlockedSlotListResponse struct {
	CoachID      int64                 `json:"coachId"`
	BlockedSlots []BlockedSlotResponse `json:"blockedSlots"`
}

// Методы конвертации

// FromDomainRule конвертирует domain модель в DTO
func FromDomainRule(r *domain.AvailabilityRule) *RuleResponse {
	if r == nil {
		return nil
	}

	return &RuleResponse{
		ID:          r.ID,
		CoachID:     r.CoachID,
		DayOfWeek:   int(r.DayOfWeek),
		DayName:     r.DayOfWeek.String(),
		StartTime:   r.StartTime.String(),
		EndTime:     r.EndTime.String(),
		IsAvailable: r.IsAvailable,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// FromDomainWeeklyTemplate конвертирует недельное расписание в DTO
func FromDomainWeeklyTemplate(coachID int64, rules []*domain.AvailabilityRule) *WeeklyTemplateResponse {
	resp := &WeeklyTemplateResponse{
		CoachID: coachID,
		Rules:   make([]RuleResponse, 0, len(rules)),
	}

	for _, r := range rules {
		if rr := FromDomainRule(r); rr != nil {
			resp.Rules = append(resp.Rules, *rr)
		}
	}

	return resp
}

// FromDomainBlockedSlot конвертирует domain модель в DTO
func FromDomainBlockedSlot(s *domain.BlockedSlot) *BlockedSlotResponse {
	if s == nil {
		return nil
	}

	return &BlockedSlotResponse{
		ID:        s.ID,
		CoachID:   s.CoachID,
		Date:      s.BlockedDate.Format(domain.DateFormat),
		Time:      s.BlockedTime.String(),
		Reason:    s.Reason,
		CreatedAt: s.CreatedAt,
	}
}

// FromDomainBlockedSlotList конвертирует список блокировок в DTO
func FromDomainBlockedSlotList(coachID int64, slots []*domain.BlockedSlot) *BlockedSlotListResponse {
	resp := &BlockedSlotListResponse{
		CoachID:      coachID,
		BlockedSlots: make([]BlockedSlotResponse, 0, len(slots)),
	}

	for _, s := range slots {
		if bs := FromDomainBlockedSlot(s); bs != nil {
			resp.BlockedSlots = append(resp.BlockedSlots, *bs)
		}
	}

	return resp
}
