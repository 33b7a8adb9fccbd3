package domain

import "time"

// NotificationType type of a recorded notification event
type NotificationType string

const (
	NotificationNewBooking       NotificationType = "new_booking"
	NotificationBookingCancelled NotificationType = "booking_cancelled"
	NotificationBookingExpired   NotificationType = "booking_expired"
)

// RecipientRole who a notification is addressed to
type RecipientRole string

const (
	RecipientCoach RecipientRole = "coach"
	RecipientUser  RecipientRole = "user"
)

// IsValid returns true for known recipient roles
func (r RecipientRole) IsValid() bool {
	return r == RecipientCoach || r == RecipientUser
}

// Notification is an append-only event produced by a booking transition.
// The recipient is CoachID for RecipientCoach and UserID for RecipientUser.
type Notification struct {
	ID            int64
	CoachID       int64
	UserID        int64
	RecipientRole RecipientRole
	Type          NotificationType
	Title         string
	Message       string
	BookingID     *int64
	IsRead        bool
	CreatedAt     time.Time
}

// RecipientID returns the id of whoever should see the notification
func (n *Notification) RecipientID() int64 {
	if n.RecipientRole == RecipientUser {
		return n.UserID
	}
	return n.CoachID
}

// NotificationOwner identifies a notification inbox
type NotificationOwner struct {
	ID   int64
	Role RecipientRole
}
