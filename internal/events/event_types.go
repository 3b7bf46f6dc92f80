package events

import (
	"time"

	"github.com/mbraun22/privatechef/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventBookingCreated       EventType = "booking_created"
	EventBookingStatusChanged EventType = "booking_status_changed"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	BookingID string      `json:"booking_id"`
	ChefID    string      `json:"chef_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// BookingCreatedPayload payload.
type BookingCreatedPayload struct {
	CustomerEmail  string  `json:"customer_email"`
	EventDate      string  `json:"event_date"`
	EventTime      string  `json:"event_time"`
	NumberOfGuests int     `json:"number_of_guests"`
	TotalPrice     float64 `json:"total_price"`
}

// BookingStatusChangedPayload payload.
type BookingStatusChangedPayload struct {
	OldStatus domain.BookingStatus `json:"old_status"`
	NewStatus domain.BookingStatus `json:"new_status"`
}
