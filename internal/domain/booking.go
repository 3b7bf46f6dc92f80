package domain

import "time"

// BookingStatus values persisted on bookings.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

// PaymentStatus values persisted on bookings.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusRefused PaymentStatus = "refused"
)

// Booking is an event reservation against a chef. EventTime is stored as
// an HH:MM wall-clock string; conflict checks compare it verbatim.
type Booking struct {
	ID              string
	ChefID          string
	CustomerID      *string
	MenuID          *string
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   *string
	EventDate       time.Time
	EventTime       string
	DurationHours   float64
	NumberOfGuests  int
	LocationAddress string
	SpecialRequests *string
	TotalPrice      float64
	Status          BookingStatus
	PaymentStatus   PaymentStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// DayAvailability lists the bookable times remaining on a date.
type DayAvailability struct {
	Date           time.Time
	Available      bool
	AvailableTimes []string
}
