package dto

import (
	"time"

	"github.com/mbraun22/privatechef/internal/domain"
	"github.com/mbraun22/privatechef/internal/repository"
	"github.com/mbraun22/privatechef/internal/service"
	apperrors "github.com/mbraun22/privatechef/pkg/util"
)

const dateLayout = "2006-01-02"

// CreateBookingRequest payload for a new booking. EventDate is a
// calendar date string, EventTime an HH:MM wall-clock string.
type CreateBookingRequest struct {
	MenuID          *string `json:"menu_id"`
	CustomerName    string  `json:"customer_name"`
	CustomerEmail   string  `json:"customer_email"`
	CustomerPhone   *string `json:"customer_phone"`
	EventDate       string  `json:"event_date"`
	EventTime       string  `json:"event_time"`
	DurationHours   float64 `json:"duration_hours"`
	NumberOfGuests  int     `json:"number_of_guests"`
	LocationAddress string  `json:"location_address"`
	SpecialRequests *string `json:"special_requests"`
}

// UpdateBookingRequest payload for a booking status update.
type UpdateBookingRequest struct {
	Status        *string `json:"status"`
	PaymentStatus *string `json:"payment_status"`
}

// ToInput validates and converts the request into the service input.
// customerID is the authenticated caller, nil for guest bookings.
func (r CreateBookingRequest) ToInput(customerID *string) (service.BookingCreateInput, error) {
	eventDate, err := time.Parse(dateLayout, r.EventDate)
	if err != nil {
		return service.BookingCreateInput{}, apperrors.NewValidationError("event_date must be YYYY-MM-DD", nil)
	}
	return service.BookingCreateInput{
		MenuID:          r.MenuID,
		CustomerID:      customerID,
		CustomerName:    r.CustomerName,
		CustomerEmail:   r.CustomerEmail,
		CustomerPhone:   r.CustomerPhone,
		EventDate:       eventDate,
		EventTime:       r.EventTime,
		DurationHours:   r.DurationHours,
		NumberOfGuests:  r.NumberOfGuests,
		LocationAddress: r.LocationAddress,
		SpecialRequests: r.SpecialRequests,
	}, nil
}

// ToPatch validates and converts the request into the repository patch.
func (r UpdateBookingRequest) ToPatch() (repository.BookingPatch, error) {
	var patch repository.BookingPatch
	if r.Status != nil {
		status := domain.BookingStatus(*r.Status)
		switch status {
		case domain.BookingStatusPending, domain.BookingStatusConfirmed,
			domain.BookingStatusCancelled, domain.BookingStatusCompleted:
			patch.Status = &status
		default:
			return patch, apperrors.NewValidationError("invalid booking status", map[string]any{"status": *r.Status})
		}
	}
	if r.PaymentStatus != nil {
		payment := domain.PaymentStatus(*r.PaymentStatus)
		switch payment {
		case domain.PaymentStatusPending, domain.PaymentStatusPaid, domain.PaymentStatusRefused:
			patch.PaymentStatus = &payment
		default:
			return patch, apperrors.NewValidationError("invalid payment status", map[string]any{"payment_status": *r.PaymentStatus})
		}
	}
	return patch, nil
}

// BookingResponse is the API shape of a booking.
type BookingResponse struct {
	ID              string    `json:"id"`
	ChefID          string    `json:"chef_id"`
	CustomerID      *string   `json:"customer_id,omitempty"`
	MenuID          *string   `json:"menu_id,omitempty"`
	CustomerName    string    `json:"customer_name"`
	CustomerEmail   string    `json:"customer_email"`
	CustomerPhone   *string   `json:"customer_phone,omitempty"`
	EventDate       string    `json:"event_date"`
	EventTime       string    `json:"event_time"`
	DurationHours   float64   `json:"duration_hours"`
	NumberOfGuests  int       `json:"number_of_guests"`
	LocationAddress string    `json:"location_address"`
	SpecialRequests *string   `json:"special_requests,omitempty"`
	TotalPrice      float64   `json:"total_price"`
	Status          string    `json:"status"`
	PaymentStatus   string    `json:"payment_status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// DayAvailabilityResponse lists the open times on a date.
type DayAvailabilityResponse struct {
	Date           string   `json:"date"`
	Available      bool     `json:"available"`
	AvailableTimes []string `json:"available_times"`
}

// FromBooking maps a domain booking to its response shape.
func FromBooking(booking *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:              booking.ID,
		ChefID:          booking.ChefID,
		CustomerID:      booking.CustomerID,
		MenuID:          booking.MenuID,
		CustomerName:    booking.CustomerName,
		CustomerEmail:   booking.CustomerEmail,
		CustomerPhone:   booking.CustomerPhone,
		EventDate:       booking.EventDate.Format(dateLayout),
		EventTime:       booking.EventTime,
		DurationHours:   booking.DurationHours,
		NumberOfGuests:  booking.NumberOfGuests,
		LocationAddress: booking.LocationAddress,
		SpecialRequests: booking.SpecialRequests,
		TotalPrice:      booking.TotalPrice,
		Status:          string(booking.Status),
		PaymentStatus:   string(booking.PaymentStatus),
		CreatedAt:       booking.CreatedAt,
		UpdatedAt:       booking.UpdatedAt,
	}
}

// FromBookings maps a booking slice to response shapes.
func FromBookings(bookings []domain.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for i := range bookings {
		out = append(out, FromBooking(&bookings[i]))
	}
	return out
}

// FromAvailability maps per-day availability to response shapes.
func FromAvailability(days []domain.DayAvailability) []DayAvailabilityResponse {
	out := make([]DayAvailabilityResponse, 0, len(days))
	for _, day := range days {
		out = append(out, DayAvailabilityResponse{
			Date:           day.Date.Format(dateLayout),
			Available:      day.Available,
			AvailableTimes: day.AvailableTimes,
		})
	}
	return out
}
