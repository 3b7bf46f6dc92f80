package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/mbraun22/privatechef/internal/domain"
	"github.com/mbraun22/privatechef/internal/events"
	"github.com/mbraun22/privatechef/internal/repository"
	apperrors "github.com/mbraun22/privatechef/pkg/util"
)

const (
	fallbackHourlyRate       = 100.0
	defaultAvailabilityRange = 30 // days
)

// defaultSlots are the candidate booking times offered on every date.
var defaultSlots = []string{"10:00", "14:00", "18:00"}

// BookingCreateInput carries the fields of a new booking request.
type BookingCreateInput struct {
	MenuID          *string
	CustomerID      *string
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   *string
	EventDate       time.Time
	EventTime       string
	DurationHours   float64
	NumberOfGuests  int
	LocationAddress string
	SpecialRequests *string
}

// BookingService manages bookings and availability.
type BookingService struct {
	chefs      repository.ChefRepository
	bookings   repository.BookingRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewBookingService builds the service.
func NewBookingService(chefs repository.ChefRepository, bookings repository.BookingRepository, dispatcher events.Dispatcher, logger *zap.Logger) *BookingService {
	return &BookingService{chefs: chefs, bookings: bookings, dispatcher: dispatcher, logger: logger}
}

// ComputeBookingPrice prices a booking. The charged duration is the
// requested whole hours, floored at the chef's minimum.
func ComputeBookingPrice(hourlyRate *float64, minimumHours int, durationHours float64, guests int) float64 {
	rate := fallbackHourlyRate
	if hourlyRate != nil {
		rate = *hourlyRate
	}
	duration := int(durationHours)
	if minimumHours > duration {
		duration = minimumHours
	}
	return rate * float64(duration) * float64(guests)
}

// Create books a chef for an event. The conflict check is an exact
// chef+date+time match against pending and confirmed bookings; bookings
// at different start times on the same date are allowed even when their
// durations overlap.
func (s *BookingService) Create(ctx context.Context, chefID string, input BookingCreateInput) (*domain.Booking, error) {
	chef, err := s.chefs.GetActiveByID(ctx, chefID)
	if err == pgx.ErrNoRows {
		return nil, apperrors.NewNotFound("chef", nil)
	}
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}

	conflict, err := s.bookings.HasConflict(ctx, chefID, input.EventDate, input.EventTime)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	if conflict {
		return nil, apperrors.NewValidationError("time slot is already booked", nil)
	}

	booking := &domain.Booking{
		ChefID:          chefID,
		CustomerID:      input.CustomerID,
		MenuID:          input.MenuID,
		CustomerName:    input.CustomerName,
		CustomerEmail:   input.CustomerEmail,
		CustomerPhone:   input.CustomerPhone,
		EventDate:       input.EventDate,
		EventTime:       input.EventTime,
		DurationHours:   input.DurationHours,
		NumberOfGuests:  input.NumberOfGuests,
		LocationAddress: input.LocationAddress,
		SpecialRequests: input.SpecialRequests,
		TotalPrice:      ComputeBookingPrice(chef.HourlyRate, chef.MinimumHours, input.DurationHours, input.NumberOfGuests),
		Status:          domain.BookingStatusPending,
		PaymentStatus:   domain.PaymentStatusPending,
	}
	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}

	s.publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventBookingCreated,
		BookingID: booking.ID,
		ChefID:    booking.ChefID,
		Timestamp: time.Now(),
		Payload: events.BookingCreatedPayload{
			CustomerEmail:  booking.CustomerEmail,
			EventDate:      booking.EventDate.Format("2006-01-02"),
			EventTime:      booking.EventTime,
			NumberOfGuests: booking.NumberOfGuests,
			TotalPrice:     booking.TotalPrice,
		},
	})
	return booking, nil
}

// Availability computes per-day open slots for a chef. Zero start
// defaults to today, zero end to start plus thirty days.
func (s *BookingService) Availability(ctx context.Context, chefID string, start, end time.Time) ([]domain.DayAvailability, error) {
	if start.IsZero() {
		now := time.Now().UTC()
		start = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}
	if end.IsZero() {
		end = start.AddDate(0, 0, defaultAvailabilityRange)
	}

	slots, err := s.bookings.SlotsBetween(ctx, chefID, start, end)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return buildAvailability(start, end, slots), nil
}

// ListForChef returns a chef's bookings to its owner, newest event first.
func (s *BookingService) ListForChef(ctx context.Context, userID, chefID string) ([]domain.Booking, error) {
	chef, err := s.chefs.GetByUserID(ctx, userID)
	if err == pgx.ErrNoRows || (err == nil && chef.ID != chefID) {
		return nil, apperrors.NewUnauthorized("not authorized")
	}
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}

	bookings, err := s.bookings.ListByChef(ctx, chefID)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return bookings, nil
}

// UpdateStatus patches a booking's status/payment status after the
// chef-ownership check.
func (s *BookingService) UpdateStatus(ctx context.Context, userID, bookingID string, patch repository.BookingPatch) (*domain.Booking, error) {
	owned, err := s.bookings.IsOwnedBy(ctx, bookingID, userID)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	if !owned {
		return nil, apperrors.NewUnauthorized("not authorized")
	}

	booking, err := s.bookings.Update(ctx, bookingID, patch)
	if err == repository.ErrEmptyPatch {
		return nil, apperrors.NewValidationError("no fields to update", nil)
	}
	if err == pgx.ErrNoRows {
		return nil, apperrors.NewNotFound("booking", nil)
	}
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}

	if patch.Status != nil {
		s.publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventBookingStatusChanged,
			BookingID: booking.ID,
			ChefID:    booking.ChefID,
			Timestamp: time.Now(),
			Payload: events.BookingStatusChangedPayload{
				NewStatus: booking.Status,
			},
		})
	}
	return booking, nil
}

func (s *BookingService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("publish event", zap.String("type", string(event.Type)), zap.Error(err))
	}
}

// availableTimes filters the candidate slots against exactly matching
// booked times. Duration overlap across slots is not considered.
func availableTimes(booked []string) []string {
	bookedSet := make(map[string]struct{}, len(booked))
	for _, t := range booked {
		bookedSet[t] = struct{}{}
	}

	times := make([]string, 0, len(defaultSlots))
	for _, slot := range defaultSlots {
		if _, taken := bookedSet[slot]; !taken {
			times = append(times, slot)
		}
	}
	return times
}

func buildAvailability(start, end time.Time, slots []repository.BookedSlot) []domain.DayAvailability {
	byDate := make(map[string][]string)
	for _, slot := range slots {
		key := slot.EventDate.Format("2006-01-02")
		byDate[key] = append(byDate[key], slot.EventTime)
	}

	var days []domain.DayAvailability
	for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
		times := availableTimes(byDate[date.Format("2006-01-02")])
		days = append(days, domain.DayAvailability{
			Date:           date,
			Available:      len(times) > 0,
			AvailableTimes: times,
		})
	}
	return days
}
