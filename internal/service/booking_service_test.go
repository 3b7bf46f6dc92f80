package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/mbraun22/privatechef/internal/domain"
	"github.com/mbraun22/privatechef/internal/repository"
	apperrors "github.com/mbraun22/privatechef/pkg/util"
)

type stubChefRepo struct {
	repository.ChefRepository
	chef *domain.Chef
}

func (s *stubChefRepo) GetActiveByID(ctx context.Context, chefID string) (*domain.Chef, error) {
	if s.chef == nil || s.chef.ID != chefID {
		return nil, errors.New("no rows in result set")
	}
	return s.chef, nil
}

type stubBookingRepo struct {
	repository.BookingRepository
	bookedTimes map[string]bool // "date time" -> taken
	created     *domain.Booking
}

func (s *stubBookingRepo) HasConflict(ctx context.Context, chefID string, date time.Time, eventTime string) (bool, error) {
	return s.bookedTimes[date.Format("2006-01-02")+" "+eventTime], nil
}

func (s *stubBookingRepo) Create(ctx context.Context, booking *domain.Booking) error {
	booking.ID = "booking-1"
	s.created = booking
	return nil
}

func TestCreateBookingConflicts(t *testing.T) {
	eventDate := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	chefs := &stubChefRepo{chef: &domain.Chef{ID: "chef-1", MinimumHours: 2}}
	bookings := &stubBookingRepo{bookedTimes: map[string]bool{"2026-10-01 14:00": true}}
	svc := NewBookingService(chefs, bookings, nil, zap.NewNop())

	input := BookingCreateInput{
		CustomerName:    "Ada",
		CustomerEmail:   "ada@example.com",
		EventDate:       eventDate,
		EventTime:       "14:00",
		DurationHours:   1,
		NumberOfGuests:  4,
		LocationAddress: "1 Main St",
	}

	_, err := svc.Create(context.Background(), "chef-1", input)
	if err == nil {
		t.Fatal("expected error for an already booked time")
	}
	var domainErr *apperrors.DomainError
	if !errors.As(err, &domainErr) || domainErr.Code != "VALIDATION_FAILED" {
		t.Fatalf("expected VALIDATION_FAILED, got %v", err)
	}
	if bookings.created != nil {
		t.Fatal("conflicting booking must not be inserted")
	}

	input.EventTime = "18:00"
	booking, err := svc.Create(context.Background(), "chef-1", input)
	if err != nil {
		t.Fatalf("unexpected error for a free time on the same date: %v", err)
	}
	if booking.TotalPrice != 800 {
		t.Errorf("total price = %v, want 800", booking.TotalPrice)
	}
	if booking.Status != domain.BookingStatusPending || booking.PaymentStatus != domain.PaymentStatusPending {
		t.Errorf("new booking statuses = %s/%s, want pending/pending", booking.Status, booking.PaymentStatus)
	}
	if bookings.created == nil || bookings.created.EventTime != "18:00" {
		t.Fatalf("expected insert for the free slot, got %+v", bookings.created)
	}
}

func TestComputeBookingPrice(t *testing.T) {
	rate := 100.0
	cases := []struct {
		name         string
		hourlyRate   *float64
		minimumHours int
		duration     float64
		guests       int
		want         float64
	}{
		{"minimum hours floor applies", &rate, 2, 1, 4, 800},
		{"requested duration above minimum", &rate, 2, 3, 2, 600},
		{"nil rate falls back to 100", nil, 2, 2, 1, 200},
		{"fractional duration truncates", &rate, 1, 2.5, 1, 200},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeBookingPrice(tc.hourlyRate, tc.minimumHours, tc.duration, tc.guests)
			if got != tc.want {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestAvailableTimes(t *testing.T) {
	cases := []struct {
		name   string
		booked []string
		want   []string
	}{
		{"no bookings", nil, []string{"10:00", "14:00", "18:00"}},
		{"one slot taken", []string{"14:00"}, []string{"10:00", "18:00"}},
		{"all taken", []string{"10:00", "14:00", "18:00"}, []string{}},
		{"non-slot time does not block", []string{"11:00"}, []string{"10:00", "14:00", "18:00"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := availableTimes(tc.booked)
			if len(got) != len(tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("got %v, want %v", got, tc.want)
				}
			}
		})
	}
}

func TestBuildAvailability(t *testing.T) {
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 2)
	slots := []repository.BookedSlot{
		{EventDate: start, EventTime: "10:00"},
		{EventDate: start, EventTime: "14:00"},
		{EventDate: start, EventTime: "18:00"},
		{EventDate: start.AddDate(0, 0, 1), EventTime: "14:00"},
	}

	days := buildAvailability(start, end, slots)
	if len(days) != 3 {
		t.Fatalf("days = %d, want 3", len(days))
	}

	if days[0].Available {
		t.Error("fully booked day reported available")
	}
	if len(days[0].AvailableTimes) != 0 {
		t.Errorf("fully booked day times = %v", days[0].AvailableTimes)
	}

	if !days[1].Available || len(days[1].AvailableTimes) != 2 {
		t.Errorf("partially booked day = %+v", days[1])
	}

	if !days[2].Available || len(days[2].AvailableTimes) != 3 {
		t.Errorf("free day = %+v", days[2])
	}
}
