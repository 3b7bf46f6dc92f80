package handlers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/mbraun22/privatechef/internal/api/dto"
	"github.com/mbraun22/privatechef/internal/auth"
	"github.com/mbraun22/privatechef/internal/service"
	apperrors "github.com/mbraun22/privatechef/pkg/util"
)

// BookingsHandler manages booking and availability endpoints.
type BookingsHandler struct {
	service *service.BookingService
}

// NewBookingsHandler constructs handler.
func NewBookingsHandler(bookingService *service.BookingService) *BookingsHandler {
	return &BookingsHandler{service: bookingService}
}

// Create POST /api/chefs/:chef_id/bookings. Public: the route takes no
// bearer token, so bookings always carry the contact fields from the
// payload and no customer account.
func (h *BookingsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.CustomerName) == "" || strings.TrimSpace(req.CustomerEmail) == "" {
		return apperrors.NewValidationError("customer_name, customer_email required", nil)
	}
	if req.EventTime == "" || req.DurationHours <= 0 || req.NumberOfGuests <= 0 {
		return apperrors.NewValidationError("event_time, duration_hours, number_of_guests required", nil)
	}

	input, err := req.ToInput(nil)
	if err != nil {
		return err
	}
	booking, err := h.service.Create(c.Context(), c.Params("chef_id"), input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.FromBooking(booking)})
}

// Availability GET /api/chefs/:chef_id/availability.
func (h *BookingsHandler) Availability(c *fiber.Ctx) error {
	start := parseDateQuery(c.Query("start_date"))
	end := parseDateQuery(c.Query("end_date"))

	days, err := h.service.Availability(c.Context(), c.Params("chef_id"), start, end)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.FromAvailability(days)})
}

// ListForChef GET /api/chefs/:chef_id/bookings.
func (h *BookingsHandler) ListForChef(c *fiber.Ctx) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("user required")
	}
	bookings, err := h.service.ListForChef(c.Context(), userID, c.Params("chef_id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.FromBookings(bookings)})
}

// Update PUT /api/bookings/:booking_id.
func (h *BookingsHandler) Update(c *fiber.Ctx) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.UpdateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	patch, err := req.ToPatch()
	if err != nil {
		return err
	}

	booking, err := h.service.UpdateStatus(c.Context(), userID, c.Params("booking_id"), patch)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.FromBooking(booking)})
}

func parseDateQuery(val string) time.Time {
	if val == "" {
		return time.Time{}
	}
	t, err := time.Parse("2006-01-02", val)
	if err != nil {
		return time.Time{}
	}
	return t
}
