package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/lumiere-beauty/storefront-api/internal/dto"
	"github.com/lumiere-beauty/storefront-api/internal/middleware"
	"github.com/lumiere-beauty/storefront-api/internal/service"
)

type BookingHandler struct {
	bookingService service.BookingService
}

func NewBookingHandler(bookingService service.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// Slots handles GET /api/bookings/slots?staffId=&date= — already-booked
// times for the booking page.
func (h *BookingHandler) Slots(c echo.Context) error {
	date := c.QueryParam("date")
	staffParam := c.QueryParam("staffId")
	if date == "" || staffParam == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "date and staffId are required")
	}
	staffID, err := strconv.ParseUint(staffParam, 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid staffId")
	}

	booked, err := h.bookingService.BookedSlots(c.Request().Context(), uint(staffID), date)
	if err != nil {
		return httpError(err)
	}
	if booked == nil {
		booked = []string{}
	}
	return c.JSON(http.StatusOK, map[string][]string{"booked": booked})
}

func (h *BookingHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()
	user := middleware.CurrentUser(c)

	var req dto.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.ServiceID == 0 || req.Date == "" || req.Time == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "serviceId, date, time are required")
	}

	booking, err := h.bookingService.Create(ctx, user, &req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, booking)
}

func (h *BookingHandler) ListMine(c echo.Context) error {
	user := middleware.CurrentUser(c)
	bookings, err := h.bookingService.ListMine(c.Request().Context(), user.ID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) Cancel(c echo.Context) error {
	user := middleware.CurrentUser(c)
	id, err := idParam(c)
	if err != nil {
		return err
	}
	booking, err := h.bookingService.Cancel(c.Request().Context(), user.ID, id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"id": booking.ID, "status": booking.Status})
}

func (h *BookingHandler) Feedback(c echo.Context) error {
	user := middleware.CurrentUser(c)
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var req dto.BookingFeedbackRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	booking, err := h.bookingService.Feedback(c.Request().Context(), user.ID, id, &req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"id":       booking.ID,
		"rating":   booking.Rating,
		"feedback": booking.Feedback,
	})
}
