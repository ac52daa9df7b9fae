package booking

import (
	"errors"
	"net/http"
	"strconv"

	"staybook/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterCustomerRoutes expects the group to carry auth + the
// customer role guard.
func (h *Handler) RegisterCustomerRoutes(customer *gin.RouterGroup) {
	customer.POST("/hotels/:slug/bookings", h.CreateBooking)
	customer.GET("/bookings/my", h.MyBookings)
	customer.DELETE("/bookings/:id", h.CancelBooking)
}

// RegisterVendorRoutes expects the group to carry auth + the vendor
// role guard.
func (h *Handler) RegisterVendorRoutes(vendor *gin.RouterGroup) {
	vendor.GET("/bookings", h.VendorBookings)
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Please select both start and end dates for booking")
		return
	}

	b, err := h.service.CreateBooking(c.Request.Context(), c.GetInt64("account_id"), c.Param("slug"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrHotelNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Hotel not found or is no longer available")
		case errors.Is(err, ErrInvalidDate):
			response.Error(c, http.StatusBadRequest, "INVALID_DATE", "Invalid date format, expected YYYY-MM-DD")
		case errors.Is(err, ErrInvalidDateRange):
			response.Error(c, http.StatusBadRequest, "INVALID_DATE_RANGE", "End date must be after start date")
		case errors.Is(err, ErrOverlap):
			response.Error(c, http.StatusConflict, "BOOKING_CONFLICT", "You already have a booking for this hotel on the selected dates")
		case errors.Is(err, ErrNotCustomer):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only customers can book hotels")
		default:
			response.Error(c, http.StatusInternalServerError, "BOOKING_FAILED", "Failed to create booking")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"booking": BookingResponse{
			ID:         b.ID,
			HotelID:    b.HotelID,
			StartDate:  b.StartDate.Format(dateLayout),
			EndDate:    b.EndDate.Format(dateLayout),
			Nights:     b.Nights(),
			TotalPrice: b.TotalPrice,
		},
	})
}

func (h *Handler) MyBookings(c *gin.Context) {
	bookings, err := h.service.MyBookings(c.Request.Context(), c.GetInt64("account_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list bookings")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"bookings": bookings})
}

func (h *Handler) CancelBooking(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	if err := h.service.CancelBooking(c.Request.Context(), c.GetInt64("account_id"), bookingID); err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found or you don't have permission to cancel it")
			return
		}
		response.Error(c, http.StatusInternalServerError, "CANCEL_FAILED", "Failed to cancel booking")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Booking cancelled"})
}

func (h *Handler) VendorBookings(c *gin.Context) {
	bookings, err := h.service.VendorBookings(c.Request.Context(), c.GetInt64("account_id"))
	if err != nil {
		if errors.Is(err, ErrNotVendor) {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only vendors can view hotel bookings")
			return
		}
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list bookings")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"bookings": bookings})
}
