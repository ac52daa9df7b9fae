package booking

import "errors"

var (
	ErrHotelNotFound    = errors.New("hotel not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrInvalidDate      = errors.New("invalid date format")
	ErrInvalidDateRange = errors.New("end date must be after start date")
	ErrOverlap          = errors.New("overlapping booking")
	ErrNotCustomer      = errors.New("only customers can book")
	ErrNotVendor        = errors.New("only vendors can view hotel bookings")
)
