package booking

import (
	"context"

	"staybook/internal/domain"
	"staybook/internal/repository"
)

// BookingRepositoryInterface is the subset of the booking repository
// the booking service uses.
type BookingRepositoryInterface interface {
	CreateIfNoOverlap(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]repository.CustomerBookingRow, error)
	ListByVendor(ctx context.Context, vendorID int64) ([]repository.VendorBookingRow, error)
	DeleteByIDAndCustomer(ctx context.Context, id, customerID int64) (int64, error)
}

// HotelReader gives the service the hotel being booked.
type HotelReader interface {
	GetBySlug(ctx context.Context, slug string) (*domain.Hotel, error)
	GetHotelByID(ctx context.Context, id int64) (*domain.Hotel, error)
}

// AccountReader resolves the acting principal for the role cross-check.
type AccountReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Account, error)
}

// EventSink receives booking lifecycle events for vendor-facing live
// feeds. Delivery is best-effort.
type EventSink interface {
	BookingCreated(vendorID int64, b *domain.Booking, hotelName string) error
	BookingCancelled(vendorID, bookingID int64, hotelName string) error
}
