package booking

import (
	"context"
	"errors"
	"math"
	"time"

	"staybook/internal/domain"
	"staybook/internal/repository"

	"gorm.io/gorm"
)

// dateLayout is the wire format for check-in/check-out; calendar dates
// only, no time component.
const dateLayout = "2006-01-02"

type Service struct {
	bookings BookingRepositoryInterface
	hotels   HotelReader
	accounts AccountReader
	events   EventSink
}

func NewService(
	bookings BookingRepositoryInterface,
	hotels HotelReader,
	accounts AccountReader,
	events EventSink,
) *Service {
	return &Service{
		bookings: bookings,
		hotels:   hotels,
		accounts: accounts,
		events:   events,
	}
}

// TotalPrice is the booking price rule: nightly offer price times the
// night count, rounded to 2 decimal places half away from zero.
func TotalPrice(offerPrice float64, nights int) float64 {
	return math.Round(offerPrice*float64(nights)*100) / 100
}

// CreateBooking validates a proposed stay and commits it. Checks run
// in order: hotel exists and is active, actor really is a customer,
// dates parse, end is strictly after start, and no overlapping booking
// exists for this hotel and customer. Ranges that touch at a boundary
// count as overlapping, so back-to-back stays for the same pair are
// rejected too.
func (s *Service) CreateBooking(ctx context.Context, customerID int64, hotelSlug string, req CreateBookingRequest) (*domain.Booking, error) {
	hotel, err := s.hotels.GetBySlug(ctx, hotelSlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, err
	}
	if !hotel.IsActive {
		return nil, ErrHotelNotFound
	}

	account, err := s.accounts.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if account.Role != domain.RoleCustomer {
		return nil, ErrNotCustomer
	}

	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return nil, ErrInvalidDate
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return nil, ErrInvalidDate
	}
	if !end.After(start) {
		return nil, ErrInvalidDateRange
	}

	b := &domain.Booking{
		HotelID:    hotel.ID,
		CustomerID: customerID,
		StartDate:  start,
		EndDate:    end,
	}
	b.TotalPrice = TotalPrice(hotel.OfferPrice, b.Nights())

	if err := s.bookings.CreateIfNoOverlap(ctx, b); err != nil {
		if errors.Is(err, repository.ErrBookingOverlap) {
			return nil, ErrOverlap
		}
		return nil, err
	}

	if s.events != nil {
		_ = s.events.BookingCreated(hotel.VendorID, b, hotel.Name)
	}

	return b, nil
}

func (s *Service) MyBookings(ctx context.Context, customerID int64) ([]BookingResponse, error) {
	rows, err := s.bookings.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	out := make([]BookingResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, BookingResponse{
			ID:         r.ID,
			HotelID:    r.HotelID,
			HotelName:  r.HotelName,
			HotelSlug:  r.HotelSlug,
			StartDate:  r.StartDate.Format(dateLayout),
			EndDate:    r.EndDate.Format(dateLayout),
			Nights:     nights(r.StartDate, r.EndDate),
			TotalPrice: r.TotalPrice,
		})
	}
	return out, nil
}

// CancelBooking deletes the customer's own booking. A booking that
// does not exist and a booking owned by someone else are the same
// not-found to the caller.
func (s *Service) CancelBooking(ctx context.Context, customerID, bookingID int64) error {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBookingNotFound
		}
		return err
	}

	affected, err := s.bookings.DeleteByIDAndCustomer(ctx, bookingID, customerID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrBookingNotFound
	}

	if s.events != nil {
		if hotel, err := s.hotels.GetHotelByID(ctx, b.HotelID); err == nil {
			_ = s.events.BookingCancelled(hotel.VendorID, bookingID, hotel.Name)
		}
	}
	return nil
}

func (s *Service) VendorBookings(ctx context.Context, vendorID int64) ([]VendorBookingResponse, error) {
	account, err := s.accounts.GetByID(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	if account.Role != domain.RoleVendor {
		return nil, ErrNotVendor
	}

	rows, err := s.bookings.ListByVendor(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	out := make([]VendorBookingResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, VendorBookingResponse{
			ID:            r.ID,
			HotelID:       r.HotelID,
			HotelName:     r.HotelName,
			CustomerName:  r.CustomerName,
			CustomerEmail: r.CustomerEmail,
			StartDate:     r.StartDate.Format(dateLayout),
			EndDate:       r.EndDate.Format(dateLayout),
			Nights:        nights(r.StartDate, r.EndDate),
			TotalPrice:    r.TotalPrice,
		})
	}
	return out, nil
}

func nights(start, end time.Time) int {
	return int(end.Sub(start).Hours() / 24)
}
