package booking

import (
	"context"
	"testing"
	"time"

	"staybook/internal/domain"
	"staybook/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// Mock repositories
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) CreateIfNoOverlap(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	if b != nil && args.Error(0) == nil {
		b.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListByCustomer(ctx context.Context, customerID int64) ([]repository.CustomerBookingRow, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.CustomerBookingRow), args.Error(1)
}

func (m *MockBookingRepository) ListByVendor(ctx context.Context, vendorID int64) ([]repository.VendorBookingRow, error) {
	args := m.Called(ctx, vendorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.VendorBookingRow), args.Error(1)
}

func (m *MockBookingRepository) DeleteByIDAndCustomer(ctx context.Context, id, customerID int64) (int64, error) {
	args := m.Called(ctx, id, customerID)
	return args.Get(0).(int64), args.Error(1)
}

type MockHotelReader struct {
	mock.Mock
}

func (m *MockHotelReader) GetBySlug(ctx context.Context, slug string) (*domain.Hotel, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Hotel), args.Error(1)
}

func (m *MockHotelReader) GetHotelByID(ctx context.Context, id int64) (*domain.Hotel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Hotel), args.Error(1)
}

type MockAccountReader struct {
	mock.Mock
}

func (m *MockAccountReader) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

type MockEventSink struct {
	mock.Mock
}

func (m *MockEventSink) BookingCreated(vendorID int64, b *domain.Booking, hotelName string) error {
	args := m.Called(vendorID, b, hotelName)
	return args.Error(0)
}

func (m *MockEventSink) BookingCancelled(vendorID, bookingID int64, hotelName string) error {
	args := m.Called(vendorID, bookingID, hotelName)
	return args.Error(0)
}

func activeHotel() *domain.Hotel {
	return &domain.Hotel{
		ID:         10,
		VendorID:   5,
		Name:       "Grand Almaty Hotel",
		Slug:       "grand-almaty-hotel",
		Price:      1500,
		OfferPrice: 1000,
		IsActive:   true,
	}
}

func customerAccount() *domain.Account {
	return &domain.Account{ID: 1, Role: domain.RoleCustomer, Verified: true}
}

func TestTotalPrice(t *testing.T) {
	assert.Equal(t, 3000.0, TotalPrice(1000, 3))
	assert.Equal(t, 2999.97, TotalPrice(999.99, 3))
	assert.Equal(t, 0.0, TotalPrice(1000, 0))
}

func TestCreateBooking_Success(t *testing.T) {
	bookings := new(MockBookingRepository)
	hotels := new(MockHotelReader)
	accounts := new(MockAccountReader)
	events := new(MockEventSink)

	hotels.On("GetBySlug", mock.Anything, "grand-almaty-hotel").Return(activeHotel(), nil)
	accounts.On("GetByID", mock.Anything, int64(1)).Return(customerAccount(), nil)
	bookings.On("CreateIfNoOverlap", mock.Anything, mock.Anything).Return(nil)
	events.On("BookingCreated", int64(5), mock.Anything, "Grand Almaty Hotel").Return(nil)

	svc := NewService(bookings, hotels, accounts, events)

	b, err := svc.CreateBooking(context.Background(), 1, "grand-almaty-hotel", CreateBookingRequest{
		StartDate: "2025-01-01",
		EndDate:   "2025-01-04",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(999), b.ID)
	assert.Equal(t, 3, b.Nights())
	assert.Equal(t, 3000.0, b.TotalPrice)
	bookings.AssertExpectations(t)
	events.AssertExpectations(t)
}

func TestCreateBooking_Overlap(t *testing.T) {
	bookings := new(MockBookingRepository)
	hotels := new(MockHotelReader)
	accounts := new(MockAccountReader)

	hotels.On("GetBySlug", mock.Anything, "grand-almaty-hotel").Return(activeHotel(), nil)
	accounts.On("GetByID", mock.Anything, int64(1)).Return(customerAccount(), nil)
	bookings.On("CreateIfNoOverlap", mock.Anything, mock.Anything).Return(repository.ErrBookingOverlap)

	svc := NewService(bookings, hotels, accounts, nil)

	// 2025-01-04 touches the end of an existing stay; boundary contact
	// still counts as a conflict
	_, err := svc.CreateBooking(context.Background(), 1, "grand-almaty-hotel", CreateBookingRequest{
		StartDate: "2025-01-04",
		EndDate:   "2025-01-06",
	})

	assert.ErrorIs(t, err, ErrOverlap)
}

func TestCreateBooking_EndNotAfterStart(t *testing.T) {
	bookings := new(MockBookingRepository)
	hotels := new(MockHotelReader)
	accounts := new(MockAccountReader)

	hotels.On("GetBySlug", mock.Anything, "grand-almaty-hotel").Return(activeHotel(), nil)
	accounts.On("GetByID", mock.Anything, int64(1)).Return(customerAccount(), nil)

	svc := NewService(bookings, hotels, accounts, nil)

	for _, end := range []string{"2025-01-01", "2024-12-30"} {
		_, err := svc.CreateBooking(context.Background(), 1, "grand-almaty-hotel", CreateBookingRequest{
			StartDate: "2025-01-01",
			EndDate:   end,
		})
		assert.ErrorIs(t, err, ErrInvalidDateRange)
	}
	bookings.AssertNotCalled(t, "CreateIfNoOverlap", mock.Anything, mock.Anything)
}

func TestCreateBooking_BadDateFormat(t *testing.T) {
	bookings := new(MockBookingRepository)
	hotels := new(MockHotelReader)
	accounts := new(MockAccountReader)

	hotels.On("GetBySlug", mock.Anything, "grand-almaty-hotel").Return(activeHotel(), nil)
	accounts.On("GetByID", mock.Anything, int64(1)).Return(customerAccount(), nil)

	svc := NewService(bookings, hotels, accounts, nil)

	_, err := svc.CreateBooking(context.Background(), 1, "grand-almaty-hotel", CreateBookingRequest{
		StartDate: "01/02/2025",
		EndDate:   "2025-01-04",
	})

	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestCreateBooking_HotelNotFound(t *testing.T) {
	bookings := new(MockBookingRepository)
	hotels := new(MockHotelReader)
	accounts := new(MockAccountReader)

	hotels.On("GetBySlug", mock.Anything, "nope").Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(bookings, hotels, accounts, nil)

	_, err := svc.CreateBooking(context.Background(), 1, "nope", CreateBookingRequest{
		StartDate: "2025-01-01",
		EndDate:   "2025-01-04",
	})

	assert.ErrorIs(t, err, ErrHotelNotFound)
}

func TestCreateBooking_InactiveHotelHidden(t *testing.T) {
	bookings := new(MockBookingRepository)
	hotels := new(MockHotelReader)
	accounts := new(MockAccountReader)

	h := activeHotel()
	h.IsActive = false
	hotels.On("GetBySlug", mock.Anything, "grand-almaty-hotel").Return(h, nil)

	svc := NewService(bookings, hotels, accounts, nil)

	_, err := svc.CreateBooking(context.Background(), 1, "grand-almaty-hotel", CreateBookingRequest{
		StartDate: "2025-01-01",
		EndDate:   "2025-01-04",
	})

	assert.ErrorIs(t, err, ErrHotelNotFound)
}

func TestCreateBooking_VendorCannotBook(t *testing.T) {
	bookings := new(MockBookingRepository)
	hotels := new(MockHotelReader)
	accounts := new(MockAccountReader)

	hotels.On("GetBySlug", mock.Anything, "grand-almaty-hotel").Return(activeHotel(), nil)
	accounts.On("GetByID", mock.Anything, int64(2)).Return(&domain.Account{ID: 2, Role: domain.RoleVendor}, nil)

	svc := NewService(bookings, hotels, accounts, nil)

	_, err := svc.CreateBooking(context.Background(), 2, "grand-almaty-hotel", CreateBookingRequest{
		StartDate: "2025-01-01",
		EndDate:   "2025-01-04",
	})

	assert.ErrorIs(t, err, ErrNotCustomer)
}

func TestMyBookings(t *testing.T) {
	bookings := new(MockBookingRepository)

	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 4, 0, 0, 0, 0, time.UTC)
	bookings.On("ListByCustomer", mock.Anything, int64(1)).Return([]repository.CustomerBookingRow{
		{ID: 7, HotelID: 10, HotelName: "Grand Almaty Hotel", HotelSlug: "grand-almaty-hotel", StartDate: start, EndDate: end, TotalPrice: 3000},
	}, nil)

	svc := NewService(bookings, nil, nil, nil)

	out, err := svc.MyBookings(context.Background(), 1)

	assert.NoError(t, err)
	assert.Len(t, out, 1)
	assert.Equal(t, "2025-01-01", out[0].StartDate)
	assert.Equal(t, "2025-01-04", out[0].EndDate)
	assert.Equal(t, 3, out[0].Nights)
	assert.Equal(t, 3000.0, out[0].TotalPrice)
}

func TestCancelBooking_NotFound(t *testing.T) {
	bookings := new(MockBookingRepository)

	bookings.On("GetByID", mock.Anything, int64(55)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(bookings, nil, nil, nil)

	err := svc.CancelBooking(context.Background(), 1, 55)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancelBooking_OtherCustomersBooking(t *testing.T) {
	bookings := new(MockBookingRepository)

	bookings.On("GetByID", mock.Anything, int64(7)).Return(&domain.Booking{ID: 7, HotelID: 10, CustomerID: 2}, nil)
	bookings.On("DeleteByIDAndCustomer", mock.Anything, int64(7), int64(1)).Return(int64(0), nil)

	svc := NewService(bookings, nil, nil, nil)

	err := svc.CancelBooking(context.Background(), 1, 7)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancelBooking_Success(t *testing.T) {
	bookings := new(MockBookingRepository)
	hotels := new(MockHotelReader)
	events := new(MockEventSink)

	bookings.On("GetByID", mock.Anything, int64(7)).Return(&domain.Booking{ID: 7, HotelID: 10, CustomerID: 1}, nil)
	bookings.On("DeleteByIDAndCustomer", mock.Anything, int64(7), int64(1)).Return(int64(1), nil)
	hotels.On("GetHotelByID", mock.Anything, int64(10)).Return(activeHotel(), nil)
	events.On("BookingCancelled", int64(5), int64(7), "Grand Almaty Hotel").Return(nil)

	svc := NewService(bookings, hotels, nil, events)

	err := svc.CancelBooking(context.Background(), 1, 7)
	assert.NoError(t, err)
	events.AssertExpectations(t)
}

func TestVendorBookings_RoleChecked(t *testing.T) {
	bookings := new(MockBookingRepository)
	accounts := new(MockAccountReader)

	accounts.On("GetByID", mock.Anything, int64(1)).Return(customerAccount(), nil)

	svc := NewService(bookings, nil, accounts, nil)

	_, err := svc.VendorBookings(context.Background(), 1)
	assert.ErrorIs(t, err, ErrNotVendor)
}

func TestVendorBookings_ListsRows(t *testing.T) {
	bookings := new(MockBookingRepository)
	accounts := new(MockAccountReader)

	accounts.On("GetByID", mock.Anything, int64(5)).Return(&domain.Account{ID: 5, Role: domain.RoleVendor}, nil)
	start := time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 2, 12, 0, 0, 0, 0, time.UTC)
	bookings.On("ListByVendor", mock.Anything, int64(5)).Return([]repository.VendorBookingRow{
		{ID: 3, HotelID: 10, HotelName: "Grand Almaty Hotel", CustomerName: "Asel Demo", CustomerEmail: "asel@mail.kz", StartDate: start, EndDate: end, TotalPrice: 2000},
	}, nil)

	svc := NewService(bookings, nil, accounts, nil)

	out, err := svc.VendorBookings(context.Background(), 5)

	assert.NoError(t, err)
	assert.Len(t, out, 1)
	assert.Equal(t, "Asel Demo", out[0].CustomerName)
	assert.Equal(t, 2, out[0].Nights)
}
