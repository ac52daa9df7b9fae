package repository

import (
	"context"
	"errors"
	"time"

	"staybook/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrBookingOverlap is returned when a proposed stay shares at least
// one calendar day with an existing booking for the same hotel and
// customer. Boundary-touching ranges count as overlapping.
var ErrBookingOverlap = errors.New("overlapping booking")

// NoDoubleBookingConstraint is the Postgres exclusion constraint that
// backstops the transactional overlap check.
const NoDoubleBookingConstraint = "no_double_booking"

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID         int64     `gorm:"column:id;primaryKey"`
	HotelID    int64     `gorm:"column:hotel_id;index"`
	CustomerID int64     `gorm:"column:customer_id;index"`
	StartDate  time.Time `gorm:"column:start_date"`
	EndDate    time.Time `gorm:"column:end_date"`
	TotalPrice float64   `gorm:"column:total_price"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	return &domain.Booking{
		ID:         m.ID,
		HotelID:    m.HotelID,
		CustomerID: m.CustomerID,
		StartDate:  m.StartDate,
		EndDate:    m.EndDate,
		TotalPrice: m.TotalPrice,
		CreatedAt:  m.CreatedAt,
	}
}

// CreateIfNoOverlap runs the overlap check and the insert in one
// transaction. On Postgres the customer's existing rows for the hotel
// are locked first, so two concurrent attempts cannot both pass the
// check; the exclusion constraint catches anything that still slips
// through and is reported as the same ErrBookingOverlap.
func (r *BookingRepository) CreateIfNoOverlap(ctx context.Context, b *domain.Booking) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := tx.Where(
			"hotel_id = ? AND customer_id = ? AND start_date <= ? AND end_date >= ?",
			b.HotelID, b.CustomerID, b.EndDate, b.StartDate,
		)
		if tx.Dialector.Name() == "postgres" {
			q = q.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var existing []bookingModel
		if err := q.Find(&existing).Error; err != nil {
			return err
		}
		if len(existing) > 0 {
			return ErrBookingOverlap
		}

		m := toBookingModel(b)
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		*b = *toDomainBooking(m)
		return nil
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.ConstraintName == NoDoubleBookingConstraint {
			return ErrBookingOverlap
		}
		return err
	}
	return nil
}

func toBookingModel(b *domain.Booking) bookingModel {
	return bookingModel{
		ID:         b.ID,
		HotelID:    b.HotelID,
		CustomerID: b.CustomerID,
		StartDate:  b.StartDate,
		EndDate:    b.EndDate,
		TotalPrice: b.TotalPrice,
		CreatedAt:  b.CreatedAt,
	}
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

// CustomerBookingRow carries a customer's booking joined with the hotel
// it is for.
type CustomerBookingRow struct {
	ID         int64     `gorm:"column:id"`
	HotelID    int64     `gorm:"column:hotel_id"`
	HotelName  string    `gorm:"column:hotel_name"`
	HotelSlug  string    `gorm:"column:hotel_slug"`
	StartDate  time.Time `gorm:"column:start_date"`
	EndDate    time.Time `gorm:"column:end_date"`
	TotalPrice float64   `gorm:"column:total_price"`
}

func (r *BookingRepository) ListByCustomer(ctx context.Context, customerID int64) ([]CustomerBookingRow, error) {
	var rows []CustomerBookingRow
	err := r.db.WithContext(ctx).
		Table("bookings").
		Select("bookings.id, bookings.hotel_id, hotels.name AS hotel_name, hotels.slug AS hotel_slug, bookings.start_date, bookings.end_date, bookings.total_price").
		Joins("JOIN hotels ON hotels.id = bookings.hotel_id").
		Where("bookings.customer_id = ?", customerID).
		Order("bookings.start_date DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// VendorBookingRow carries a booking on one of a vendor's hotels,
// joined with the hotel and the booking customer.
type VendorBookingRow struct {
	ID            int64     `gorm:"column:id"`
	HotelID       int64     `gorm:"column:hotel_id"`
	HotelName     string    `gorm:"column:hotel_name"`
	CustomerName  string    `gorm:"column:customer_name"`
	CustomerEmail string    `gorm:"column:customer_email"`
	StartDate     time.Time `gorm:"column:start_date"`
	EndDate       time.Time `gorm:"column:end_date"`
	TotalPrice    float64   `gorm:"column:total_price"`
}

func (r *BookingRepository) ListByVendor(ctx context.Context, vendorID int64) ([]VendorBookingRow, error) {
	var rows []VendorBookingRow
	err := r.db.WithContext(ctx).
		Table("bookings").
		Select("bookings.id, bookings.hotel_id, hotels.name AS hotel_name, "+
			"accounts.first_name || ' ' || accounts.last_name AS customer_name, "+
			"accounts.email AS customer_email, "+
			"bookings.start_date, bookings.end_date, bookings.total_price").
		Joins("JOIN hotels ON hotels.id = bookings.hotel_id").
		Joins("JOIN accounts ON accounts.id = bookings.customer_id").
		Where("hotels.vendor_id = ?", vendorID).
		Order("bookings.start_date DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// DeleteByIDAndCustomer removes a booking only when it belongs to the
// customer; the returned count tells the caller whether anything
// matched.
func (r *BookingRepository) DeleteByIDAndCustomer(ctx context.Context, id, customerID int64) (int64, error) {
	tx := r.db.WithContext(ctx).
		Where("id = ? AND customer_id = ?", id, customerID).
		Delete(&bookingModel{})
	if tx.Error != nil {
		return 0, tx.Error
	}
	return tx.RowsAffected, nil
}
