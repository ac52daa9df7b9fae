package domain

import "time"

// Booking spans calendar nights: StartDate is check-in, EndDate is
// check-out, always strictly after StartDate. Dates carry no time of
// day and are normalized to UTC midnight.
type Booking struct {
	ID         int64     `json:"id"`
	HotelID    int64     `json:"hotel_id" validate:"required"`
	CustomerID int64     `json:"customer_id" validate:"required"`
	StartDate  time.Time `json:"start_date" validate:"required"`
	EndDate    time.Time `json:"end_date" validate:"required"`
	TotalPrice float64   `json:"total_price" validate:"gte=0"`
	CreatedAt  time.Time `json:"created_at"`

	Hotel    *Hotel   `json:"hotel,omitempty"`
	Customer *Account `json:"customer,omitempty"`
}

// Nights is the count of billable nights between check-in and check-out.
func (b *Booking) Nights() int {
	return int(b.EndDate.Sub(b.StartDate).Hours() / 24)
}
