package domain

import "time"

type Hotel struct {
	ID          int64     `json:"id"`
	VendorID    int64     `json:"vendor_id"`
	Name        string    `json:"name" validate:"required"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price" validate:"required,gt=0"`
	OfferPrice  float64   `json:"offer_price" validate:"required,gt=0"`
	Location    string    `json:"location" validate:"required"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Amenities []Amenity    `json:"amenities,omitempty"`
	Images    []HotelImage `json:"images,omitempty"`
}

// Amenity is a shared tag; hotels reference it many-to-many.
type Amenity struct {
	ID   int64  `json:"id"`
	Name string `json:"name" validate:"required"`
}

type HotelImage struct {
	ID        int64     `json:"id"`
	HotelID   int64     `json:"hotel_id"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
}
