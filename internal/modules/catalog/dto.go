package catalog

import "staybook/internal/domain"

type CreateHotelRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Location    string  `json:"location" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	OfferPrice  float64 `json:"offer_price" binding:"required,gt=0"`
	AmenityIDs  []int64 `json:"amenity_ids"`
}

type UpdateHotelRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Location    string   `json:"location" binding:"required"`
	Price       float64  `json:"price" binding:"required,gt=0"`
	OfferPrice  float64  `json:"offer_price" binding:"required,gt=0"`
	IsActive    *bool    `json:"is_active"`
	AmenityIDs  *[]int64 `json:"amenity_ids"`
}

// HotelSummary is the browse-list shape: one cover image, amenity
// names only.
type HotelSummary struct {
	ID         int64    `json:"id"`
	Name       string   `json:"name"`
	Slug       string   `json:"slug"`
	Location   string   `json:"location"`
	Price      float64  `json:"price"`
	OfferPrice float64  `json:"offer_price"`
	IsActive   bool     `json:"is_active"`
	ImageURL   string   `json:"image_url,omitempty"`
	Amenities  []string `json:"amenities"`
}

func toHotelSummary(h *domain.Hotel) HotelSummary {
	s := HotelSummary{
		ID:         h.ID,
		Name:       h.Name,
		Slug:       h.Slug,
		Location:   h.Location,
		Price:      h.Price,
		OfferPrice: h.OfferPrice,
		IsActive:   h.IsActive,
		Amenities:  make([]string, 0, len(h.Amenities)),
	}
	if len(h.Images) > 0 {
		s.ImageURL = h.Images[0].URL
	}
	for _, a := range h.Amenities {
		s.Amenities = append(s.Amenities, a.Name)
	}
	return s
}
