package booking

type CreateBookingRequest struct {
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
}

type BookingResponse struct {
	ID         int64   `json:"id"`
	HotelID    int64   `json:"hotel_id"`
	HotelName  string  `json:"hotel_name"`
	HotelSlug  string  `json:"hotel_slug"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	Nights     int     `json:"nights"`
	TotalPrice float64 `json:"total_price"`
}

type VendorBookingResponse struct {
	ID            int64   `json:"id"`
	HotelID       int64   `json:"hotel_id"`
	HotelName     string  `json:"hotel_name"`
	CustomerName  string  `json:"customer_name"`
	CustomerEmail string  `json:"customer_email"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	Nights        int     `json:"nights"`
	TotalPrice    float64 `json:"total_price"`
}
