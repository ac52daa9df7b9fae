package catalog

import (
	"context"
	"mime/multipart"

	"staybook/internal/domain"
)

// HotelRepositoryInterface is the subset of the hotel repository the
// catalog service uses.
type HotelRepositoryInterface interface {
	Create(ctx context.Context, h *domain.Hotel, amenityIDs []int64) error
	GetBySlug(ctx context.Context, slug string) (*domain.Hotel, error)
	GetHotelByID(ctx context.Context, id int64) (*domain.Hotel, error)
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
	List(ctx context.Context, search, sort string) ([]*domain.Hotel, error)
	ListByVendor(ctx context.Context, vendorID int64) ([]*domain.Hotel, error)
	Update(ctx context.Context, h *domain.Hotel, amenityIDs []int64) error
	Delete(ctx context.Context, hotelID int64) error
	ListAmenities(ctx context.Context) ([]domain.Amenity, error)
	FilterAmenityIDs(ctx context.Context, ids []int64) ([]int64, error)
	AddImage(ctx context.Context, img *domain.HotelImage) error
	GetImageByID(ctx context.Context, id int64) (*domain.HotelImage, error)
	DeleteImage(ctx context.Context, id int64) error
}

// AccountReader resolves the acting principal so role checks do not
// rely on the token alone.
type AccountReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Account, error)
}

// FileStore is where uploaded hotel images live.
type FileStore interface {
	Save(fileHeader *multipart.FileHeader) (url string, err error)
	Remove(url string) error
}
