package catalog

import (
	"context"
	"errors"
	"log"
	"mime/multipart"

	"staybook/internal/domain"
	"staybook/internal/pkg/slug"
	"staybook/internal/pkg/validator"

	"gorm.io/gorm"
)

type Service struct {
	hotels   HotelRepositoryInterface
	accounts AccountReader
	files    FileStore
}

func NewService(hotels HotelRepositoryInterface, accounts AccountReader, files FileStore) *Service {
	return &Service{hotels: hotels, accounts: accounts, files: files}
}

// ListHotels returns active hotels for browsing. Unknown sort values
// fall back to newest-first rather than erroring.
func (s *Service) ListHotels(ctx context.Context, search, sort string) ([]HotelSummary, error) {
	hotels, err := s.hotels.List(ctx, search, sort)
	if err != nil {
		return nil, err
	}

	out := make([]HotelSummary, 0, len(hotels))
	for _, h := range hotels {
		out = append(out, toHotelSummary(h))
	}
	return out, nil
}

func (s *Service) GetHotel(ctx context.Context, hotelSlug string) (*domain.Hotel, error) {
	h, err := s.hotels.GetBySlug(ctx, hotelSlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, err
	}
	if !h.IsActive {
		return nil, ErrHotelNotFound
	}
	return h, nil
}

func (s *Service) ListAmenities(ctx context.Context) ([]domain.Amenity, error) {
	return s.hotels.ListAmenities(ctx)
}

func (s *Service) VendorHotels(ctx context.Context, vendorID int64) ([]HotelSummary, error) {
	if err := s.ensureVendor(ctx, vendorID); err != nil {
		return nil, err
	}

	hotels, err := s.hotels.ListByVendor(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	out := make([]HotelSummary, 0, len(hotels))
	for _, h := range hotels {
		out = append(out, toHotelSummary(h))
	}
	return out, nil
}

func (s *Service) CreateHotel(ctx context.Context, vendorID int64, req CreateHotelRequest) (*domain.Hotel, error) {
	if err := s.ensureVendor(ctx, vendorID); err != nil {
		return nil, err
	}
	if req.OfferPrice > req.Price {
		return nil, ErrValidation
	}

	hotelSlug, err := s.uniqueSlug(ctx, req.Name)
	if err != nil {
		return nil, err
	}

	amenityIDs, err := s.hotels.FilterAmenityIDs(ctx, req.AmenityIDs)
	if err != nil {
		return nil, err
	}

	h := &domain.Hotel{
		VendorID:    vendorID,
		Name:        req.Name,
		Slug:        hotelSlug,
		Description: req.Description,
		Price:       req.Price,
		OfferPrice:  req.OfferPrice,
		Location:    req.Location,
		IsActive:    true,
	}
	if fields := validator.Validate(h); fields != nil {
		return nil, ErrValidation
	}
	if err := s.hotels.Create(ctx, h, amenityIDs); err != nil {
		return nil, err
	}
	return s.hotels.GetBySlug(ctx, h.Slug)
}

func (s *Service) UpdateHotel(ctx context.Context, vendorID int64, hotelSlug string, req UpdateHotelRequest) (*domain.Hotel, error) {
	h, err := s.ownedHotel(ctx, vendorID, hotelSlug)
	if err != nil {
		return nil, err
	}
	if req.OfferPrice > req.Price {
		return nil, ErrValidation
	}

	h.Name = req.Name
	h.Description = req.Description
	h.Location = req.Location
	h.Price = req.Price
	h.OfferPrice = req.OfferPrice
	if req.IsActive != nil {
		h.IsActive = *req.IsActive
	}
	if fields := validator.Validate(h); fields != nil {
		return nil, ErrValidation
	}

	var amenityIDs []int64
	if req.AmenityIDs != nil {
		amenityIDs, err = s.hotels.FilterAmenityIDs(ctx, *req.AmenityIDs)
		if err != nil {
			return nil, err
		}
		if amenityIDs == nil {
			amenityIDs = []int64{}
		}
	}

	if err := s.hotels.Update(ctx, h, amenityIDs); err != nil {
		return nil, err
	}
	return s.hotels.GetBySlug(ctx, h.Slug)
}

// DeleteHotel removes the listing and everything hanging off it:
// images (rows and files) and bookings.
func (s *Service) DeleteHotel(ctx context.Context, vendorID int64, hotelSlug string) error {
	h, err := s.ownedHotel(ctx, vendorID, hotelSlug)
	if err != nil {
		return err
	}

	if err := s.hotels.Delete(ctx, h.ID); err != nil {
		return err
	}

	for _, img := range h.Images {
		if err := s.files.Remove(img.URL); err != nil {
			log.Printf("catalog: leftover image file url=%s err=%v", img.URL, err)
		}
	}
	return nil
}

func (s *Service) AddImages(ctx context.Context, vendorID int64, hotelSlug string, files []*multipart.FileHeader) ([]domain.HotelImage, error) {
	h, err := s.ownedHotel(ctx, vendorID, hotelSlug)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, ErrValidation
	}

	out := make([]domain.HotelImage, 0, len(files))
	for _, f := range files {
		url, err := s.files.Save(f)
		if err != nil {
			return nil, err
		}
		img := domain.HotelImage{HotelID: h.ID, URL: url}
		if err := s.hotels.AddImage(ctx, &img); err != nil {
			_ = s.files.Remove(url)
			return nil, err
		}
		out = append(out, img)
	}
	return out, nil
}

func (s *Service) DeleteImage(ctx context.Context, vendorID, imageID int64) error {
	img, err := s.hotels.GetImageByID(ctx, imageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrImageNotFound
		}
		return err
	}

	h, err := s.hotels.GetHotelByID(ctx, img.HotelID)
	if err != nil {
		return err
	}
	if h.VendorID != vendorID {
		return ErrNotOwner
	}

	if err := s.hotels.DeleteImage(ctx, imageID); err != nil {
		return err
	}
	return s.files.Remove(img.URL)
}

// ownedHotel loads a hotel by slug and verifies the actor owns it.
// Vendors see their own inactive listings here, unlike the public
// lookup.
func (s *Service) ownedHotel(ctx context.Context, vendorID int64, hotelSlug string) (*domain.Hotel, error) {
	if err := s.ensureVendor(ctx, vendorID); err != nil {
		return nil, err
	}

	h, err := s.hotels.GetBySlug(ctx, hotelSlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, err
	}
	if h.VendorID != vendorID {
		return nil, ErrNotOwner
	}
	return h, nil
}

// ensureVendor cross-checks the role store; a stale or forged token
// with the wrong role is rejected even past the middleware.
func (s *Service) ensureVendor(ctx context.Context, accountID int64) error {
	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return err
	}
	if account.Role != domain.RoleVendor {
		return ErrNotVendor
	}
	return nil
}

func (s *Service) uniqueSlug(ctx context.Context, name string) (string, error) {
	candidate := slug.Make(name)
	exists, err := s.hotels.ExistsBySlug(ctx, candidate)
	if err != nil {
		return "", err
	}
	if exists {
		candidate = slug.MakeUnique(name)
	}
	return candidate, nil
}
