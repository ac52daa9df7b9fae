package repository

import (
	"context"
	"strings"
	"time"

	"staybook/internal/domain"

	"gorm.io/gorm"
)

type HotelRepository struct {
	db *gorm.DB
}

func NewHotelRepository(db *gorm.DB) *HotelRepository {
	return &HotelRepository{db: db}
}

type hotelModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	VendorID    int64     `gorm:"column:vendor_id;index"`
	Name        string    `gorm:"column:name"`
	Slug        string    `gorm:"column:slug;uniqueIndex"`
	Description *string   `gorm:"column:description"`
	Price       float64   `gorm:"column:price"`
	OfferPrice  float64   `gorm:"column:offer_price"`
	Location    string    `gorm:"column:location"`
	IsActive    bool      `gorm:"column:is_active"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (hotelModel) TableName() string { return "hotels" }

type amenityModel struct {
	ID   int64  `gorm:"column:id;primaryKey"`
	Name string `gorm:"column:name;uniqueIndex"`
}

func (amenityModel) TableName() string { return "amenities" }

type hotelAmenityModel struct {
	HotelID   int64 `gorm:"column:hotel_id;primaryKey"`
	AmenityID int64 `gorm:"column:amenity_id;primaryKey"`
}

func (hotelAmenityModel) TableName() string { return "hotel_amenities" }

type hotelImageModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	HotelID   int64     `gorm:"column:hotel_id;index"`
	URL       string    `gorm:"column:url"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (hotelImageModel) TableName() string { return "hotel_images" }

func toDomainHotel(m hotelModel) *domain.Hotel {
	var desc string
	if m.Description != nil {
		desc = *m.Description
	}

	return &domain.Hotel{
		ID:          m.ID,
		VendorID:    m.VendorID,
		Name:        m.Name,
		Slug:        m.Slug,
		Description: desc,
		Price:       m.Price,
		OfferPrice:  m.OfferPrice,
		Location:    m.Location,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toHotelModel(h *domain.Hotel) hotelModel {
	return hotelModel{
		ID:          h.ID,
		VendorID:    h.VendorID,
		Name:        h.Name,
		Slug:        h.Slug,
		Description: nullableString(h.Description),
		Price:       h.Price,
		OfferPrice:  h.OfferPrice,
		Location:    h.Location,
		IsActive:    h.IsActive,
		CreatedAt:   h.CreatedAt,
		UpdatedAt:   h.UpdatedAt,
	}
}

// Create inserts the hotel and its amenity links in one transaction.
func (r *HotelRepository) Create(ctx context.Context, h *domain.Hotel, amenityIDs []int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m := toHotelModel(h)
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		for _, id := range amenityIDs {
			if err := tx.Create(&hotelAmenityModel{HotelID: m.ID, AmenityID: id}).Error; err != nil {
				return err
			}
		}
		*h = *toDomainHotel(m)
		return nil
	})
}

func (r *HotelRepository) GetBySlug(ctx context.Context, slug string) (*domain.Hotel, error) {
	var m hotelModel
	tx := r.db.WithContext(ctx).Where("slug = ?", slug).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}

	h := toDomainHotel(m)
	if err := r.loadRelations(ctx, []*domain.Hotel{h}); err != nil {
		return nil, err
	}
	return h, nil
}

func (r *HotelRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&hotelModel{}).Where("slug = ?", slug).Count(&cnt).Error
	if err != nil {
		return false, err
	}
	return cnt > 0, nil
}

const (
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
)

// List returns active hotels with amenities and images, optionally
// filtered by a case-insensitive name substring and sorted by offer
// price.
func (r *HotelRepository) List(ctx context.Context, search, sort string) ([]*domain.Hotel, error) {
	q := r.db.WithContext(ctx).Where("is_active = ?", true)

	if search = strings.TrimSpace(search); search != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	switch sort {
	case SortPriceAsc:
		q = q.Order("offer_price ASC")
	case SortPriceDesc:
		q = q.Order("offer_price DESC")
	default:
		q = q.Order("created_at DESC")
	}

	var rows []hotelModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return r.hydrate(ctx, rows)
}

func (r *HotelRepository) ListByVendor(ctx context.Context, vendorID int64) ([]*domain.Hotel, error) {
	var rows []hotelModel
	err := r.db.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return r.hydrate(ctx, rows)
}

func (r *HotelRepository) hydrate(ctx context.Context, rows []hotelModel) ([]*domain.Hotel, error) {
	out := make([]*domain.Hotel, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainHotel(m))
	}
	if err := r.loadRelations(ctx, out); err != nil {
		return nil, err
	}
	return out, nil
}

// loadRelations attaches amenities and images for a batch of hotels in
// two queries instead of per-hotel lookups.
func (r *HotelRepository) loadRelations(ctx context.Context, hotels []*domain.Hotel) error {
	if len(hotels) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(hotels))
	byID := make(map[int64]*domain.Hotel, len(hotels))
	for _, h := range hotels {
		ids = append(ids, h.ID)
		byID[h.ID] = h
	}

	type amenityRow struct {
		HotelID int64  `gorm:"column:hotel_id"`
		ID      int64  `gorm:"column:id"`
		Name    string `gorm:"column:name"`
	}
	var amenities []amenityRow
	err := r.db.WithContext(ctx).
		Table("hotel_amenities").
		Select("hotel_amenities.hotel_id, amenities.id, amenities.name").
		Joins("JOIN amenities ON amenities.id = hotel_amenities.amenity_id").
		Where("hotel_amenities.hotel_id IN ?", ids).
		Scan(&amenities).Error
	if err != nil {
		return err
	}
	for _, a := range amenities {
		h := byID[a.HotelID]
		h.Amenities = append(h.Amenities, domain.Amenity{ID: a.ID, Name: a.Name})
	}

	var images []hotelImageModel
	err = r.db.WithContext(ctx).
		Where("hotel_id IN ?", ids).
		Order("id ASC").
		Find(&images).Error
	if err != nil {
		return err
	}
	for _, img := range images {
		h := byID[img.HotelID]
		h.Images = append(h.Images, domain.HotelImage{
			ID:        img.ID,
			HotelID:   img.HotelID,
			URL:       img.URL,
			CreatedAt: img.CreatedAt,
		})
	}
	return nil
}

// Update rewrites mutable hotel fields and replaces the amenity set.
func (r *HotelRepository) Update(ctx context.Context, h *domain.Hotel, amenityIDs []int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m := toHotelModel(h)
		if err := tx.Save(&m).Error; err != nil {
			return err
		}
		if amenityIDs != nil {
			if err := tx.Where("hotel_id = ?", h.ID).Delete(&hotelAmenityModel{}).Error; err != nil {
				return err
			}
			for _, id := range amenityIDs {
				if err := tx.Create(&hotelAmenityModel{HotelID: h.ID, AmenityID: id}).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// Delete removes the hotel along with its images, amenity links and
// bookings. Cascade is done in the transaction so SQLite behaves the
// same as Postgres.
func (r *HotelRepository) Delete(ctx context.Context, hotelID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("hotel_id = ?", hotelID).Delete(&bookingModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("hotel_id = ?", hotelID).Delete(&hotelImageModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("hotel_id = ?", hotelID).Delete(&hotelAmenityModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&hotelModel{}, hotelID).Error
	})
}

func (r *HotelRepository) ListAmenities(ctx context.Context) ([]domain.Amenity, error) {
	var rows []amenityModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Amenity, 0, len(rows))
	for _, m := range rows {
		out = append(out, domain.Amenity{ID: m.ID, Name: m.Name})
	}
	return out, nil
}

// FilterAmenityIDs keeps only ids that actually exist, mirroring the
// lenient amenity handling on hotel create.
func (r *HotelRepository) FilterAmenityIDs(ctx context.Context, ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var rows []amenityModel
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]int64, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.ID)
	}
	return out, nil
}

func (r *HotelRepository) AddImage(ctx context.Context, img *domain.HotelImage) error {
	m := hotelImageModel{HotelID: img.HotelID, URL: img.URL}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	img.ID = m.ID
	img.CreatedAt = m.CreatedAt
	return nil
}

func (r *HotelRepository) GetImageByID(ctx context.Context, id int64) (*domain.HotelImage, error) {
	var m hotelImageModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return &domain.HotelImage{ID: m.ID, HotelID: m.HotelID, URL: m.URL, CreatedAt: m.CreatedAt}, nil
}

func (r *HotelRepository) DeleteImage(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&hotelImageModel{}, id).Error
}

func (r *HotelRepository) GetHotelByID(ctx context.Context, id int64) (*domain.Hotel, error) {
	var m hotelModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return toDomainHotel(m), nil
}
