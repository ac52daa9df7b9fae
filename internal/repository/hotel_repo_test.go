package repository

import (
	"context"
	"testing"

	"staybook/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedAmenities(t *testing.T, db *gorm.DB, names ...string) []int64 {
	t.Helper()
	ids := make([]int64, 0, len(names))
	for _, name := range names {
		m := amenityModel{Name: name}
		require.NoError(t, db.Create(&m).Error)
		ids = append(ids, m.ID)
	}
	return ids
}

func TestHotelCreateAndGetBySlug(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	accounts := NewAccountRepository(db)
	hotels := NewHotelRepository(db)

	vendor := seedAccount(t, accounts, "vendor@test.dev", domain.RoleVendor)
	amenityIDs := seedAmenities(t, db, "Free WiFi", "Parking")

	h := &domain.Hotel{
		VendorID:    vendor.ID,
		Name:        "Grand Almaty Hotel",
		Slug:        "grand-almaty-hotel",
		Description: "City center stay",
		Price:       1500,
		OfferPrice:  1000,
		Location:    "Almaty",
		IsActive:    true,
	}
	require.NoError(t, hotels.Create(ctx, h, amenityIDs))
	require.NotZero(t, h.ID)

	got, err := hotels.GetBySlug(ctx, "grand-almaty-hotel")
	require.NoError(t, err)
	assert.Equal(t, h.ID, got.ID)
	assert.Equal(t, "Grand Almaty Hotel", got.Name)
	assert.Len(t, got.Amenities, 2)

	exists, err := hotels.ExistsBySlug(ctx, "grand-almaty-hotel")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = hotels.ExistsBySlug(ctx, "nope")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestHotelList_SearchAndSort(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	accounts := NewAccountRepository(db)
	hotels := NewHotelRepository(db)
	vendor := seedAccount(t, accounts, "vendor@test.dev", domain.RoleVendor)

	mk := func(name, slug string, offer float64, active bool) {
		require.NoError(t, hotels.Create(ctx, &domain.Hotel{
			VendorID: vendor.ID, Name: name, Slug: slug,
			Price: offer + 500, OfferPrice: offer, Location: "Almaty", IsActive: active,
		}, nil))
	}
	mk("Grand Almaty Hotel", "grand-almaty-hotel", 1000, true)
	mk("Sunset Resort", "sunset-resort", 500, true)
	mk("Grand Hidden Hotel", "grand-hidden-hotel", 700, false)

	all, err := hotels.List(ctx, "", "")
	require.NoError(t, err)
	assert.Len(t, all, 2) // inactive listings never show

	asc, err := hotels.List(ctx, "", SortPriceAsc)
	require.NoError(t, err)
	require.Len(t, asc, 2)
	assert.Equal(t, "sunset-resort", asc[0].Slug)

	desc, err := hotels.List(ctx, "", SortPriceDesc)
	require.NoError(t, err)
	require.Len(t, desc, 2)
	assert.Equal(t, "grand-almaty-hotel", desc[0].Slug)

	found, err := hotels.List(ctx, "GRAND", "")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "grand-almaty-hotel", found[0].Slug)
}

func TestHotelUpdate_ReplacesAmenities(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	accounts := NewAccountRepository(db)
	hotels := NewHotelRepository(db)
	vendor := seedAccount(t, accounts, "vendor@test.dev", domain.RoleVendor)
	amenityIDs := seedAmenities(t, db, "Free WiFi", "Parking", "Spa")

	h := &domain.Hotel{
		VendorID: vendor.ID, Name: "Grand Almaty Hotel", Slug: "grand-almaty-hotel",
		Price: 1500, OfferPrice: 1000, Location: "Almaty", IsActive: true,
	}
	require.NoError(t, hotels.Create(ctx, h, amenityIDs[:2]))

	h.Name = "Grand Almaty Hotel & Spa"
	require.NoError(t, hotels.Update(ctx, h, amenityIDs[2:]))

	got, err := hotels.GetBySlug(ctx, "grand-almaty-hotel")
	require.NoError(t, err)
	assert.Equal(t, "Grand Almaty Hotel & Spa", got.Name)
	require.Len(t, got.Amenities, 1)
	assert.Equal(t, "Spa", got.Amenities[0].Name)
}

func TestHotelDelete_Cascades(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	accounts := NewAccountRepository(db)
	hotels := NewHotelRepository(db)
	bookings := NewBookingRepository(db)

	vendor := seedAccount(t, accounts, "vendor@test.dev", domain.RoleVendor)
	customer := seedAccount(t, accounts, "customer@test.dev", domain.RoleCustomer)
	amenityIDs := seedAmenities(t, db, "Free WiFi")
	hotel := seedHotel(t, hotels, vendor.ID, "Grand Almaty Hotel", "grand-almaty-hotel")
	require.NoError(t, hotels.Update(ctx, hotel, amenityIDs))

	img := domain.HotelImage{HotelID: hotel.ID, URL: "/static/a.jpg"}
	require.NoError(t, hotels.AddImage(ctx, &img))

	b := &domain.Booking{
		HotelID: hotel.ID, CustomerID: customer.ID,
		StartDate: day(2025, 1, 1), EndDate: day(2025, 1, 4), TotalPrice: 3000,
	}
	require.NoError(t, bookings.CreateIfNoOverlap(ctx, b))

	require.NoError(t, hotels.Delete(ctx, hotel.ID))

	_, err := hotels.GetBySlug(ctx, "grand-almaty-hotel")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = hotels.GetImageByID(ctx, img.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = bookings.GetByID(ctx, b.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var joinCount int64
	require.NoError(t, db.Model(&hotelAmenityModel{}).Where("hotel_id = ?", hotel.ID).Count(&joinCount).Error)
	assert.Zero(t, joinCount)
}

func TestFilterAmenityIDs(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	hotels := NewHotelRepository(db)
	ids := seedAmenities(t, db, "Free WiFi", "Parking")

	kept, err := hotels.FilterAmenityIDs(ctx, []int64{ids[0], ids[1], 9999})
	require.NoError(t, err)
	assert.ElementsMatch(t, ids, kept)

	kept, err = hotels.FilterAmenityIDs(ctx, nil)
	require.NoError(t, err)
	assert.Nil(t, kept)
}
