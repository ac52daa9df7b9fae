package main

import (
	"context"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"

	"golang.org/x/crypto/bcrypt"

	"staybook/internal/database"
	"staybook/internal/domain"
	"staybook/internal/pkg/slug"
	"staybook/internal/repository"
)

var amenityNames = []string{
	"Free WiFi",
	"Swimming Pool",
	"Parking",
	"Air Conditioning",
	"Breakfast Included",
	"Gym",
	"Spa",
	"Pet Friendly",
	"Airport Shuttle",
	"Room Service",
}

var cities = []string{
	"Almaty", "Astana", "Tbilisi", "Istanbul", "Dubai",
	"Prague", "Lisbon", "Bangkok", "Tokyo", "Barcelona",
}

var nameParts = []string{
	"Grand", "Royal", "Sunset", "Harbor", "Alpine",
	"Riverside", "Golden", "Emerald", "Central", "Panorama",
}

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "staybook.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := repository.Migrate(db); err != nil {
		log.Fatal("migration failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM hotel_images")
	db.Exec("DELETE FROM hotel_amenities")
	db.Exec("DELETE FROM hotels")
	db.Exec("DELETE FROM amenities")
	db.Exec("DELETE FROM accounts")

	ctx := context.Background()
	accounts := repository.NewAccountRepository(db)
	hotels := repository.NewHotelRepository(db)

	// ================== ACCOUNTS ==================
	log.Println("Creating accounts...")

	vendorHash, _ := bcrypt.GenerateFromPassword([]byte("vendor123"), bcrypt.DefaultCost)
	vendor := domain.Account{
		Email:        "vendor@staybook.dev",
		PasswordHash: string(vendorHash),
		Role:         domain.RoleVendor,
		FirstName:    "Vera",
		LastName:     "Hoteling",
		Phone:        "+7 700 100 0001",
		BusinessName: "Staybook Demo Hotels",
		Verified:     true,
	}
	if err := accounts.Create(ctx, &vendor); err != nil {
		log.Fatal("vendor seed failed:", err)
	}
	log.Println("Vendor created: vendor@staybook.dev / vendor123")

	customerEmails := []string{"asel@mail.kz", "bekzat@gmail.com", "dina@yandex.kz"}
	for i, email := range customerEmails {
		hash, _ := bcrypt.GenerateFromPassword([]byte("customer123"), bcrypt.DefaultCost)
		customer := domain.Account{
			Email:        email,
			PasswordHash: string(hash),
			Role:         domain.RoleCustomer,
			FirstName:    fmt.Sprintf("Customer%d", i+1),
			LastName:     "Demo",
			Phone:        fmt.Sprintf("+7 777 123 45%02d", i+67),
			Verified:     true,
		}
		if err := accounts.Create(ctx, &customer); err != nil {
			log.Fatal("customer seed failed:", err)
		}
	}
	log.Printf("Customers created: %v / customer123", customerEmails)

	// ================== AMENITIES ==================
	log.Println("Creating amenities...")
	amenityIDs := make([]int64, 0, len(amenityNames))
	for _, name := range amenityNames {
		if err := db.Exec("INSERT INTO amenities (name) VALUES (?)", name).Error; err != nil {
			log.Fatal("amenity seed failed:", err)
		}
	}
	all, err := hotels.ListAmenities(ctx)
	if err != nil {
		log.Fatal("amenity listing failed:", err)
	}
	for _, a := range all {
		amenityIDs = append(amenityIDs, a.ID)
	}

	// ================== HOTELS ==================
	log.Println("Creating hotels...")
	const totalHotels = 20
	for i := 0; i < totalHotels; i++ {
		name := fmt.Sprintf("%s %s Hotel", pick(nameParts), pick(cities))
		price := round2(1000 + rand.Float64()*4000)
		offer := round2(price * (0.6 + rand.Float64()*0.3))

		h := domain.Hotel{
			VendorID:    vendor.ID,
			Name:        name,
			Slug:        slug.MakeUnique(name),
			Description: fmt.Sprintf("A comfortable stay at %s with easy access to the city center.", name),
			Price:       price,
			OfferPrice:  offer,
			Location:    fmt.Sprintf("%d Main Street, %s", 10+rand.Intn(200), pick(cities)),
			IsActive:    true,
		}
		if err := hotels.Create(ctx, &h, sample(amenityIDs, 3+rand.Intn(4))); err != nil {
			log.Fatal("hotel seed failed:", err)
		}
	}

	log.Printf("%d hotels seeded successfully", totalHotels)
}

func pick(options []string) string {
	return options[rand.Intn(len(options))]
}

func sample(ids []int64, n int) []int64 {
	if n > len(ids) {
		n = len(ids)
	}
	shuffled := append([]int64(nil), ids...)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:n]
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
