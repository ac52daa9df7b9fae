package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"staybook/internal/config"
	"staybook/internal/database"
	"staybook/internal/middleware"
	"staybook/internal/modules/auth"
	"staybook/internal/modules/booking"
	"staybook/internal/modules/catalog"
	"staybook/internal/modules/notify"
	"staybook/internal/pkg/filestore"
	jwtsvc "staybook/internal/pkg/jwt"
	"staybook/internal/pkg/mailer"
	"staybook/internal/repository"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	if err := repository.Migrate(db); err != nil {
		log.Fatal(err)
	}

	accountRepo := repository.NewAccountRepository(db)
	hotelRepo := repository.NewHotelRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)
	mail := mailer.NewDevConsoleMailer(cfg.DevMailer)
	files := filestore.NewDiskStore(cfg.UploadDir, cfg.StaticBase)
	hub := notify.NewHub()
	defer hub.Close()

	authService := auth.NewService(accountRepo, j, mail, cfg.OTPPepper, cfg.OTPTTL)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(hotelRepo, accountRepo, files)
	catalogHandler := catalog.NewHandler(catalogService)

	bookingService := booking.NewService(bookingRepo, hotelRepo, accountRepo, hub)
	bookingHandler := booking.NewHandler(bookingService)

	notifyHandler := notify.NewHandler(hub)

	if cfg.AppEnv == "prod" || cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS())

	r.Static(cfg.StaticBase, cfg.UploadDir)

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterPublicRoutes(v1)
		catalogHandler.RegisterPublicRoutes(v1)

		// any authenticated account
		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
		}

		customer := v1.Group("/")
		customer.Use(middleware.JWTAuth(j), middleware.CustomerOnly())
		{
			bookingHandler.RegisterCustomerRoutes(customer)
		}

		vendor := v1.Group("/vendor")
		vendor.Use(middleware.JWTAuth(j), middleware.VendorOnly())
		{
			catalogHandler.RegisterVendorRoutes(vendor)
			bookingHandler.RegisterVendorRoutes(vendor)
			notifyHandler.RegisterVendorRoutes(vendor)
		}
	}

	log.Printf("listening on %s", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
