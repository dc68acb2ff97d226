package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"tripbook/internal/bookings"
	"tripbook/internal/shared/config"
	"tripbook/internal/shared/constants"
	"tripbook/internal/shared/database"
	"tripbook/pkg/cache"
	"tripbook/pkg/logger"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
)

type Seeder struct {
	cfg     *config.Config
	db      *database.DB
	service bookings.Service
}

func main() {
	fmt.Println("🌱 Starting Tripbook Database Seeder...")

	_ = godotenv.Load()
	cfg := config.Load()
	log.SetFlags(0)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	quiet := logger.NewWithWriter(io.Discard, "error")
	db, err := database.InitDB(ctx, cfg, quiet)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{cfg: cfg, db: db}
	if err := seeder.init(quiet); err != nil {
		log.Fatalf("Failed to initialize seeder: %v", err)
	}

	fmt.Println("\n🧹 Cleaning bookings...")
	if err := seeder.CleanDatabase(ctx); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("✅ Bookings cleaned successfully")

	fmt.Println("\n🌱 Seeding bookings...")
	if err := seeder.SeedAll(ctx); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	fmt.Println("✅ Database seeded successfully")

	fmt.Println("\n🎉 Seeding completed! Database is ready for testing.")
}

func (s *Seeder) init(l *logger.Logger) error {
	var repo bookings.Repository
	switch {
	case s.cfg.UsesPostgres():
		repo = bookings.NewRepository(s.db.PostgreSQL)
	case s.db.MongoDB != nil:
		repo = bookings.NewMongoRepository(s.db.BookingCollection(s.cfg))
	default:
		return fmt.Errorf("no booking store connected")
	}

	// Seeded rows go through the lifecycle service so they are normalized
	// exactly like API-created ones.
	s.service = bookings.NewService(repo, l)
	if s.db.Redis != nil {
		s.service.SetCacheService(cache.NewService(s.db.Redis))
	}
	return nil
}

// CleanDatabase removes every booking from the selected store
func (s *Seeder) CleanDatabase(ctx context.Context) error {
	if s.cfg.UsesPostgres() {
		return s.db.PostgreSQL.WithContext(ctx).Exec("TRUNCATE TABLE bookings").Error
	}

	res, err := s.db.BookingCollection(s.cfg).DeleteMany(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to delete bookings: %w", err)
	}
	fmt.Printf("    🗑️  Removed %d bookings\n", res.DeletedCount)
	return nil
}

// SeedAll creates a handful of one-way and round trips with mixed payment states
func (s *Seeder) SeedAll(ctx context.Context) error {
	seeds := []struct {
		req     bookings.CreateBookingRequest
		amount  float64
		status  bookings.PaymentStatus
		setPaid bool
	}{
		{
			req: bookings.CreateBookingRequest{
				Email: "asha@example.com", Contact: "+91 98765 43210",
				From: "Delhi", To: "Mumbai", TripType: string(bookings.TripTypeOneWay),
				Date: stringPtr("01/01/2025"), PassengerCount: 2,
			},
		},
		{
			req: bookings.CreateBookingRequest{
				Email: "ravi@example.com", Contact: "9123456780",
				From: "Pune", To: "Goa", TripType: string(bookings.TripTypeRoundTrip),
				StartDate: stringPtr("10/02/2025"), EndDate: stringPtr("14/02/2025"), PassengerCount: 4,
			},
			amount: 12500, status: bookings.PaymentStatusPaid, setPaid: true,
		},
		{
			req: bookings.CreateBookingRequest{
				Email: "meera@example.com", Contact: "9988776655",
				From: "Jaipur", To: "Udaipur", TripType: string(bookings.TripTypeOneWay),
				Date: stringPtr("22/03/2025"), PassengerCount: 1,
			},
			amount: 3200, status: bookings.PaymentStatusFailed, setPaid: true,
		},
		{
			req: bookings.CreateBookingRequest{
				Email: "kabir@example.com", Contact: "9000011111",
				From: "Bengaluru", To: "Mysuru", TripType: string(bookings.TripTypeRoundTrip),
				StartDate: stringPtr("05/04/2025"), EndDate: stringPtr("07/04/2025"), PassengerCount: 3,
			},
		},
	}

	for _, seed := range seeds {
		booking, err := s.service.CreateBooking(ctx, seed.req)
		if err != nil {
			return fmt.Errorf("failed to create booking for %s: %w", seed.req.Email, err)
		}

		if seed.setPaid {
			amount := seed.amount
			booking, err = s.service.UpdatePayment(ctx, booking.ID, bookings.UpdatePaymentRequest{
				PaymentAmount: &amount,
				PaymentStatus: string(seed.status),
			})
			if err != nil {
				return fmt.Errorf("failed to record payment for %s: %w", seed.req.Email, err)
			}
		}

		fmt.Printf("    ✅ Created booking: %s %s → %s (%s, %s)\n",
			booking.ID, booking.From, booking.To, booking.TripType, booking.PaymentStatus)
	}

	// Clear cached booking reads to ensure fresh state
	if s.db.Redis != nil {
		if err := cache.NewService(s.db.Redis).DeletePattern(ctx, constants.PATTERN_INVALIDATE_BOOKINGS_ALL); err != nil {
			log.Printf("Warning: Failed to clear Redis cache: %v", err)
		}
	}

	return nil
}

func stringPtr(s string) *string {
	return &s
}
