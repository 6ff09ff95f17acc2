package main // Entry point package

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"    // .env loading for local development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/romhuset/rehearsal-booking/internal/config"
	"github.com/romhuset/rehearsal-booking/internal/database"
	"github.com/romhuset/rehearsal-booking/internal/handler"
	"github.com/romhuset/rehearsal-booking/internal/middleware"
	"github.com/romhuset/rehearsal-booking/internal/queue"
	"github.com/romhuset/rehearsal-booking/internal/repository"
	"github.com/romhuset/rehearsal-booking/internal/router"
	"github.com/romhuset/rehearsal-booking/internal/service"
	"github.com/romhuset/rehearsal-booking/internal/store"
)

func main() {
	// .env is optional; in production everything comes from the environment.
	_ = godotenv.Load()

	cfg := config.Load()
	house := config.LoadHouseConfig()

	// Pick the persistence backend. With DB_HOST set the MySQL
	// repositories serve every store interface; without it the in-memory
	// store does, which is enough for one rehearsal house.
	var (
		bookings store.BookingStore
		vouchers store.VoucherStore
		rooms    store.RoomStore
		grants   store.GrantStore
		users    store.UserStore
		tokens   store.TokenStore
	)
	if cfg.UseMySQL() {
		db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
		if err != nil {
			log.Fatalf("database: %v", err)
		}
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := database.EnsureSchema(ctx, db); err != nil {
			cancel()
			log.Fatalf("database: %v", err)
		}
		cancel()
		bookings = repository.NewBookingRepo(db)
		vouchers = repository.NewVoucherRepo(db)
		rooms = repository.NewRoomRepo(db)
		grants = repository.NewGrantRepo(db)
		users = repository.NewUserRepo(db)
		tokens = repository.NewTokenRepo(db)
		log.Printf("using mysql store at %s:%s/%s", cfg.DBHost, cfg.DBPort, cfg.DBName)
	} else {
		mem := store.NewMemory()
		bookings = mem
		vouchers = mem.Vouchers()
		rooms = mem.Rooms()
		grants = mem
		users = mem.Users()
		tokens = mem.Tokens()
		log.Printf("DB_HOST not set, using in-memory store")
	}

	svc := &service.BookingService{
		Bookings: bookings,
		Vouchers: vouchers,
		Rooms:    rooms,
		Grants:   grants,
		Rates:    house.Rates,
		OpenHour: house.OpenHour,
		EndHour:  house.EndHour,
		Publish:  cfg.PublishEvents,
	}
	issuer := &service.AccessIssuer{
		Grants:   grants,
		Provider: house.AccessProvider,
		DoorIDs:  house.DoorIDs,
		Before:   house.AccessBefore,
		After:    house.AccessAfter,
	}

	authH := handler.NewAuthHandler(cfg, users, tokens)
	bookingH := handler.NewBookingHandler(svc, bookings)
	roomH := handler.NewRoomHandler(rooms)
	voucherH := handler.NewVoucherHandler(vouchers)
	statsH := handler.NewStatsHandler(bookings, rooms, house)
	accessH := handler.NewAccessHandler(bookings, issuer)

	e := echo.New()

	// Redis backs rate limiting and the read cache; both degrade to
	// pass-through when it is unreachable.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable, rate limiting and caching disabled")
	}
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	e.Use(middleware.NewRedisCache(config.LoadCacheConfig(), rdb))

	router.RegisterRoutes(e)
	router.RegisterAuth(e, authH, cfg.JWTSecret)
	router.RegisterPublic(e, roomH, bookingH, statsH)
	router.RegisterMember(e, bookingH, voucherH, accessH, cfg.JWTSecret)
	router.RegisterAdmin(e, roomH, voucherH, cfg.JWTSecret)

	if cfg.PublishEvents {
		go func() {
			if err := queue.StartBookingConsumer(); err != nil {
				log.Printf("queue consumer stopped: %v", err)
			}
		}()
	}

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
