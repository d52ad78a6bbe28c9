package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/eventpass/seat-booking/internal/booking"
	"github.com/eventpass/seat-booking/internal/catalog"
	"github.com/eventpass/seat-booking/internal/config"
	"github.com/eventpass/seat-booking/internal/handler"
	"github.com/eventpass/seat-booking/internal/middleware"
	"github.com/eventpass/seat-booking/internal/model"
	"github.com/eventpass/seat-booking/internal/queue"
	"github.com/eventpass/seat-booking/internal/render"
	"github.com/eventpass/seat-booking/internal/router"
)

func main() {
	_ = godotenv.Load() // optional .env for local development
	cfg := config.Load()

	cat := catalog.New(cfg.VenueRows, cfg.VenueCols)
	svc := booking.NewService(cat)
	renderer := render.NewRenderer(cfg.ExportScale)
	event := model.EventInfo{
		Name:           cfg.EventName,
		Schedule:       cfg.EventSchedule,
		Venue:          cfg.EventVenue,
		Gate:           cfg.EventGate,
		SupportContact: cfg.SupportContact,
	}
	h := handler.NewBookingHandler(svc, renderer, event)

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable, rate limiting disabled")
	}
	limiter := middleware.RateLimit(config.LoadRateLimitConfig(), rdb)

	if os.Getenv("BOOKING_CONSUMER_ENABLED") != "false" {
		go func() {
			if err := queue.StartBookingConsumer(); err != nil {
				log.Printf("booking consumer stopped: %v", err)
			}
		}()
	}

	e := echo.New()
	router.RegisterRoutes(e, h, limiter)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, venue=%dx%d)", addr, cfg.Env, cfg.VenueRows, cfg.VenueCols)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
