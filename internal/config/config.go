// Package config loads application configuration from environment variables.
package config

import (
	"log"
	"os"
	"strconv"
)

// Config holds all runtime configuration values.  Each field
// corresponds to an environment variable: strings for identifiers and
// display text, ints for layout dimensions and render settings.
type Config struct {
	Env            string // application environment (e.g. "dev", "prod")
	Port           string // HTTP port to listen on
	VenueRows      int    // number of seat rows in the venue layout
	VenueCols      int    // number of seats per row
	ExportScale    int    // pixel density multiplier for raster capture
	EventName      string // headline event name printed on the ticket
	EventSchedule  string // date/time line printed on the ticket
	EventVenue     string // location line printed on the ticket
	EventGate      string // entrance label printed on the ticket
	SupportContact string // support contact shown with the ticket
}

// Load reads configuration from environment variables.  APP_ENV and
// APP_PORT are required and missing values abort startup; everything
// else has a sensible default matching the reference event.
func Load() Config {
	return Config{
		Env:            must("APP_ENV"),
		Port:           must("APP_PORT"),
		VenueRows:      envInt("VENUE_ROWS", 10),
		VenueCols:      envInt("VENUE_COLS", 10),
		ExportScale:    envInt("EXPORT_SCALE", 2),
		EventName:      envStr("EVENT_NAME", "MY HIGHS & I"),
		EventSchedule:  envStr("EVENT_SCHEDULE", "28TH FEB • 10:00 AM"),
		EventVenue:     envStr("EVENT_VENUE", "PUB HALL, (200 CAPS)OPP. OPTOMETRY DEPT"),
		EventGate:      envStr("EVENT_GATE", "Main Entrance"),
		SupportContact: envStr("SUPPORT_CONTACT", "itsdavid4life@gmail"),
	}
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and
// exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("config: invalid int for %s: %q, using %d", key, v, def)
		return def
	}
	return n
}
