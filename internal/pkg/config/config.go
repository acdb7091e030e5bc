package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (credentials, endpoints), security settings
// - default: Values common across all environments (time windows, timeouts, cadence), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	CORS    CORSConfig
	Log     LogConfig
	Search  SearchConfig
	Run     RunConfig
	FareAPI FareAPIConfig
	Award   AwardConfig
	Rental  RentalConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8080"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	Format         string `envconfig:"LOG_FORMAT" default:"text"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"America/New_York"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"-18000"` // -5*60*60
}

// SearchConfig holds the same-day window used by trip discovery.
type SearchConfig struct {
	Origin             string  `envconfig:"SEARCH_ORIGIN" default:"CLT"`
	DepartByHour       int     `envconfig:"SEARCH_DEPART_BY" default:"9"`
	ReturnAfterHour    int     `envconfig:"SEARCH_RETURN_AFTER" default:"15"`
	ReturnByHour       int     `envconfig:"SEARCH_RETURN_BY" default:"19"`
	MinGroundTimeHours float64 `envconfig:"SEARCH_MIN_GROUND_TIME" default:"3.0"`
	MaxDurationMinutes int     `envconfig:"SEARCH_MAX_DURATION" default:"204"`
	MaxResults         int     `envconfig:"SEARCH_MAX_RESULTS" default:"50"`
}

const defaultLeadDays = 7

type RunConfig struct {
	Date             string        `envconfig:"RUN_DATE"`
	Destinations     []string      `envconfig:"RUN_DESTINATIONS"`
	Limit            int           `envconfig:"RUN_LIMIT" default:"0"`
	SkipCash         bool          `envconfig:"RUN_SKIP_CASH" default:"false"`
	SkipAward        bool          `envconfig:"RUN_SKIP_AWARD" default:"false"`
	SkipCar          bool          `envconfig:"RUN_SKIP_CAR" default:"false"`
	Resume           bool          `envconfig:"RUN_RESUME" default:"false"`
	CatalogPath      string        `envconfig:"RUN_CATALOG_PATH" default:"destinations.yaml"`
	WorkListPath     string        `envconfig:"RUN_WORKLIST_PATH" default:"worklist.yaml"`
	TripsPath        string        `envconfig:"RUN_TRIPS_PATH" default:"trips.csv"`
	CheckpointPath   string        `envconfig:"RUN_CHECKPOINT_PATH" default:"pricing.csv"`
	DestinationDelay time.Duration `envconfig:"RUN_DESTINATION_DELAY" default:"3s"`
	AdapterTimeout   time.Duration `envconfig:"RUN_ADAPTER_TIMEOUT" default:"2m"`
	PricingResults   int           `envconfig:"RUN_PRICING_MAX_RESULTS" default:"10"`
}

type FareAPIConfig struct {
	BaseURL      string        `envconfig:"FARE_API_BASE_URL" default:"https://test.api.amadeus.com"`
	ClientID     string        `envconfig:"FARE_API_CLIENT_ID"`
	ClientSecret string        `envconfig:"FARE_API_CLIENT_SECRET"`
	Timeout      time.Duration `envconfig:"FARE_API_TIMEOUT" default:"30s"`
	Courtesy     time.Duration `envconfig:"FARE_API_COURTESY" default:"1s"`
	MaxRetries   int           `envconfig:"FARE_API_MAX_RETRIES" default:"2"`
}

type AwardConfig struct {
	RenderURL  string        `envconfig:"AWARD_RENDER_URL" default:"http://localhost:9222"`
	SearchURL  string        `envconfig:"AWARD_SEARCH_URL" default:"https://www.aa.com/booking/search"`
	Ceiling    time.Duration `envconfig:"AWARD_RENDER_CEILING" default:"15s"`
	Settle     time.Duration `envconfig:"AWARD_RENDER_SETTLE" default:"3s"`
	Timeout    time.Duration `envconfig:"AWARD_TIMEOUT" default:"60s"`
	Courtesy   time.Duration `envconfig:"AWARD_COURTESY" default:"2s"`
	MaxRetries int           `envconfig:"AWARD_MAX_RETRIES" default:"1"`
	Backoff    time.Duration `envconfig:"AWARD_RETRY_BACKOFF" default:"5s"`
}

type RentalConfig struct {
	BaseURL      string        `envconfig:"RENTAL_BASE_URL" default:"https://api.apify.com/v2"`
	Token        string        `envconfig:"RENTAL_TOKEN"`
	ActorID      string        `envconfig:"RENTAL_ACTOR_ID" default:"MrlcWebEaPAMtKAas"`
	PollInterval time.Duration `envconfig:"RENTAL_POLL_INTERVAL" default:"3s"`
	MaxWait      time.Duration `envconfig:"RENTAL_MAX_WAIT" default:"90s"`
	DriverAge    int           `envconfig:"RENTAL_DRIVER_AGE" default:"25"`
	MaxVehicles  int           `envconfig:"RENTAL_MAX_VEHICLES" default:"10"`
	Timeout      time.Duration `envconfig:"RENTAL_TIMEOUT" default:"30s"`
}

// Enabled reports whether car rental pricing has credentials to run with.
func (c RentalConfig) Enabled() bool {
	return c.Token != ""
}

// TravelDate is the configured run date, or a week from now when unset.
func (c RunConfig) TravelDate(now time.Time) (time.Time, error) {
	if c.Date == "" {
		y, m, d := now.AddDate(0, 0, defaultLeadDays).Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
	}
	date, err := time.Parse(time.DateOnly, c.Date)
	if err != nil {
		return time.Time{}, fmt.Errorf("RUN_DATE must be YYYY-MM-DD: %w", err)
	}
	return date, nil
}

func (c SearchConfig) Validate() error {
	if c.DepartByHour < 0 || c.DepartByHour > 24 {
		return fmt.Errorf("SEARCH_DEPART_BY out of range: %d", c.DepartByHour)
	}
	if c.ReturnAfterHour < 0 || c.ReturnByHour > 24 || c.ReturnAfterHour >= c.ReturnByHour {
		return fmt.Errorf("invalid return window [%d, %d)", c.ReturnAfterHour, c.ReturnByHour)
	}
	if c.MinGroundTimeHours < 0 {
		return fmt.Errorf("SEARCH_MIN_GROUND_TIME must not be negative: %v", c.MinGroundTimeHours)
	}
	if c.MaxDurationMinutes <= 0 {
		return fmt.Errorf("SEARCH_MAX_DURATION must be positive: %d", c.MaxDurationMinutes)
	}
	return nil
}

func LoadConfig() (Config, error) {
	// .env is optional; real environment variables always win.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Search.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			Format:         "text",
			TimeZone:       "America/New_York",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: -18000,
		},
		Search: SearchConfig{
			Origin:             "CLT",
			DepartByHour:       9,
			ReturnAfterHour:    15,
			ReturnByHour:       19,
			MinGroundTimeHours: 3.0,
			MaxDurationMinutes: 204,
			MaxResults:         50,
		},
		Run: RunConfig{
			Date:             "2025-11-15",
			CatalogPath:      "destinations.yaml",
			WorkListPath:     "worklist.yaml",
			TripsPath:        "trips.csv",
			CheckpointPath:   "pricing.csv",
			DestinationDelay: 0,
			AdapterTimeout:   2 * time.Second,
			PricingResults:   10,
		},
		Award: AwardConfig{
			Ceiling: 100 * time.Millisecond,
		},
		Rental: RentalConfig{
			PollInterval: 10 * time.Millisecond,
			MaxWait:      200 * time.Millisecond,
			DriverAge:    25,
			MaxVehicles:  10,
		},
	}
}
