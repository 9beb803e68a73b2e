package portfolio

import (
	"time"

	"github.com/dmitrymomot/folio/pkg/httpserver"
	"github.com/dmitrymomot/folio/pkg/redis"
)

// Config is loaded from the environment with config.Load.
type Config struct {
	AppName string `env:"APP_NAME" envDefault:"folio"`
	AppEnv  string `env:"APP_ENV" envDefault:"development"`

	DefaultLocale string `env:"DEFAULT_LOCALE" envDefault:"en"`

	// PagesMax bounds how many visitor pages are kept; the least recently
	// used page is closed when the limit is reached.
	PagesMax     int `env:"PAGES_MAX" envDefault:"1024"`
	StreamBuffer int `env:"STREAM_BUFFER" envDefault:"64"`

	NotifyAutoDismiss    time.Duration `env:"NOTIFY_AUTO_DISMISS" envDefault:"5s"`
	NotifyExitDelay      time.Duration `env:"NOTIFY_EXIT_DELAY" envDefault:"300ms"`
	ContactSubmitLatency time.Duration `env:"CONTACT_SUBMIT_LATENCY" envDefault:"2s"`

	// Each client address may send ContactRateLimit messages in a burst and
	// regains one every ContactRateInterval.
	ContactRateLimit    int           `env:"CONTACT_RATE_LIMIT" envDefault:"5"`
	ContactRateInterval time.Duration `env:"CONTACT_RATE_INTERVAL" envDefault:"1m"`

	HTTP httpserver.Config
	// Redis, when configured, shares contact rate limits between instances.
	Redis redis.Config
}

// DefaultConfig returns the values Config takes with an empty environment.
func DefaultConfig() Config {
	return Config{
		AppName:              "folio",
		AppEnv:               "development",
		DefaultLocale:        "en",
		PagesMax:             1024,
		StreamBuffer:         64,
		NotifyAutoDismiss:    5 * time.Second,
		NotifyExitDelay:      300 * time.Millisecond,
		ContactSubmitLatency: 2 * time.Second,
		ContactRateLimit:     5,
		ContactRateInterval:  time.Minute,
	}
}
