package config

import (
	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	// Address the HTTP server listens on
	ListenAddr string `env:"LISTEN_ADDR" envDefault:":8025"`

	// Path to the SQLite database file
	DatabasePath string `env:"DATABASE_PATH" envDefault:"database/ilanlar.db"`

	// Directory for admin-uploaded listing images
	UploadDir string `env:"UPLOAD_DIR" envDefault:"user_custom_upload"`

	// Maximum accepted upload size in bytes
	MaxUploadBytes int64 `env:"MAX_UPLOAD_BYTES" envDefault:"16777216"`

	// Admin credentials. AdminPassword may be a bcrypt hash or, for
	// development setups, the plain password.
	AdminUsername string `env:"ADMIN_USERNAME" envDefault:"admin"`
	AdminPassword string `env:"ADMIN_PASSWORD,required"`

	// Secret used to sign session cookies
	SessionSecret string `env:"SESSION_SECRET,required"`

	// Session lifetime in hours
	SessionTTLHours int `env:"SESSION_TTL_HOURS" envDefault:"12"`

	// Default UI locale when the visitor has not picked one
	DefaultLocale string `env:"DEFAULT_LOCALE" envDefault:"tr"`

	// Directory holding the HTML templates
	TemplateGlob string `env:"TEMPLATE_GLOB" envDefault:"web/templates/*.html"`

	// Login rate limiting: attempts allowed per window
	LoginAttempts     int `env:"LOGIN_ATTEMPTS" envDefault:"5"`
	LoginWindowMinute int `env:"LOGIN_WINDOW_MINUTES" envDefault:"15"`
}

func LoadConfig() (*Config, error) {
	// A missing .env file is fine; the environment may already be set.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
