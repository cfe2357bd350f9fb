package config

import (
	"os"
	"path/filepath"
)

// Config is the process-wide configuration, built once in main and passed
// by reference to every component that needs it.
type Config struct {
	AppEnv string
	Port   string

	// DataDir holds the sqlite database and the upload directories.
	DataDir    string
	AvatarsDir string
	DrillsDir  string

	// SessionSecret signs the session cookie token.
	SessionSecret string

	// MasterCode gates instructor account creation.
	MasterCode string

	// Twilio credentials. All three must be present for SMS to be attempted.
	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFromNumber string

	// Optional Postgres. When PGHost is empty the store is a sqlite file
	// under DataDir.
	PGHost     string
	PGPort     string
	PGUser     string
	PGPassword string
	PGDatabase string

	// Optional Redis session store. When RedisHost is empty sessions live
	// in an in-process cache.
	RedisHost     string
	RedisPort     string
	RedisPassword string
}

// Load reads the configuration from the environment.
func Load() *Config {
	cfg := &Config{
		AppEnv:           getenv("APP_ENV", "development"),
		Port:             getenv("PORT", "8080"),
		DataDir:          getenv("DATA_DIR", "/data"),
		SessionSecret:    getenv("SESSION_SECRET", "devsecret"),
		MasterCode:       os.Getenv("INSTRUCTOR_CODE"),
		TwilioAccountSID: os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:  os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioFromNumber: os.Getenv("TWILIO_FROM_NUMBER"),
		PGHost:           os.Getenv("PG_HOST"),
		PGPort:           getenv("PG_PORT", "5432"),
		PGUser:           os.Getenv("PG_USER"),
		PGPassword:       os.Getenv("PG_PASSWORD"),
		PGDatabase:       os.Getenv("PG_DB"),
		RedisHost:        os.Getenv("REDIS_HOST"),
		RedisPort:        getenv("REDIS_PORT", "6379"),
		RedisPassword:    os.Getenv("REDIS_PASSWORD"),
	}

	cfg.AvatarsDir = filepath.Join(cfg.DataDir, "avatars")
	cfg.DrillsDir = filepath.Join(cfg.DataDir, "drills")
	return cfg
}

// EnsureDirs creates the data and upload directories if they don't exist.
func (c *Config) EnsureDirs() error {
	for _, dir := range []string{c.DataDir, c.AvatarsDir, c.DrillsDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return nil
}

// TwilioEnabled reports whether all messaging credentials are present.
func (c *Config) TwilioEnabled() bool {
	return c.TwilioAccountSID != "" && c.TwilioAuthToken != "" && c.TwilioFromNumber != ""
}

// UsePostgres reports whether a Postgres endpoint was configured.
func (c *Config) UsePostgres() bool {
	return c.PGHost != ""
}

// UseRedis reports whether a Redis endpoint was configured for sessions.
func (c *Config) UseRedis() bool {
	return c.RedisHost != ""
}

// SQLitePath is the on-disk database location when running without Postgres.
func (c *Config) SQLitePath() string {
	return filepath.Join(c.DataDir, "hit4power.sqlite")
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
