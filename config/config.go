package config

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/linesmerrill/fleetcheck/models"
)

// Config holds the project config values
type Config struct {
	Env          string `yaml:"env"`
	BindAddr     string `yaml:"bindAddr"`
	Port         string `yaml:"port"`
	StoreBackend string `yaml:"storeBackend"`
	DataDir      string `yaml:"dataDir"`
	SQLitePath   string `yaml:"sqlitePath"`
	URL          string `yaml:"dbUri"`
	DatabaseName string `yaml:"dbName"`
	RedisURL     string `yaml:"redisUrl"`

	SendgridAPIKey string `yaml:"sendgridApiKey"`
	MailFrom       string `yaml:"mailFrom"`

	ReminderSchedule string `yaml:"reminderSchedule"`
	ReminderDays     int    `yaml:"reminderDays"`
	ReminderEmail    string `yaml:"reminderEmail"`

	RequestTimeout time.Duration `yaml:"requestTimeout"`
}

// Default returns the configuration used when nothing is set
func Default() *Config {
	dataDir := ".fleetcheck"
	if home, err := os.UserHomeDir(); err == nil {
		dataDir = filepath.Join(home, ".fleetcheck")
	}
	return &Config{
		Env:              "local",
		BindAddr:         "127.0.0.1",
		Port:             "8417",
		StoreBackend:     "file",
		DataDir:          dataDir,
		SQLitePath:       filepath.Join(dataDir, "fleetcheck.db"),
		DatabaseName:     "fleetcheck",
		MailFrom:         "no-reply@fleetcheck.local",
		ReminderSchedule: "0 7 * * *",
		ReminderDays:     14,
		RequestTimeout:   10 * time.Second,
	}
}

// New sets up all config related services: defaults, the optional yaml file
// named by CONFIG_FILE, then environment variables, and the global zap logger.
func New() *Config {
	c, warnings := Load()

	//setup zap logger and replace default logger
	logger, err := setLogger(c.Env)
	if err != nil {
		logger = zap.NewExample()
	}
	defer logger.Sync()
	_ = zap.ReplaceGlobals(logger)

	for _, w := range warnings {
		zap.S().Warnw("ignoring config value", "error", w)
	}
	return c
}

// Load builds the config without touching the logger. Values that could not
// be used are returned as warnings and left at their previous value.
func Load() (*Config, []error) {
	c := Default()
	var warnings []error

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := c.loadFile(path); err != nil {
			warnings = append(warnings, err)
		}
	}

	setString(&c.Env, "ENV")
	setString(&c.BindAddr, "BIND_ADDR")
	setString(&c.Port, "PORT")
	setString(&c.StoreBackend, "STORE_BACKEND")
	if setString(&c.DataDir, "DATA_DIR") && os.Getenv("SQLITE_PATH") == "" {
		c.SQLitePath = filepath.Join(c.DataDir, "fleetcheck.db")
	}
	setString(&c.SQLitePath, "SQLITE_PATH")
	setString(&c.URL, "DB_URI")
	setString(&c.DatabaseName, "DB_NAME")
	setString(&c.RedisURL, "REDIS_URL")
	setString(&c.SendgridAPIKey, "SENDGRID_API_KEY")
	setString(&c.MailFrom, "MAIL_FROM")
	setString(&c.ReminderSchedule, "REMINDER_SCHEDULE")
	setString(&c.ReminderEmail, "REMINDER_EMAIL")

	if v := os.Getenv("REMINDER_DAYS"); v != "" {
		days, err := strconv.Atoi(v)
		if err != nil || days < 0 {
			warnings = append(warnings, fmt.Errorf("invalid REMINDER_DAYS %q", v))
		} else {
			c.ReminderDays = days
		}
	}
	if v := os.Getenv("REQUEST_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			warnings = append(warnings, fmt.Errorf("invalid REQUEST_TIMEOUT: %w", err))
		} else {
			c.RequestTimeout = d
		}
	}
	return c, warnings
}

func (c *Config) loadFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	next := *c
	if err := yaml.Unmarshal(b, &next); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	*c = next
	return nil
}

func setString(dst *string, key string) bool {
	if v := os.Getenv(key); v != "" {
		*dst = v
		return true
	}
	return false
}

// Addr is the listen address of the local API
func (c *Config) Addr() string {
	return c.BindAddr + ":" + c.Port
}

// ErrorStatus is a useful function that will log, write http headers and body for a
// give message, status code and err
func ErrorStatus(message string, httpStatusCode int, w http.ResponseWriter, err error) {
	zap.S().With(err).Error(message)
	b, _ := json.Marshal(models.ErrorResponse{Response: fmt.Sprintf("%s, %v", message, err)})
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatusCode)
	w.Write(b)
}
