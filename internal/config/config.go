package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
)

const (
	// EnvAPIURL переменная окружения, переопределяющая адрес API
	EnvAPIURL = "BOOKING_API_URL"

	// DefaultAPIURL адрес API для локальной разработки
	DefaultAPIURL = "http://localhost:3000/api/v1"
)

// Config конфигурация клиента бронирования
type Config struct {
	API     APIConfig     `toml:"api"`
	Session SessionConfig `toml:"session"`
	Logs    LogsConfig    `toml:"logs"`
	Metrics MetricsConfig `toml:"metrics"`
	Booking BookingConfig `toml:"booking"`
}

// APIConfig настройки подключения к REST API
type APIConfig struct {
	BaseURL string `toml:"base_url"`
	Timeout int    `toml:"timeout"` // секунды
}

// SessionConfig настройки хранения сессии
type SessionConfig struct {
	File string `toml:"file"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки метрик
type MetricsConfig struct {
	Enabled      bool   `toml:"enabled"`
	ServiceName  string `toml:"service_name"`
	TextfilePath string `toml:"textfile_path"`
}

// BookingConfig параметры мастера бронирования
type BookingConfig struct {
	BusinessStartHour   int `toml:"business_start_hour"`
	BusinessEndHour     int `toml:"business_end_hour"`
	SlotDurationMinutes int `toml:"slot_duration_minutes"`
	WindowMonths        int `toml:"window_months"`
	DateListDays        int `toml:"date_list_days"`
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL: DefaultAPIURL,
			Timeout: 30,
		},
		Session: SessionConfig{
			File: defaultSessionFile(),
		},
		Logs: LogsConfig{
			File:  filepath.Join(defaultStateDir(), "client.log"),
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:      false,
			ServiceName:  "beauty_booking_client",
			TextfilePath: filepath.Join(defaultStateDir(), "client.prom"),
		},
		Booking: BookingConfig{
			BusinessStartHour:   domain.DefaultBusinessStartHour,
			BusinessEndHour:     domain.DefaultBusinessEndHour,
			SlotDurationMinutes: domain.DefaultSlotDurationMinutes,
			WindowMonths:        domain.DefaultBookingWindowMonths,
			DateListDays:        domain.DefaultDateListDays,
		},
	}
}

// Load загружает конфигурацию из TOML файла
// Отсутствующий файл не является ошибкой - используются значения по умолчанию
// Переменные окружения (в том числе из .env) имеют приоритет над файлом
func Load(path string) (*Config, error) {
	// .env необязателен
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
		}
	}

	if envURL := strings.TrimSpace(os.Getenv(EnvAPIURL)); envURL != "" {
		cfg.API.BaseURL = envURL
	}

	baseURL, err := NormalizeBaseURL(cfg.API.BaseURL)
	if err != nil {
		return nil, err
	}
	cfg.API.BaseURL = baseURL

	cfg.Session.File = expandHome(cfg.Session.File)
	cfg.Logs.File = expandHome(cfg.Logs.File)
	cfg.Metrics.TextfilePath = expandHome(cfg.Metrics.TextfilePath)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// NormalizeBaseURL приводит адрес API к каноничному виду
// Для всех хостов, кроме локальных, http принудительно заменяется на https
func NormalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = DefaultAPIURL
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid api base url %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("invalid api base url %q: scheme must be http or https", raw)
	}
	if u.Host == "" {
		return "", fmt.Errorf("invalid api base url %q: host is required", raw)
	}

	if u.Scheme == "http" && !isLocalHost(u.Hostname()) {
		u.Scheme = "https"
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Validate проверяет согласованность настроек
func (c *Config) Validate() error {
	b := c.Booking
	if b.BusinessStartHour < 0 || b.BusinessEndHour > 24 || b.BusinessStartHour >= b.BusinessEndHour {
		return fmt.Errorf("invalid business hours: %d-%d", b.BusinessStartHour, b.BusinessEndHour)
	}
	if b.SlotDurationMinutes <= 0 || 60%b.SlotDurationMinutes != 0 {
		return fmt.Errorf("invalid slot duration %d: must divide 60", b.SlotDurationMinutes)
	}
	if b.WindowMonths < 0 {
		return fmt.Errorf("invalid booking window: %d months", b.WindowMonths)
	}
	if b.DateListDays <= 0 {
		return fmt.Errorf("invalid date list length: %d days", b.DateListDays)
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("invalid api timeout: %d", c.API.Timeout)
	}
	if c.Session.File == "" {
		return errors.New("session file is required")
	}
	return nil
}

func isLocalHost(host string) bool {
	switch strings.ToLower(host) {
	case "localhost", "127.0.0.1", "::1":
		return true
	default:
		return false
	}
}

func defaultStateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".beauty-booking"
	}
	return filepath.Join(home, ".beauty-booking")
}

func defaultSessionFile() string {
	return filepath.Join(defaultStateDir(), "session.toml")
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
