package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-TireSlotService/internal/domain"
	"github.com/m04kA/SMC-TireSlotService/pkg/types"
)

// ErrInvalidConfig возвращается, если значения конфигурации противоречивы
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server       ServerConfig       `toml:"server"`
	Database     DatabaseConfig     `toml:"database"`
	Logs         LogsConfig         `toml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics"`
	Redis        RedisConfig        `toml:"redis"`
	CRM          CRMConfig          `toml:"crm"`
	Slots        SlotsConfig        `toml:"slots"`
	FieldService FieldServiceConfig `toml:"field_service"`
	RateLimit    RateLimitConfig    `toml:"rate_limit"`
}

type ServerConfig struct {
	HTTPPort        int    `toml:"http_port"`
	ReadTimeout     int    `toml:"read_timeout"`     // секунды
	WriteTimeout    int    `toml:"write_timeout"`    // секунды
	IdleTimeout     int    `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int    `toml:"shutdown_timeout"` // секунды
	AdminToken      string `toml:"admin_token"`
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
	AutoMigrate     bool   `toml:"auto_migrate"`
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type RedisConfig struct {
	Enabled  bool   `toml:"enabled"`
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	TTL      int    `toml:"ttl"` // секунды
}

type CRMConfig struct {
	URL     string `toml:"url"`
	Token   string `toml:"token"`
	Timeout int    `toml:"timeout"` // секунды
}

type SlotsConfig struct {
	DefaultTimeGap         int `toml:"default_time_gap"`
	CloseGuardMinutes      int `toml:"close_guard_minutes"`
	DefaultDurationMinutes int `toml:"default_duration_minutes"`
}

type FieldServiceConfig struct {
	WorkdayStart           string `toml:"workday_start"`
	WorkdayEnd             string `toml:"workday_end"`
	SlotStepMinutes        int    `toml:"slot_step_minutes"`
	DefaultDurationMinutes int    `toml:"default_duration_minutes"`
	TravelBufferMinutes    int    `toml:"travel_buffer_minutes"`
	MinFreeMinutes         int    `toml:"min_free_minutes"`
	DefaultLimit           int    `toml:"default_limit"`
	LabelToday             string `toml:"label_today"`
	LabelTomorrow          string `toml:"label_tomorrow"`
	LabelNext              string `toml:"label_next"`
}

type RateLimitConfig struct {
	Enabled bool    `toml:"enabled"`
	RPS     float64 `toml:"rps"`
	Burst   int     `toml:"burst"`
}

// Default конфигурация по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "tireslot",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
			AutoMigrate:     true,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "tire-slot-service",
		},
		Redis: RedisConfig{
			Addr: "localhost:6379",
			TTL:  300,
		},
		CRM: CRMConfig{
			Timeout: 5,
		},
		Slots: SlotsConfig{
			DefaultTimeGap:         domain.DefaultTimeGapMinutes,
			CloseGuardMinutes:      domain.DefaultCloseGuardMinutes,
			DefaultDurationMinutes: domain.DefaultServiceDurationMinutes,
		},
		FieldService: FieldServiceConfig{
			WorkdayStart:           domain.DefaultFieldWorkdayStart,
			WorkdayEnd:             domain.DefaultFieldWorkdayEnd,
			SlotStepMinutes:        domain.DefaultSlotStepMinutes,
			DefaultDurationMinutes: domain.DefaultServiceDurationMinutes,
			TravelBufferMinutes:    domain.DefaultTravelBufferMinutes,
			MinFreeMinutes:         domain.DefaultMinFreeIntervalMinutes,
			DefaultLimit:           domain.DefaultSlotsLimit,
			LabelToday:             "Dziś",
			LabelTomorrow:          "Jutro",
			LabelNext:              "Pojutrze",
		},
		RateLimit: RateLimitConfig{
			Enabled: true,
			RPS:     10,
			Burst:   20,
		},
	}
}

// Load читает конфигурацию из TOML файла поверх значений по умолчанию,
// затем применяет переменные окружения (в том числе из .env)
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	// .env опционален
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: load .env: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv("DB_HOST"); ok {
		c.Database.Host = v
	}
	if v, ok := os.LookupEnv("DB_PORT"); ok {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: DB_PORT: %v", ErrInvalidConfig, err)
		}
		c.Database.Port = port
	}
	if v, ok := os.LookupEnv("DB_PASSWORD"); ok {
		c.Database.Password = v
	}
	if v, ok := os.LookupEnv("REDIS_ADDR"); ok {
		c.Redis.Addr = v
	}
	if v, ok := os.LookupEnv("REDIS_PASSWORD"); ok {
		c.Redis.Password = v
	}
	if v, ok := os.LookupEnv("CRM_URL"); ok {
		c.CRM.URL = v
	}
	if v, ok := os.LookupEnv("CRM_TOKEN"); ok {
		c.CRM.Token = v
	}
	if v, ok := os.LookupEnv("ADMIN_TOKEN"); ok {
		c.Server.AdminToken = v
	}
	if v, ok := os.LookupEnv("LOG_LEVEL"); ok {
		c.Logs.Level = v
	}
	return nil
}

// Validate проверяет согласованность значений
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port %d", ErrInvalidConfig, c.Server.HTTPPort)
	}

	if c.Slots.DefaultTimeGap <= 0 || c.Slots.DefaultTimeGap > domain.MaxTimeGapMinutes {
		return fmt.Errorf("%w: slots.default_time_gap must be in 1..%d", ErrInvalidConfig, domain.MaxTimeGapMinutes)
	}
	if c.Slots.CloseGuardMinutes < 0 {
		return fmt.Errorf("%w: slots.close_guard_minutes must not be negative", ErrInvalidConfig)
	}
	if c.Slots.DefaultDurationMinutes <= 0 {
		return fmt.Errorf("%w: slots.default_duration_minutes must be positive", ErrInvalidConfig)
	}

	fs := c.FieldService
	start, err := types.ParseMinute(fs.WorkdayStart)
	if err != nil {
		return fmt.Errorf("%w: field_service.workday_start: %v", ErrInvalidConfig, err)
	}
	end, err := types.ParseMinute(fs.WorkdayEnd)
	if err != nil {
		return fmt.Errorf("%w: field_service.workday_end: %v", ErrInvalidConfig, err)
	}
	if start >= end {
		return fmt.Errorf("%w: field_service workday_start must be before workday_end", ErrInvalidConfig)
	}
	if fs.SlotStepMinutes <= 0 || fs.DefaultDurationMinutes <= 0 {
		return fmt.Errorf("%w: field_service step and duration must be positive", ErrInvalidConfig)
	}
	if fs.TravelBufferMinutes < 0 || fs.MinFreeMinutes < 0 {
		return fmt.Errorf("%w: field_service buffer and min_free must not be negative", ErrInvalidConfig)
	}
	if fs.DefaultLimit <= 0 || fs.DefaultLimit > domain.MaxSlotsLimit {
		return fmt.Errorf("%w: field_service.default_limit must be in 1..%d", ErrInvalidConfig, domain.MaxSlotsLimit)
	}

	if c.RateLimit.Enabled && (c.RateLimit.RPS <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("%w: rate_limit rps and burst must be positive", ErrInvalidConfig)
	}

	return nil
}

// RedisTTL время жизни кеша шаблона
func (c RedisConfig) CacheTTL() time.Duration {
	return time.Duration(c.TTL) * time.Second
}
