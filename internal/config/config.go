package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// EnvPrefix префикс переменных окружения, переопределяющих значения из файла
const EnvPrefix = "SALON"

var (
	ErrReadConfig    = errors.New("config: failed to read config file")
	ErrEnvOverride   = errors.New("config: failed to apply environment overrides")
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Schedule ScheduleConfig `toml:"schedule"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port" split_words:"true"`
	ReadTimeout     int `toml:"read_timeout" split_words:"true"`
	WriteTimeout    int `toml:"write_timeout" split_words:"true"`
	IdleTimeout     int `toml:"idle_timeout" split_words:"true"`
	ShutdownTimeout int `toml:"shutdown_timeout" split_words:"true"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host" split_words:"true"`
	Port            int    `toml:"port" split_words:"true"`
	User            string `toml:"user" split_words:"true"`
	Password        string `toml:"password" split_words:"true"`
	DBName          string `toml:"dbname" split_words:"true"`
	SSLMode         string `toml:"sslmode" split_words:"true"`
	MaxOpenConns    int    `toml:"max_open_conns" split_words:"true"`
	MaxIdleConns    int    `toml:"max_idle_conns" split_words:"true"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime" split_words:"true"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level" split_words:"true"`
	File  string `toml:"file" split_words:"true"`
}

// MetricsConfig настройки Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled" split_words:"true"`
	Path        string `toml:"path" split_words:"true"`
	ServiceName string `toml:"service_name" split_words:"true"`
}

// ScheduleConfig рабочее время салона
type ScheduleConfig struct {
	Timezone           string          `toml:"timezone" split_words:"true"`
	OpenTime           string          `toml:"open_time" split_words:"true"`
	CloseTime          string          `toml:"close_time" split_words:"true"`
	GranularityMinutes int             `toml:"granularity_minutes" split_words:"true"`
	ClosedWeekdays     []string        `toml:"closed_weekdays" split_words:"true"`
	Holidays           []HolidayConfig `toml:"holidays" ignored:"true"`
}

// HolidayConfig нерабочий день
type HolidayConfig struct {
	Date string `toml:"date"`
	Name string `toml:"name"`
}

// Load читает конфигурацию из TOML файла и применяет переопределения из окружения
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadConfig, err)
	}
	return Parse(string(data))
}

// Parse разбирает конфигурацию из строки TOML
func Parse(data string) (*Config, error) {
	var cfg Config
	if _, err := toml.Decode(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadConfig, err)
	}

	// Переменные окружения имеют приоритет над файлом
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEnvOverride, err)
	}

	cfg.setDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}

	if c.Database.Host == "" {
		c.Database.Host = "localhost"
	}
	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 25
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "salon_service"
	}

	if c.Schedule.Timezone == "" {
		c.Schedule.Timezone = domain.DefaultTimezone
	}
	if c.Schedule.OpenTime == "" {
		c.Schedule.OpenTime = domain.DefaultOpenTime.String()
	}
	if c.Schedule.CloseTime == "" {
		c.Schedule.CloseTime = domain.DefaultCloseTime.String()
	}
	if c.Schedule.GranularityMinutes == 0 {
		c.Schedule.GranularityMinutes = domain.DefaultGranularityMinutes
	}
}

// Validate проверяет корректность конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port %d out of range", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Database.Port <= 0 || c.Database.Port > 65535 {
		return fmt.Errorf("%w: database.port %d out of range", ErrInvalidConfig, c.Database.Port)
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("%w: database.dbname is required", ErrInvalidConfig)
	}
	if _, err := c.Schedule.Location(); err != nil {
		return err
	}
	if _, err := c.Schedule.ToDomain(); err != nil {
		return err
	}
	return nil
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Location часовой пояс салона
func (s ScheduleConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: schedule.timezone %q: %v", ErrInvalidConfig, s.Timezone, err)
	}
	return loc, nil
}

// ToDomain собирает доменное расписание из конфигурации
func (s ScheduleConfig) ToDomain() (domain.Schedule, error) {
	loc, err := s.Location()
	if err != nil {
		return domain.Schedule{}, err
	}

	open, err := types.NewTimeStringFromString(s.OpenTime)
	if err != nil {
		return domain.Schedule{}, fmt.Errorf("%w: schedule.open_time: %v", ErrInvalidConfig, err)
	}
	closeAt, err := types.NewTimeStringFromString(s.CloseTime)
	if err != nil {
		return domain.Schedule{}, fmt.Errorf("%w: schedule.close_time: %v", ErrInvalidConfig, err)
	}
	if !closeAt.IsAfter(open) {
		return domain.Schedule{}, fmt.Errorf("%w: schedule.close_time %s must be after open_time %s", ErrInvalidConfig, closeAt, open)
	}
	if s.GranularityMinutes < 0 {
		return domain.Schedule{}, fmt.Errorf("%w: schedule.granularity_minutes must be positive", ErrInvalidConfig)
	}

	weekdays := make([]time.Weekday, 0, len(s.ClosedWeekdays))
	for _, name := range s.ClosedWeekdays {
		wd, ok := parseWeekday(name)
		if !ok {
			return domain.Schedule{}, fmt.Errorf("%w: schedule.closed_weekdays: unknown day %q", ErrInvalidConfig, name)
		}
		weekdays = append(weekdays, wd)
	}

	holidays := make([]domain.Holiday, 0, len(s.Holidays))
	for _, h := range s.Holidays {
		if _, err := time.Parse(domain.DateFormat, h.Date); err != nil {
			return domain.Schedule{}, fmt.Errorf("%w: schedule.holidays: bad date %q", ErrInvalidConfig, h.Date)
		}
		holidays = append(holidays, domain.Holiday{Date: h.Date, Name: h.Name})
	}

	return domain.Schedule{
		Location:           loc,
		Open:               open,
		Close:              closeAt,
		GranularityMinutes: s.GranularityMinutes,
		ClosedWeekdays:     weekdays,
		Holidays:           holidays,
	}, nil
}

func parseWeekday(name string) (time.Weekday, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		full := strings.ToLower(wd.String())
		if name == full || name == full[:3] {
			return wd, true
		}
	}
	return 0, false
}
