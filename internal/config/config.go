package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Store    StoreConfig
	Payroll  PayrollConfig
}

type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// StoreConfig selects the repository backend explicitly at startup.
type StoreConfig struct {
	// Driver is "postgres" or "memory".
	Driver string
	// Seed loads the sample roster into the memory store.
	Seed bool
}

// PayrollConfig carries the payroll business rules. The defaults are the
// organization's standing policy; deployments override them via env.
type PayrollConfig struct {
	CycleStartDay        int     // day of preceding month the cycle opens on
	CycleEndDay          int     // day of target month the cycle closes on
	CreditDay            int     // day of target month salary is credited
	LateCutoffHour       int     // clock-in hour at/after which in-only days are late
	LateDeductionRate    float64 // fraction of a day deducted per late day
	HalfDayDeductionRate float64 // fraction of a day deducted per half day
	MinimumWorkingDays   int     // default payroll-run threshold filter
}

func Load() (*Config, error) {
	// A missing .env is fine; env vars may come from the environment.
	_ = godotenv.Load()

	config := &Config{}

	appPort, err := getEnvInt("APP_PORT", 8080)
	if err != nil {
		return nil, err
	}
	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	dbPort, err := getEnvInt("DB_PORT", 5432)
	if err != nil {
		return nil, err
	}
	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "hr_backend"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	config.Store = StoreConfig{
		Driver: getEnv("STORE_DRIVER", "postgres"),
		Seed:   getEnv("STORE_SEED", "false") == "true",
	}

	cycleStartDay, err := getEnvInt("PAYROLL_CYCLE_START_DAY", 25)
	if err != nil {
		return nil, err
	}
	cycleEndDay, err := getEnvInt("PAYROLL_CYCLE_END_DAY", 24)
	if err != nil {
		return nil, err
	}
	creditDay, err := getEnvInt("PAYROLL_CREDIT_DAY", 5)
	if err != nil {
		return nil, err
	}
	lateCutoff, err := getEnvInt("PAYROLL_LATE_CUTOFF_HOUR", 10)
	if err != nil {
		return nil, err
	}
	lateRate, err := getEnvFloat("PAYROLL_LATE_DEDUCTION_RATE", 0.10)
	if err != nil {
		return nil, err
	}
	halfRate, err := getEnvFloat("PAYROLL_HALF_DAY_DEDUCTION_RATE", 0.50)
	if err != nil {
		return nil, err
	}
	minDays, err := getEnvInt("PAYROLL_MINIMUM_WORKING_DAYS", 15)
	if err != nil {
		return nil, err
	}
	config.Payroll = PayrollConfig{
		CycleStartDay:        cycleStartDay,
		CycleEndDay:          cycleEndDay,
		CreditDay:            creditDay,
		LateCutoffHour:       lateCutoff,
		LateDeductionRate:    lateRate,
		HalfDayDeductionRate: halfRate,
		MinimumWorkingDays:   minDays,
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

func (c *Config) Validate() error {
	switch c.Store.Driver {
	case "postgres":
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD is required with the postgres store driver")
		}
	case "memory":
	default:
		return fmt.Errorf("unsupported STORE_DRIVER: %s", c.Store.Driver)
	}

	if c.Payroll.CycleStartDay < 1 || c.Payroll.CycleStartDay > 28 {
		return fmt.Errorf("PAYROLL_CYCLE_START_DAY must be between 1 and 28")
	}
	if c.Payroll.CycleEndDay < 1 || c.Payroll.CycleEndDay > 28 {
		return fmt.Errorf("PAYROLL_CYCLE_END_DAY must be between 1 and 28")
	}
	if c.Payroll.LateCutoffHour < 0 || c.Payroll.LateCutoffHour > 23 {
		return fmt.Errorf("PAYROLL_LATE_CUTOFF_HOUR must be between 0 and 23")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getEnvFloat(key string, fallback float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}
