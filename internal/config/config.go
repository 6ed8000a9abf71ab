package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Database  DatabaseConfig
	JWT       JWTConfig
	App       AppConfig
	Payroll   PayrollConfig
	Statutory StatutoryConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// PayrollConfig holds payroll calculation knobs.
type PayrollConfig struct {
	// Divisor used to derive an hourly rate from monthly basic salary
	// when an OT type uses a multiplier basis.
	WorkingHoursPerMonth decimal.Decimal
}

// StatutoryConfig holds wage ceilings and the low-wage exemption threshold.
// Contribution rates themselves live in the rate table (fixtures.DefaultRateTable).
type StatutoryConfig struct {
	OrdinaryWageCeiling     decimal.Decimal
	AdditionalAnnualCeiling decimal.Decimal
	MinWageThreshold        decimal.Decimal
}

func Load() (*Config, error) {
	// .env is optional outside local development
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "sghrms-payroll"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret: getEnv("JWT_SECRET_KEY", ""),
	}

	// Payroll configuration
	workingHours, err := getEnvDecimal("PAYROLL_WORKING_HOURS_PER_MONTH", "176")
	if err != nil {
		return nil, err
	}
	config.Payroll = PayrollConfig{
		WorkingHoursPerMonth: workingHours,
	}

	// Statutory configuration
	owCeiling, err := getEnvDecimal("STATUTORY_ORDINARY_WAGE_CEILING", "6800")
	if err != nil {
		return nil, err
	}
	awCeiling, err := getEnvDecimal("STATUTORY_ADDITIONAL_ANNUAL_CEILING", "102000")
	if err != nil {
		return nil, err
	}
	minThreshold, err := getEnvDecimal("STATUTORY_MIN_WAGE_THRESHOLD", "500")
	if err != nil {
		return nil, err
	}
	config.Statutory = StatutoryConfig{
		OrdinaryWageCeiling:     owCeiling,
		AdditionalAnnualCeiling: awCeiling,
		MinWageThreshold:        minThreshold,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if !c.Payroll.WorkingHoursPerMonth.IsPositive() {
		return fmt.Errorf("PAYROLL_WORKING_HOURS_PER_MONTH must be positive")
	}
	if c.Statutory.OrdinaryWageCeiling.IsNegative() {
		return fmt.Errorf("STATUTORY_ORDINARY_WAGE_CEILING must be non-negative")
	}
	if c.Statutory.AdditionalAnnualCeiling.IsNegative() {
		return fmt.Errorf("STATUTORY_ADDITIONAL_ANNUAL_CEILING must be non-negative")
	}
	if c.Statutory.MinWageThreshold.IsNegative() {
		return fmt.Errorf("STATUTORY_MIN_WAGE_THRESHOLD must be non-negative")
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

func getEnvDecimal(key, fallback string) (decimal.Decimal, error) {
	value, err := decimal.NewFromString(getEnv(key, fallback))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s: %w", key, err)
	}
	return value, nil
}
