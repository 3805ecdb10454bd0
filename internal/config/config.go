package config

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// Config holds all configuration for the application
type Config struct {
	App    AppConfig
	Store  StoreConfig
	Logger LoggerConfig
}

// AppConfig holds configuration for the application process
type AppConfig struct {
	Environment string `mapstructure:"APP_ENV"`
}

// StoreConfig holds configuration for the user store
type StoreConfig struct {
	SeedData bool `mapstructure:"STORE_SEED_DATA"`
}

// LoggerConfig holds configuration for the logger
type LoggerConfig struct {
	Level          string `mapstructure:"LOG_LEVEL" validate:"loglevel"`
	Format         string `mapstructure:"LOG_FORMAT" validate:"oneof=json console"`
	OutputPath     string `mapstructure:"LOG_OUTPUT_PATH"`
	EnableSampling bool   `mapstructure:"LOG_ENABLE_SAMPLING"`
	ServiceName    string `mapstructure:"SERVICE_NAME" validate:"required"`
	ServiceVersion string `mapstructure:"SERVICE_VERSION"`
	MaxSizeMB      int    `mapstructure:"LOG_MAX_SIZE_MB" validate:"gte=0"`
	MaxBackups     int    `mapstructure:"LOG_MAX_BACKUPS" validate:"gte=0"`
	MaxAgeDays     int    `mapstructure:"LOG_MAX_AGE_DAYS" validate:"gte=0"`
}

// LoadConfig reads configuration from path/app.env and environment variables.
// Environment variables take precedence over the file; a missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.AutomaticEnv() // Read from environment variables

	v.AddConfigPath(path)
	v.SetConfigName("app") // Look for app.env
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Defaults depend on APP_ENV, which may come from the file.
	setDefaults(v)

	var config Config

	config.App.Environment = v.GetString("APP_ENV")

	config.Store.SeedData = v.GetBool("STORE_SEED_DATA")

	config.Logger.Level = v.GetString("LOG_LEVEL")
	config.Logger.Format = v.GetString("LOG_FORMAT")
	config.Logger.OutputPath = v.GetString("LOG_OUTPUT_PATH")
	config.Logger.EnableSampling = v.GetBool("LOG_ENABLE_SAMPLING")
	config.Logger.ServiceName = v.GetString("SERVICE_NAME")
	config.Logger.ServiceVersion = v.GetString("SERVICE_VERSION")
	config.Logger.MaxSizeMB = v.GetInt("LOG_MAX_SIZE_MB")
	config.Logger.MaxBackups = v.GetInt("LOG_MAX_BACKUPS")
	config.Logger.MaxAgeDays = v.GetInt("LOG_MAX_AGE_DAYS")

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("STORE_SEED_DATA", true)

	// Logger defaults
	if v.GetString("APP_ENV") == "production" {
		v.SetDefault("LOG_LEVEL", "info")
		v.SetDefault("LOG_FORMAT", "json")
		v.SetDefault("LOG_ENABLE_SAMPLING", true)
	} else {
		v.SetDefault("LOG_LEVEL", "debug")
		v.SetDefault("LOG_FORMAT", "console")
		v.SetDefault("LOG_ENABLE_SAMPLING", false)
	}
	v.SetDefault("LOG_OUTPUT_PATH", "stdout")
	v.SetDefault("LOG_MAX_SIZE_MB", 100)
	v.SetDefault("LOG_MAX_BACKUPS", 3)
	v.SetDefault("LOG_MAX_AGE_DAYS", 28)
	v.SetDefault("SERVICE_NAME", "user-store")
	v.SetDefault("SERVICE_VERSION", "1.0.0")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their environment variable name.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name := f.Tag.Get("mapstructure"); name != "" {
			return name
		}
		return f.Name
	})
	// loglevel accepts exactly what the logger will accept.
	if err := v.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		_, err := zapcore.ParseLevel(fl.Field().String())
		return err == nil
	}); err != nil {
		panic(fmt.Sprintf("register loglevel validation: %v", err))
	}
	return v
}

// Validate checks that configured values are ones the application understands.
// It reports the first offending setting.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return err
	}

	e := validationErrors[0]
	switch e.Tag() {
	case "required":
		return fmt.Errorf("%s must not be empty", e.Field())
	case "oneof":
		return fmt.Errorf("invalid %s %q: must be one of %s", e.Field(), e.Value(), e.Param())
	default:
		return fmt.Errorf("invalid %s %v", e.Field(), e.Value())
	}
}
