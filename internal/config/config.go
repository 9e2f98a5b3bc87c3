package config

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	ierr "github.com/stimasense/stimasense/internal/errors"
	"github.com/stimasense/stimasense/internal/types"
)

// Configuration is the root application configuration. The tariff section
// carries the regulator rate schedule: levy rates change with gazette
// notices, so they are deployment configuration rather than code.
type Configuration struct {
	Deployment DeploymentConfig `mapstructure:"deployment" validate:"required"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Billing    BillingConfig    `mapstructure:"billing"`
	Tariff     TariffConfig     `mapstructure:"tariff" validate:"required"`
}

type DeploymentConfig struct {
	Mode string `mapstructure:"mode" validate:"required"`
}

type LoggingConfig struct {
	Level types.LogLevel `mapstructure:"level"`
}

type BillingConfig struct {
	Currency string `mapstructure:"currency"`
	Timezone string `mapstructure:"timezone"`
}

// TariffConfig holds the per-kWh regulator rates and the VAT fraction.
// Defaults are illustrative; deployments must supply the currently
// gazetted values.
type TariffConfig struct {
	EnergyRatePerKwh          float64 `mapstructure:"energy_rate_per_kwh" validate:"gte=0"`
	FuelLevyRatePerKwh        float64 `mapstructure:"fuel_levy_rate_per_kwh" validate:"gte=0"`
	ForexLevyRatePerKwh       float64 `mapstructure:"forex_levy_rate_per_kwh" validate:"gte=0"`
	InflationAdjustmentPerKwh float64 `mapstructure:"inflation_adjustment_rate_per_kwh" validate:"gte=0"`
	EpraLevyRatePerKwh        float64 `mapstructure:"epra_levy_rate_per_kwh" validate:"gte=0"`
	WraLevyRatePerKwh         float64 `mapstructure:"wra_levy_rate_per_kwh" validate:"gte=0"`
	RepLevyRatePerKwh         float64 `mapstructure:"rep_levy_rate_per_kwh" validate:"gte=0"`
	VatRate                   float64 `mapstructure:"vat_rate" validate:"gte=0,lte=1"`
}

// NewConfig loads configuration from config files and environment
// variables, applies defaults and validates the result.
func NewConfig() (*Configuration, error) {
	// Ignore missing .env files; real deployments use environment variables
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.SetEnvPrefix("STIMASENSE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, ierr.WithError(err).
				WithHint("failed to read configuration file").
				Mark(ierr.ErrValidation)
		}
	}

	cfg := &Configuration{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, ierr.WithError(err).
			WithHint("failed to unmarshal configuration").
			Mark(ierr.ErrValidation)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("deployment.mode", "analytics")
	v.SetDefault("logging.level", string(types.LogLevelInfo))
	v.SetDefault("billing.currency", types.DefaultCurrency)
	v.SetDefault("billing.timezone", types.DefaultTimezone)

	v.SetDefault("tariff.energy_rate_per_kwh", 25.0)
	v.SetDefault("tariff.fuel_levy_rate_per_kwh", 2.0)
	v.SetDefault("tariff.forex_levy_rate_per_kwh", 0.5)
	v.SetDefault("tariff.inflation_adjustment_rate_per_kwh", 0.3)
	v.SetDefault("tariff.epra_levy_rate_per_kwh", 0.1)
	v.SetDefault("tariff.wra_levy_rate_per_kwh", 0.05)
	v.SetDefault("tariff.rep_levy_rate_per_kwh", 0.08)
	v.SetDefault("tariff.vat_rate", 0.16)
}

// Validate checks structural constraints and the billing timezone.
func (c *Configuration) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			first := verrs[0]
			return ierr.NewErrorf("invalid configuration value for %s", first.Namespace()).
				WithHintf("constraint %s failed", first.Tag()).
				WithReportableDetails(map[string]any{"field": first.Namespace()}).
				Mark(ierr.ErrValidation)
		}
		return ierr.WithError(err).Mark(ierr.ErrValidation)
	}

	if c.Billing.Timezone != "" {
		if err := types.ValidateTimezone(c.Billing.Timezone); err != nil {
			return ierr.NewErrorf("invalid billing timezone: %s", c.Billing.Timezone).
				WithReportableDetails(map[string]any{"field": "billing.timezone"}).
				Mark(ierr.ErrValidation)
		}
	}
	return nil
}

// GetDefaultConfig returns a configuration with defaults applied, used by
// tests and early bootstrap before the real config is loaded.
func GetDefaultConfig() *Configuration {
	return &Configuration{
		Deployment: DeploymentConfig{Mode: "analytics"},
		Logging:    LoggingConfig{Level: types.LogLevelInfo},
		Billing: BillingConfig{
			Currency: types.DefaultCurrency,
			Timezone: types.DefaultTimezone,
		},
		Tariff: TariffConfig{
			EnergyRatePerKwh:          25.0,
			FuelLevyRatePerKwh:        2.0,
			ForexLevyRatePerKwh:       0.5,
			InflationAdjustmentPerKwh: 0.3,
			EpraLevyRatePerKwh:        0.1,
			WraLevyRatePerKwh:         0.05,
			RepLevyRatePerKwh:         0.08,
			VatRate:                   0.16,
		},
	}
}
