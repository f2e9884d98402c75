// Package config loads configs/config.yml, a .env file and AGRIMOGA_*
// environment overrides into one typed Config.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"agrimoga/internal/advisory"
	"agrimoga/internal/publisher"
	"agrimoga/internal/repository/db"
	"agrimoga/internal/service"
	"agrimoga/internal/weather"
)

const (
	EnvPrefix   = "AGRIMOGA"
	DefaultPort = "8080"
	DefaultPath = "configs"
)

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type DBConfig struct {
	Driver string `mapstructure:"driver"`
	Path   string `mapstructure:"path"`
	DSN    string `mapstructure:"dsn"`
}

type WeatherConfig struct {
	APIKey          string        `mapstructure:"api_key"`
	BaseURL         string        `mapstructure:"base_url"`
	FallbackGeoURL  string        `mapstructure:"fallback_geo_url"`
	Timeout         time.Duration `mapstructure:"timeout"`
	Retries         int           `mapstructure:"retries"`
	BreakerOpen     time.Duration `mapstructure:"breaker_open"`
	RefreshInterval time.Duration `mapstructure:"refresh_interval"`
}

type HTTPConfig struct {
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

type MetricsConfig struct {
	Namespace string `mapstructure:"namespace"`
}

// Config is the whole process configuration.
type Config struct {
	Port       string           `mapstructure:"port"`
	Log        LogConfig        `mapstructure:"log"`
	DB         DBConfig         `mapstructure:"db"`
	LogCap     int              `mapstructure:"log_cap"`
	HTTP       HTTPConfig       `mapstructure:"http"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
	Weather    WeatherConfig    `mapstructure:"weather"`
	Farm       service.Farm     `mapstructure:"farm"`
	Irrigation advisory.Config  `mapstructure:"irrigation"`
	MQTT       publisher.Config `mapstructure:"mqtt"`
}

// DBOptions maps the db section onto the repository bootstrap.
func (c Config) DBOptions() db.Config {
	return db.Config{Driver: c.DB.Driver, Path: c.DB.Path, DSN: c.DB.DSN}
}

// WeatherClient maps the weather section onto the provider client.
func (c Config) WeatherClient() weather.Config {
	return weather.Config{
		APIKey:         c.Weather.APIKey,
		BaseURL:        c.Weather.BaseURL,
		FallbackGeoURL: c.Weather.FallbackGeoURL,
		Timeout:        c.Weather.Timeout,
		Retries:        c.Weather.Retries,
		BreakerOpen:    c.Weather.BreakerOpen,
	}
}

// Services maps the tunables onto the service layer.
func (c Config) Services() service.Config {
	return service.Config{LogCap: c.LogCap, Irrigation: c.Irrigation, Farm: c.Farm}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", DefaultPort)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("db.driver", db.DriverSQLite)
	v.SetDefault("db.path", "agrimoga.db")
	v.SetDefault("db.dsn", "")
	v.SetDefault("log_cap", service.DefaultLogCap)
	v.SetDefault("http.write_timeout", 30*time.Second)
	v.SetDefault("metrics.namespace", "agrimoga")

	v.SetDefault("weather.api_key", "")
	v.SetDefault("weather.base_url", weather.DefaultBaseURL)
	v.SetDefault("weather.fallback_geo_url", weather.DefaultFallbackGeoURL)
	v.SetDefault("weather.timeout", weather.DefaultTimeout)
	v.SetDefault("weather.retries", 2)
	v.SetDefault("weather.breaker_open", 30*time.Second)
	v.SetDefault("weather.refresh_interval", service.DefaultRefreshInterval)

	v.SetDefault("farm.lat", 0.0)
	v.SetDefault("farm.lon", 0.0)
	v.SetDefault("farm.lang", "ar")

	d := advisory.DefaultConfig()
	v.SetDefault("irrigation.hot_temp_c", d.HotTempC)
	v.SetDefault("irrigation.hot_multiplier", d.HotMultiplier)
	v.SetDefault("irrigation.warm_temp_c", d.WarmTempC)
	v.SetDefault("irrigation.warm_multiplier", d.WarmMultiplier)
	v.SetDefault("irrigation.cool_temp_c", d.CoolTempC)
	v.SetDefault("irrigation.cool_multiplier", d.CoolMultiplier)
	v.SetDefault("irrigation.windy_kmh", d.WindyKmh)
	v.SetDefault("irrigation.wind_multiplier", d.WindMultiplier)
	v.SetDefault("irrigation.wet_pct", d.WetPct)
	v.SetDefault("irrigation.wet_multiplier", d.WetMultiplier)
	v.SetDefault("irrigation.damp_pct", d.DampPct)
	v.SetDefault("irrigation.damp_multiplier", d.DampMultiplier)
	v.SetDefault("irrigation.postpone_dry_pct", d.PostponeDryPct)
	v.SetDefault("irrigation.light_fraction", d.LightFraction)
	v.SetDefault("irrigation.heavy_threshold_l", d.HeavyThresholdL)

	v.SetDefault("mqtt.broker", "")
	v.SetDefault("mqtt.topic", "agrimoga/irrigation")
	v.SetDefault("mqtt.client_id", "agrimoga")
	v.SetDefault("mqtt.username", "")
	v.SetDefault("mqtt.password", "")
	v.SetDefault("mqtt.qos", 1)
}

// Load reads config.yml from dir (the file is optional), then .env from the
// working directory, then AGRIMOGA_* variables such as AGRIMOGA_WEATHER_API_KEY.
func Load(dir string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)
	v.SetConfigName("config")
	v.SetConfigType("yml")
	if dir == "" {
		dir = DefaultPath
	}
	v.AddConfigPath(dir)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.LogCap = service.NormalizeLogCap(cfg.LogCap)
	if cfg.Port == "" {
		cfg.Port = DefaultPort
	}
	if p := os.Getenv("PORT"); p != "" {
		cfg.Port = p
	}
	return cfg, nil
}
