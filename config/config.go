package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App         AppConfig
	DB          DBConfig
	Redis       RedisConfig
	JWT         JWTConfig
	HospitalDir HospitalDirConfig
	Geocode     GeocodeConfig
	ProfileSink ProfileSinkConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

// HospitalDirConfig points at the hospital directory API. The directory is a
// RapidAPI-style service, so the host header doubles as the API identifier.
type HospitalDirConfig struct {
	BaseURL string
	APIHost string
	APIKey  string
	Timeout time.Duration
}

type GeocodeConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

type ProfileSinkConfig struct {
	URL     string
	Timeout time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	accessExpiry, err := time.ParseDuration(viper.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 15 * time.Minute
	}

	refreshExpiry, err := time.ParseDuration(viper.GetString("JWT_REFRESH_EXPIRY"))
	if err != nil {
		refreshExpiry = 7 * 24 * time.Hour
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:        viper.GetString("JWT_SECRET"),
			AccessExpiry:  accessExpiry,
			RefreshExpiry: refreshExpiry,
		},
		HospitalDir: HospitalDirConfig{
			BaseURL: viper.GetString("HOSPITAL_API_BASE_URL"),
			APIHost: viper.GetString("HOSPITAL_API_HOST"),
			APIKey:  viper.GetString("HOSPITAL_API_KEY"),
			Timeout: clientTimeout("HOSPITAL_API_TIMEOUT"),
		},
		Geocode: GeocodeConfig{
			BaseURL: viper.GetString("GEOCODE_API_BASE_URL"),
			APIKey:  viper.GetString("GEOCODE_API_KEY"),
			Timeout: clientTimeout("GEOCODE_API_TIMEOUT"),
		},
		ProfileSink: ProfileSinkConfig{
			URL:     viper.GetString("PROFILE_SINK_URL"),
			Timeout: clientTimeout("PROFILE_SINK_TIMEOUT"),
		},
	}

	return config, nil
}

func clientTimeout(key string) time.Duration {
	d, err := time.ParseDuration(viper.GetString(key))
	if err != nil {
		return 10 * time.Second
	}
	return d
}
