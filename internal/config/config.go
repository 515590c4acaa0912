package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	S3        S3Config        `mapstructure:"s3"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	Nutrition NutritionConfig `mapstructure:"nutrition"`
	Exercises ExercisesConfig `mapstructure:"exercises"`
	Cache     CacheConfig     `mapstructure:"cache"`
	Search    SearchConfig    `mapstructure:"search"`
	Log       LogConfig       `mapstructure:"log"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
}

type DatabaseConfig struct {
	URI  string `mapstructure:"uri"`
	Name string `mapstructure:"name"`
}

// S3Config points at the bucket holding meal photos.
type S3Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	BucketName      string `mapstructure:"bucket_name"`
	UseSSL          bool   `mapstructure:"use_ssl"`
}

// JWTConfig defines JWT specific configuration
type JWTConfig struct {
	Secret     string        `mapstructure:"secret"`
	Expiration time.Duration `mapstructure:"expiration"`
}

// NutritionConfig configures the Edamam food database client.
type NutritionConfig struct {
	BaseURL  string        `mapstructure:"base_url"`
	AppID    string        `mapstructure:"app_id"`
	AppKey   string        `mapstructure:"app_key"`
	Timeout  time.Duration `mapstructure:"timeout"`
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

// ExercisesConfig configures the ExerciseDB (RapidAPI) client.
type ExercisesConfig struct {
	BaseURL  string        `mapstructure:"base_url"`
	APIKey   string        `mapstructure:"api_key"`
	Host     string        `mapstructure:"host"`
	Limit    int           `mapstructure:"limit"`
	Timeout  time.Duration `mapstructure:"timeout"`
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

type CacheConfig struct {
	SizeMB int `mapstructure:"size_mb"`
}

// SearchConfig tunes the debounce gate of interactive food search.
type SearchConfig struct {
	Debounce       time.Duration `mapstructure:"debounce"`
	MinQueryLength int           `mapstructure:"min_query_length"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	JSON   bool   `mapstructure:"json"`
	File   string `mapstructure:"file"`
	Stdout bool   `mapstructure:"stdout"`
}

// LoadConfig reads configuration from path/config.yaml and environment variables.
// Nested keys map to env vars with dots replaced by underscores, e.g. jwt.secret -> JWT_SECRET.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	setDefaults(v)

	err = v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		// No file: defaults and env vars only.
		err = nil
	} else if err != nil {
		return
	}

	// Viper parses duration strings ("60m", "1h") into time.Duration fields.
	if err = v.Unmarshal(&config); err != nil {
		return
	}
	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.address", ":8080")
	v.SetDefault("database.uri", "mongodb://localhost:27017")
	v.SetDefault("database.name", "fittrack")
	v.SetDefault("s3.use_ssl", true)
	v.SetDefault("jwt.expiration", "1h")

	// AutomaticEnv only covers keys viper already knows, so secrets get explicit defaults too.
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.access_key_id", "")
	v.SetDefault("s3.secret_access_key", "")
	v.SetDefault("s3.bucket_name", "")
	v.SetDefault("jwt.secret", "")

	v.SetDefault("nutrition.base_url", "https://api.edamam.com")
	v.SetDefault("nutrition.app_id", "")
	v.SetDefault("nutrition.app_key", "")
	v.SetDefault("nutrition.timeout", "12s")
	v.SetDefault("nutrition.cache_ttl", "10m")

	v.SetDefault("exercises.base_url", "https://exercisedb.p.rapidapi.com")
	v.SetDefault("exercises.api_key", "")
	v.SetDefault("exercises.host", "exercisedb.p.rapidapi.com")
	v.SetDefault("exercises.limit", 50)
	v.SetDefault("exercises.timeout", "12s")
	v.SetDefault("exercises.cache_ttl", "1h")

	v.SetDefault("cache.size_mb", 32)

	v.SetDefault("search.debounce", "1s")
	v.SetDefault("search.min_query_length", 3)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)
	v.SetDefault("log.file", "")
	v.SetDefault("log.stdout", true)
}
