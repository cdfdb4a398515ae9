package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	DB              DBConfig
	Server          ServerConfig
	Redis           RedisConfig
	Logger          LoggerConfig
	CacheTTLs       CacheTTLConfig
	Recommendations RecommendationConfig
	Client          ClientConfig
}

type RedisConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// DBConfig selects the catalog driver. Path is used by sqlite, the remaining
// fields by oracle.
type DBConfig struct {
	Driver   string
	Path     string
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	ResultsPath  string
}

type LoggerConfig struct {
	Level string
	Env   string
}

// CacheTTLConfig holds durations as strings ("10m", "1h") so that they can be
// overridden from the environment without unit confusion.
type CacheTTLConfig struct {
	Results string
}

type RecommendationConfig struct {
	// LevelThresholds are ascending quiz-score upper bounds for Niveau 1..n.
	LevelThresholds []int
	MaxCards        int
	Categories      []string
}

// ClientConfig is read by cmd/advisor.
type ClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("db.driver", "sqlite")
	v.SetDefault("db.path", "learnpath.db")
	v.SetDefault("db.port", 1521)
	v.SetDefault("server.port", 5001)
	v.SetDefault("server.read_timeout", 20)
	v.SetDefault("server.write_timeout", 20)
	v.SetDefault("server.results_path", "/elearning")
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.address", "localhost:6379")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.env", "development")
	v.SetDefault("cache_ttls.results", "10m")
	v.SetDefault("recommendations.level_thresholds", []int{5, 10, 18, 26})
	v.SetDefault("recommendations.max_cards", 6)
	v.SetDefault("recommendations.categories", []string{"all", "Workshop", "E-Learning", "Guide"})
	v.SetDefault("client.base_url", "http://localhost:5001")
	v.SetDefault("client.timeout", 10)
}

// LoadConfig reads config.yaml from the usual locations. A missing file is not
// an error; defaults and APP_* environment variables still apply.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		v.AddConfigPath("../../configs")
		v.AddConfigPath("../../")
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
	}

	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if configFile := v.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", absPath)
	}

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		DB: DBConfig{
			Driver:   v.GetString("db.driver"),
			Path:     v.GetString("db.path"),
			Host:     v.GetString("db.host"),
			Port:     v.GetInt("db.port"),
			User:     v.GetString("db.user"),
			Password: v.GetString("db.password"),
			DBName:   v.GetString("db.name"),
		},
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			ReadTimeout:  v.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout: v.GetDuration("server.write_timeout") * time.Second,
			ResultsPath:  v.GetString("server.results_path"),
		},
		Redis: RedisConfig{
			Enabled:  v.GetBool("redis.enabled"),
			Address:  v.GetString("redis.address"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Logger: LoggerConfig{
			Level: v.GetString("logger.level"),
			Env:   v.GetString("logger.env"),
		},
		CacheTTLs: CacheTTLConfig{
			Results: v.GetString("cache_ttls.results"),
		},
		Recommendations: RecommendationConfig{
			LevelThresholds: v.GetIntSlice("recommendations.level_thresholds"),
			MaxCards:        v.GetInt("recommendations.max_cards"),
			Categories:      v.GetStringSlice("recommendations.categories"),
		},
		Client: ClientConfig{
			BaseURL: v.GetString("client.base_url"),
			Timeout: v.GetDuration("client.timeout") * time.Second,
		},
	}
}

// GetDSN returns the data source name for the configured driver.
func (c *Config) GetDSN() string {
	if c.DB.Driver == "oracle" {
		return fmt.Sprintf("oracle://%s:%s@%s:%d/%s",
			c.DB.User,
			c.DB.Password,
			c.DB.Host,
			c.DB.Port,
			c.DB.DBName,
		)
	}
	return c.DB.Path
}

// ParseTTLStringOrDefault parses a duration string, falling back to def when
// the string is empty, malformed or not positive.
func (c *Config) ParseTTLStringOrDefault(ttl string, def time.Duration) time.Duration {
	if ttl == "" {
		return def
	}
	d, err := time.ParseDuration(ttl)
	if err != nil || d <= 0 {
		return def
	}
	return d
}
