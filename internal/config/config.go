package config

import (
	"os"
	"regexp"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server struct {
		Port         int           `yaml:"port" default:"8080"`
		Host         string        `yaml:"host" default:"0.0.0.0"`
		ReadTimeout  time.Duration `yaml:"read_timeout" default:"30s"`
		WriteTimeout time.Duration `yaml:"write_timeout" default:"30s"`
		IdleTimeout  time.Duration `yaml:"idle_timeout" default:"60s"`
	} `yaml:"server"`

	Sources struct {
		RequestTimeout time.Duration `yaml:"request_timeout" default:"15s"`
		UserAgent      string        `yaml:"user_agent"`

		JSearch struct {
			APIKey  string `yaml:"api_key"`
			BaseURL string `yaml:"base_url" default:"https://jsearch.p.rapidapi.com"`
		} `yaml:"jsearch"`

		Adzuna struct {
			AppID   string `yaml:"app_id"`
			AppKey  string `yaml:"app_key"`
			BaseURL string `yaml:"base_url" default:"https://api.adzuna.com/v1/api/jobs"`
		} `yaml:"adzuna"`

		RemoteOK struct {
			BaseURL string `yaml:"base_url" default:"https://remoteok.io/api"`
		} `yaml:"remoteok"`
	} `yaml:"sources"`

	Aggregator struct {
		MaxQueries      int           `yaml:"max_queries" default:"3"`
		QueryDelay      time.Duration `yaml:"query_delay" default:"500ms"`
		RequestDeadline time.Duration `yaml:"request_deadline" default:"45s"`
		MaxResults      int           `yaml:"max_results" default:"15"`
	} `yaml:"aggregator"`

	Cache struct {
		ProfileTTL      time.Duration `yaml:"profile_ttl" default:"30m"`
		UserTTL         time.Duration `yaml:"user_ttl" default:"8h"`
		CleanupInterval time.Duration `yaml:"cleanup_interval" default:"5m"`
	} `yaml:"cache"`

	Redis struct {
		URL      string        `yaml:"url"`
		Password string        `yaml:"password"`
		DB       int           `yaml:"db" default:"0"`
		Timeout  time.Duration `yaml:"timeout" default:"5s"`
	} `yaml:"redis"`

	Logging struct {
		Level  string `yaml:"level" default:"info"`
		Format string `yaml:"format" default:"json"`

		Adapters []struct {
			Name    string                 `yaml:"name"`
			Type    string                 `yaml:"type"`
			Enabled bool                   `yaml:"enabled"`
			Options map[string]interface{} `yaml:"options"`
		} `yaml:"adapters"`
	} `yaml:"logging"`
}

// expandEnvVars expands environment variables in a string using ${VAR} or $VAR
// syntax. An unset ${VAR} resolves to the empty string, so a placeholder
// credential never reads as a configured one.
func expandEnvVars(s string) string {
	re := regexp.MustCompile(`\$\{([^}]+)\}`)
	s = re.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[2 : len(match)-1]
		return os.Getenv(varName)
	})

	re2 := regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
	s = re2.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[1:]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		return match
	})

	return s
}

// LoadConfig loads configuration from file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// Load .env file if it exists (ignore errors if file doesn't exist)
	_ = godotenv.Load()

	config := &Config{}

	// Set defaults
	config.Server.Port = 8080
	config.Server.Host = "0.0.0.0"
	config.Server.ReadTimeout = 30 * time.Second
	config.Server.WriteTimeout = 30 * time.Second
	config.Server.IdleTimeout = 60 * time.Second

	config.Sources.RequestTimeout = 15 * time.Second
	config.Sources.UserAgent = "CareerCompass/1.0"
	config.Sources.JSearch.BaseURL = "https://jsearch.p.rapidapi.com"
	config.Sources.Adzuna.BaseURL = "https://api.adzuna.com/v1/api/jobs"
	config.Sources.RemoteOK.BaseURL = "https://remoteok.io/api"

	config.Aggregator.MaxQueries = 3
	config.Aggregator.QueryDelay = 500 * time.Millisecond
	config.Aggregator.RequestDeadline = 45 * time.Second
	config.Aggregator.MaxResults = 15

	config.Cache.ProfileTTL = 30 * time.Minute
	config.Cache.UserTTL = 8 * time.Hour
	config.Cache.CleanupInterval = 5 * time.Minute

	config.Redis.DB = 0
	config.Redis.Timeout = 5 * time.Second

	config.Logging.Level = "info"
	config.Logging.Format = "json"

	// Load from YAML file if it exists
	if configPath != "" {
		if data, err := os.ReadFile(configPath); err == nil {
			yamlContent := expandEnvVars(string(data))

			if err := yaml.Unmarshal([]byte(yamlContent), config); err != nil {
				return nil, err
			}
		}
	}

	// A ${VAR} placeholder with no value behind it blanks the field; keep
	// sane defaults for the fields the server cannot run without.
	if config.Logging.Level == "" {
		config.Logging.Level = "info"
	}
	if config.Logging.Format == "" {
		config.Logging.Format = "json"
	}
	if config.Sources.JSearch.BaseURL == "" {
		config.Sources.JSearch.BaseURL = "https://jsearch.p.rapidapi.com"
	}
	if config.Sources.Adzuna.BaseURL == "" {
		config.Sources.Adzuna.BaseURL = "https://api.adzuna.com/v1/api/jobs"
	}
	if config.Sources.RemoteOK.BaseURL == "" {
		config.Sources.RemoteOK.BaseURL = "https://remoteok.io/api"
	}

	// Override with environment variables
	config.loadFromEnv()

	return config, nil
}

// loadFromEnv loads configuration from environment variables
func (c *Config) loadFromEnv() {
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.Server.Port = p
		}
	}

	if host := os.Getenv("HOST"); host != "" {
		c.Server.Host = host
	}

	if apiKey := os.Getenv("RAPID_API_KEY"); apiKey != "" {
		c.Sources.JSearch.APIKey = apiKey
	}

	if appID := os.Getenv("ADZUNA_APP_ID"); appID != "" {
		c.Sources.Adzuna.AppID = appID
	}

	if appKey := os.Getenv("ADZUNA_APP_KEY"); appKey != "" {
		c.Sources.Adzuna.AppKey = appKey
	}

	if baseURL := os.Getenv("REMOTEOK_BASE_URL"); baseURL != "" {
		c.Sources.RemoteOK.BaseURL = baseURL
	}

	if timeout := os.Getenv("SOURCE_REQUEST_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Sources.RequestTimeout = d
		}
	}

	if ttl := os.Getenv("CACHE_PROFILE_TTL"); ttl != "" {
		if d, err := time.ParseDuration(ttl); err == nil {
			c.Cache.ProfileTTL = d
		}
	}

	if ttl := os.Getenv("CACHE_USER_TTL"); ttl != "" {
		if d, err := time.ParseDuration(ttl); err == nil {
			c.Cache.UserTTL = d
		}
	}

	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		c.Redis.URL = redisURL
	}

	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		c.Redis.Password = redisPassword
	}

	if redisDB := os.Getenv("REDIS_DB"); redisDB != "" {
		if db, err := strconv.Atoi(redisDB); err == nil {
			c.Redis.DB = db
		}
	}

	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		c.Logging.Level = logLevel
	}

	if logFormat := os.Getenv("LOG_FORMAT"); logFormat != "" {
		c.Logging.Format = logFormat
	}
}
