package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"divination/internal/numerology"
)

type Config struct {
	HTTPPort           int
	APIRateLimitPerMin int

	RedisURL     string
	CacheEnabled bool
	CacheTTLSecs int

	DefaultBirthTime     string
	LifeNumberMasterMode numerology.MasterMode

	LogLevel  string
	LogFormat string

	OTLPEndpoint    string
	OTelServiceName string

	MCPTransport          string
	MCPHTTPEnabled        bool
	MCPHTTPBind           string
	MCPHTTPPort           int
	MCPAuthToken          string
	MCPRequestTimeoutSecs int
	MCPRateLimitPerMin    int
}

// CacheTTL is CacheTTLSecs as a duration.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSecs) * time.Second
}

func Load() *Config {
	cfg := &Config{
		RedisURL:     strings.TrimSpace(os.Getenv("REDIS_URL")),
		MCPAuthToken: os.Getenv("MCP_AUTH_TOKEN"),
		OTLPEndpoint: strings.TrimSpace(os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")),
	}

	cfg.HTTPPort = positiveInt("HTTP_PORT", 8080)
	cfg.APIRateLimitPerMin = positiveInt("API_RATE_LIMIT_PER_MIN", 120)

	if cfg.RedisURL == "" {
		log.Println("Warning: REDIS_URL not set, defaulting to localhost:6379")
		cfg.RedisURL = "localhost:6379"
	}
	cfg.CacheEnabled = boolWithDefault("CACHE_ENABLED", true)
	cfg.CacheTTLSecs = positiveInt("CACHE_TTL_SECS", 86400)

	cfg.DefaultBirthTime = strings.TrimSpace(os.Getenv("DEFAULT_BIRTH_TIME"))
	if cfg.DefaultBirthTime == "" {
		cfg.DefaultBirthTime = "12:00"
	} else if _, err := time.Parse("15:04", cfg.DefaultBirthTime); err != nil {
		log.Printf("Warning: invalid DEFAULT_BIRTH_TIME=%q, defaulting to 12:00", cfg.DefaultBirthTime)
		cfg.DefaultBirthTime = "12:00"
	}

	cfg.LifeNumberMasterMode = numerology.MasterModeRaw
	if v := strings.TrimSpace(os.Getenv("LIFE_NUMBER_MASTER_MODE")); v != "" {
		mode, ok := numerology.ParseMasterMode(v)
		if ok {
			cfg.LifeNumberMasterMode = mode
		} else {
			log.Printf("Warning: unsupported LIFE_NUMBER_MASTER_MODE=%q, defaulting to raw", v)
		}
	}

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(os.Getenv("LOG_LEVEL")))
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	case "":
		cfg.LogLevel = "info"
	default:
		log.Printf("Warning: unsupported LOG_LEVEL=%q, defaulting to info", cfg.LogLevel)
		cfg.LogLevel = "info"
	}

	cfg.LogFormat = strings.ToLower(strings.TrimSpace(os.Getenv("LOG_FORMAT")))
	if cfg.LogFormat != "json" && cfg.LogFormat != "console" {
		cfg.LogFormat = "json"
	}

	cfg.OTelServiceName = strings.TrimSpace(os.Getenv("OTEL_SERVICE_NAME"))
	if cfg.OTelServiceName == "" {
		cfg.OTelServiceName = "divination"
	}

	cfg.MCPTransport = strings.ToLower(strings.TrimSpace(os.Getenv("MCP_TRANSPORT")))
	if cfg.MCPTransport == "" {
		cfg.MCPTransport = "stdio"
	}
	if cfg.MCPTransport != "stdio" && cfg.MCPTransport != "http" {
		log.Printf("Warning: unsupported MCP_TRANSPORT=%q, defaulting to stdio", cfg.MCPTransport)
		cfg.MCPTransport = "stdio"
	}

	cfg.MCPHTTPEnabled = strings.EqualFold(strings.TrimSpace(os.Getenv("MCP_HTTP_ENABLED")), "true")

	cfg.MCPHTTPBind = strings.TrimSpace(os.Getenv("MCP_HTTP_BIND"))
	if cfg.MCPHTTPBind == "" {
		cfg.MCPHTTPBind = "127.0.0.1"
	}

	cfg.MCPHTTPPort = positiveInt("MCP_HTTP_PORT", 8090)
	cfg.MCPRequestTimeoutSecs = positiveInt("MCP_REQUEST_TIMEOUT_SECS", 5)
	cfg.MCPRateLimitPerMin = positiveInt("MCP_RATE_LIMIT_PER_MIN", 60)

	return cfg
}

func positiveInt(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("Warning: invalid %s=%q, defaulting to %d", key, v, fallback)
		return fallback
	}
	return n
}

func boolWithDefault(key string, fallback bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	switch {
	case strings.EqualFold(v, "true"):
		return true
	case strings.EqualFold(v, "false"):
		return false
	}
	return fallback
}
