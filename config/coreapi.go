package config

import (
	"main/utils"
	"time"
)

// CoreAPIConfig describes how to reach the core backend that owns statement
// calculation, schedule persistence and Stripe onboarding.
type CoreAPIConfig struct {
	BaseURL   string
	Timeout   time.Duration
	CacheTTL  time.Duration
	RedisURL  string
	CacheSkip bool
}

func LoadCoreAPIConfig() CoreAPIConfig {
	return CoreAPIConfig{
		BaseURL:   utils.GetEnvAsString("CORE_API_URL", "http://localhost:4000"),
		Timeout:   utils.GetEnvAsDuration("CORE_API_TIMEOUT", 15*time.Second),
		CacheTTL:  utils.GetEnvAsDuration("CORE_API_CACHE_TTL", 60*time.Second),
		RedisURL:  utils.GetEnvAsString("REDIS_URL", "redis://localhost:6379/0"),
		CacheSkip: utils.GetEnvAsBool("CORE_API_CACHE_SKIP", false),
	}
}
