package config

import (
	"storebill_server/structs"
	"time"
)

// Load builds the full application configuration from the environment.
// The result is constructed once in main and passed by reference; there is
// no package-level instance.
func Load() *structs.Config {
	return &structs.Config{
		Server: &structs.ServerConfig{
			AppName:        getEnvAsString("APP_NAME", "StoreBill_no_env"),
			Environment:    getEnvAsString("APP_ENV", "development"),
			Port:           getEnvAsString("APP_PORT", ":8084"),
			ReadTimeout:    getEnvAsTimeDuration("SERVER_READ_TIME_OUT", 15*time.Second),
			WriteTimeout:   getEnvAsTimeDuration("SERVER_WRITE_TIME_OUT", 15*time.Second),
			IdleTimeout:    getEnvAsTimeDuration("SERVER_IDLE_TIME_OUT", 60*time.Second),
			MaxHeaderBytes: getEnvAsInt("SERVER_MAX_HEADER_BYTES", 1<<20), // 1 MB
		},
		Cors: &structs.CorsConfig{
			AllowOrigins:     getEnvAsSlice("CORS_ALLOW_ORIGINS", []string{"localhost", "http://localhost:3000"}),
			AllowMethods:     getEnvAsSlice("CORS_ALLOW_METHODS", []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}),
			AllowHeaders:     getEnvAsSlice("CORS_ALLOW_HEADERS", []string{"Origin", "Content-Type", "Accept", "Authorization", "X-CSRF-Token"}),
			AllowCredentials: getEnvAsBool("CORS_ALLOW_CREDENTIALS", true),
			ExposedHeaders:   getEnvAsSlice("CORS_EXPOSED_HEADERS", []string{"Content-Length"}),
			MaxAge:           getEnvAsInt("CORS_MAX_AGE", 300),
		},
		Database: &structs.DatabaseConfig{
			Host:         getEnvAsString("DB_HOST", "localhost"),
			Port:         getEnvAsInt("DB_PORT", 5432),
			User:         getEnvAsString("DB_USER", "postgres"),
			Password:     getEnvAsString("DB_PASSWORD", "password"),
			Name:         getEnvAsString("DB_NAME", "storebill_db"),
			MaxConns:     getEnvAsInt("DB_MAX_CONNS", 10),
			MinConns:     getEnvAsInt("DB_MIN_CONNS", 2),
			MaxLifetime:  getEnvAsTimeDuration("DB_MAX_LIFETIME", 30*time.Minute),
			MaxIdleTime:  getEnvAsTimeDuration("DB_MAX_IDLE_TIME", 5*time.Minute),
			ReadTimeout:  getEnvAsTimeDuration("DB_READ_TIMEOUT", 5*time.Second),
			WriteTimeout: getEnvAsTimeDuration("DB_WRITE_TIMEOUT", 5*time.Second),
		},
		Auth: &structs.AuthConfig{
			AccessTokenSecret:  getEnvAsString("AUTH_ACCESS_TOKEN_SECRET", "default_access_secret"),
			AccessTokenExpiry:  getEnvAsTimeDuration("AUTH_ACCESS_TOKEN_EXPIRY", 15*time.Minute),
			RefreshTokenSecret: getEnvAsString("AUTH_REFRESH_TOKEN_SECRET", "default_refresh_secret"),
			RefreshTokenExpiry: getEnvAsTimeDuration("AUTH_REFRESH_TOKEN_EXPIRY", 7*24*time.Hour),
			CSRFTokenExpiry:    getEnvAsTimeDuration("AUTH_CSRF_TOKEN_EXPIRY", 2*time.Hour),
		},
		Cache: &structs.CacheConfig{
			Address:      getEnvAsString("REDIS_ADDRESS", "localhost:6379"),
			Username:     getEnvAsString("REDIS_USERNAME", ""),
			Password:     getEnvAsString("REDIS_PASSWORD", ""),
			DB:           getEnvAsInt("REDIS_DB", 0),
			PoolSize:     getEnvAsInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: getEnvAsInt("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  getEnvAsTimeDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  getEnvAsTimeDuration("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: getEnvAsTimeDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
			MaxRetries:   getEnvAsInt("REDIS_MAX_RETRIES", 3),

			PublishTokenExpiry: getEnvAsTimeDuration("PUBLISH_TOKEN_EXPIRY", 60*time.Minute),
			OTPExpiry:          getEnvAsTimeDuration("OTP_EXPIRY", 10*time.Minute),
		},
		Email: &structs.EmailConfig{
			ApiKey: getEnvAsString("RESEND_API_KEY", ""),
			From:   getEnvAsString("EMAIL_FROM", "StoreBill <noreply@storebill.local>"),
		},
		RateLimit: &structs.RateLimitConfig{
			Enabled:         getEnvAsBool("RATE_LIMIT_ENABLED", true),
			GeneralLimit:    getEnvAsInt("RATE_LIMIT_GENERAL", 120),
			GeneralWindow:   getEnvAsTimeDuration("RATE_LIMIT_GENERAL_WINDOW", time.Minute),
			AuthLimit:       getEnvAsInt("RATE_LIMIT_AUTH", 10),
			AuthWindow:      getEnvAsTimeDuration("RATE_LIMIT_AUTH_WINDOW", time.Minute),
			ExpensiveLimit:  getEnvAsInt("RATE_LIMIT_EXPENSIVE", 60),
			ExpensiveWindow: getEnvAsTimeDuration("RATE_LIMIT_EXPENSIVE_WINDOW", time.Minute),
		},
	}
}

func LogLevel(cfg *structs.Config) string {
	if IsProduction(cfg) {
		return "info"
	}
	return "debug"
}

func IsProduction(cfg *structs.Config) bool {
	return cfg.Server.Environment == "production"
}
