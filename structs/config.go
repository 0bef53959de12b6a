package structs

import "time"

type Config struct {
	Server    *ServerConfig
	Cors      *CorsConfig
	Database  *DatabaseConfig
	Auth      *AuthConfig
	Cache     *CacheConfig
	Email     *EmailConfig
	RateLimit *RateLimitConfig
}

type ServerConfig struct {
	AppName        string        // StoreBill
	Environment    string        // development, production
	Port           string        // :8084
	ReadTimeout    time.Duration // in seconds
	WriteTimeout   time.Duration // in seconds
	IdleTimeout    time.Duration // in seconds
	MaxHeaderBytes int           // in bytes
}

type CorsConfig struct {
	AllowOrigins     []string
	AllowMethods     []string
	AllowHeaders     []string
	ExposedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	MaxConns     int
	MinConns     int
	MaxLifetime  time.Duration // in seconds
	MaxIdleTime  time.Duration // in seconds
	ReadTimeout  time.Duration // in seconds
	WriteTimeout time.Duration // in seconds
}

type AuthConfig struct {
	AccessTokenSecret  string
	AccessTokenExpiry  time.Duration
	RefreshTokenSecret string
	RefreshTokenExpiry time.Duration
	CSRFTokenExpiry    time.Duration
}

type CacheConfig struct {
	Address      string
	Username     string
	Password     string
	DB           int
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	MaxRetries   int

	PublishTokenExpiry time.Duration // one-time store publish tokens
	OTPExpiry          time.Duration // emailed one-time passcodes
}

type EmailConfig struct {
	ApiKey string
	From   string
}

type RateLimitConfig struct {
	Enabled bool

	GeneralLimit  int
	GeneralWindow time.Duration

	AuthLimit  int
	AuthWindow time.Duration

	// Search and bill creation hit the database hardest
	ExpensiveLimit  int
	ExpensiveWindow time.Duration
}
