package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"storebill_server/lib"
	"storebill_server/structs"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	publishTokenKeyPrefix = "publish_token:"
	otpKeyPrefix          = "otp:"
	rateLimitKeyPrefix    = "ratelimit:"
)

// TokenService owns the Redis-backed short-lived secrets: one-time store
// publish tokens, emailed OTPs, and the rate limit counters.
type TokenService struct {
	logger *gecho.Logger
	cfg    *structs.Config
	client *redis.Client
}

func NewTokenService(logger *gecho.Logger, cfg *structs.Config) *TokenService {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Cache.Address,
		Username: cfg.Cache.Username,
		Password: cfg.Cache.Password,
		DB:       cfg.Cache.DB,

		PoolSize:     cfg.Cache.PoolSize,
		MinIdleConns: cfg.Cache.MinIdleConns,

		DialTimeout:  cfg.Cache.DialTimeout,
		ReadTimeout:  cfg.Cache.ReadTimeout,
		WriteTimeout: cfg.Cache.WriteTimeout,

		MaxRetries: cfg.Cache.MaxRetries,
	})

	return &TokenService{
		logger: logger,
		cfg:    cfg,
		client: client,
	}
}

// Close closes the Redis connection pool
func (ts *TokenService) Close() error {
	return ts.client.Close()
}

// Ping checks Redis connectivity
func (ts *TokenService) Ping(ctx context.Context) error {
	return ts.client.Ping(ctx).Err()
}

// IssuePublishToken mints a one-time token that authorizes the user to
// create one store. It expires on its own if never used.
func (ts *TokenService) IssuePublishToken(ctx context.Context, userId uuid.UUID) (string, error) {
	token, err := lib.GenerateRandomToken()
	if err != nil {
		return "", err
	}

	key := publishTokenKeyPrefix + token
	if err := ts.client.Set(ctx, key, userId.String(), ts.cfg.Cache.PublishTokenExpiry).Err(); err != nil {
		ts.logger.Error("Failed to store publish token", gecho.Field("error", err))
		return "", err
	}

	return token, nil
}

// ConsumePublishToken atomically redeems a publish token and returns the
// user it was issued to. GETDEL guarantees a token can never authorize
// two stores, even under concurrent requests.
func (ts *TokenService) ConsumePublishToken(ctx context.Context, token string) (uuid.UUID, error) {
	key := publishTokenKeyPrefix + token
	value, err := ts.client.GetDel(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return uuid.Nil, lib.ErrInvalidToken
		}
		ts.logger.Error("Failed to consume publish token", gecho.Field("error", err))
		return uuid.Nil, err
	}

	userId, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, fmt.Errorf("corrupt publish token payload: %w", err)
	}
	return userId, nil
}

// StoreOTP saves an emailed passcode under the address it was sent to
func (ts *TokenService) StoreOTP(ctx context.Context, email, otp string) error {
	key := otpKeyPrefix + email
	if err := ts.client.Set(ctx, key, otp, ts.cfg.Cache.OTPExpiry).Err(); err != nil {
		ts.logger.Error("Failed to store OTP", gecho.Field("error", err))
		return err
	}
	return nil
}

// VerifyOTP checks a candidate passcode against the stored one and burns
// it on success. A missing key reads as expired; a mismatch leaves the
// stored code in place for another attempt within the TTL.
func (ts *TokenService) VerifyOTP(ctx context.Context, email, candidate string) error {
	key := otpKeyPrefix + email
	stored, err := ts.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return lib.ErrExpiredToken
		}
		ts.logger.Error("Failed to read OTP", gecho.Field("error", err))
		return err
	}

	if subtle.ConstantTimeCompare([]byte(stored), []byte(candidate)) != 1 {
		return lib.ErrInvalidToken
	}

	ts.client.Del(ctx, key)
	return nil
}

// IncrementRateLimit bumps the counter for key and returns the new count.
// The expiry is set only when the key is created so the window is fixed,
// not sliding.
func (ts *TokenService) IncrementRateLimit(ctx context.Context, key string, window time.Duration) (int64, error) {
	fullKey := rateLimitKeyPrefix + key

	count, err := ts.client.Incr(ctx, fullKey).Result()
	if err != nil {
		return 0, err
	}
	if count == 1 {
		ts.client.Expire(ctx, fullKey, window)
	}

	return count, nil
}
