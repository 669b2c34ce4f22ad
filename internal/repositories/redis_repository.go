package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aaravmahajanofficial/vendor-marketplace/internal/api/middleware"
	"github.com/aaravmahajanofficial/vendor-marketplace/internal/config"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type RateLimitRepository interface {
	CheckLoginRateLimit(ctx context.Context, username string) (bool, int, int, error)
}

// LockRepository hands out per-user checkout locks. Acquire returns an owner
// token; Release deletes the key only while that token still owns it.
type LockRepository interface {
	AcquireCheckoutLock(ctx context.Context, userID uuid.UUID) (string, bool, error)
	ReleaseCheckoutLock(ctx context.Context, userID uuid.UUID, token string) error
}

type redisRepository struct {
	client *redis.Client
	cfg    *config.Config
}

func NewRedisClient(ctx context.Context, cfg *config.Config) (*redis.Client, error) {

	opt, err := redis.ParseURL(cfg.RedisConnect.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	slog.Info("Connecting to Redis", slog.String("addr", opt.Addr), slog.Int("db", opt.DB))

	client := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	slog.Info("Connected to Redis")
	return client, nil
}

func NewRateLimitRepo(client *redis.Client, cfg *config.Config) RateLimitRepository {
	return &redisRepository{client: client, cfg: cfg}
}

func NewLockRepo(client *redis.Client, cfg *config.Config) LockRepository {
	return &redisRepository{client: client, cfg: cfg}
}

// Returns isAllowed, attempts left, seconds to wait, error
func (r *redisRepository) CheckLoginRateLimit(ctx context.Context, username string) (bool, int, int, error) {

	logger := middleware.LoggerFromContext(ctx)

	key := fmt.Sprintf("login_attempts:%s", username)

	now := time.Now()
	window := r.cfg.RateConfig.WindowSize

	// only attempts after windowStart are counted
	windowStart := now.Add(-window).UnixNano()

	pipe := r.client.Pipeline()

	pipe.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", windowStart))
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(now.UnixNano()), Member: now.UnixNano()})
	count := pipe.ZCard(ctx, key)
	pipe.Expire(ctx, key, window)

	if _, err := pipe.Exec(ctx); err != nil {
		logger.Error("Redis pipeline execution failed for rate limit", slog.String("key", key), slog.Any("error", err))
		return false, 0, 0, fmt.Errorf("redis pipeline error for rate limit check: %w", err)
	}

	attempts := count.Val()
	remaining := r.cfg.RateConfig.MaxAttempts - attempts

	if attempts > r.cfg.RateConfig.MaxAttempts {

		scores, err := r.client.ZRangeArgsWithScores(ctx, redis.ZRangeArgs{Key: key, Start: 0, Stop: 0}).Result()
		if err != nil || len(scores) == 0 {
			logger.Error("Failed to get oldest attempt time for rate limit", slog.String("key", key), slog.Any("error", err))
			return false, 0, int(window.Seconds()), fmt.Errorf("failed to get oldest attempt time: %w", err)
		}

		oldest := time.Unix(0, int64(scores[0].Score))
		retryAfter := max(int(time.Until(oldest.Add(window)).Seconds()), 1)

		logger.Warn("Rate limit exceeded", slog.String("username", username), slog.Int64("attempts", attempts))
		return false, 0, retryAfter, nil
	}

	logger.Debug("Rate limit check passed", slog.String("username", username), slog.Int64("remaining", remaining))
	return true, int(remaining), 0, nil
}

func checkoutLockKey(userID uuid.UUID) string {
	return "checkout_lock:" + userID.String()
}

func (r *redisRepository) AcquireCheckoutLock(ctx context.Context, userID uuid.UUID) (string, bool, error) {

	token := uuid.NewString()

	ok, err := r.client.SetNX(ctx, checkoutLockKey(userID), token, r.cfg.Checkout.LockTTL).Result()
	if err != nil {
		return "", false, fmt.Errorf("setnx checkout lock: %w", err)
	}

	if !ok {
		return "", false, nil
	}

	return token, true, nil
}

// compare-and-delete so a lock that expired and was re-taken is not released
var releaseScript = `
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`

func (r *redisRepository) ReleaseCheckoutLock(ctx context.Context, userID uuid.UUID, token string) error {

	if token == "" {
		return nil
	}

	if err := r.client.Eval(ctx, releaseScript, []string{checkoutLockKey(userID)}, token).Err(); err != nil {
		return fmt.Errorf("release checkout lock: %w", err)
	}

	return nil
}
