package repo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Voxform-core-poc-v1/server/internal/assistant/model"
	errx "github.com/Voxform-core-poc-v1/server/internal/core/error"
	logx "github.com/Voxform-core-poc-v1/server/pkg/logger"
	"github.com/redis/go-redis/v9"
)

// RedisSessionRepository checkpoints session state snapshots in Redis with a
// sliding TTL, so an interrupted voice session can resume where it left off.
type RedisSessionRepository struct {
	rdb redis.Cmdable
	ttl time.Duration
}

func NewRedisSessionRepository(rdb redis.Cmdable, ttl time.Duration) *RedisSessionRepository {
	return &RedisSessionRepository{rdb: rdb, ttl: ttl}
}

func (r *RedisSessionRepository) stateKey(sessionID string) string {
	return fmt.Sprintf("assistant:%s:state", sessionID)
}

func (r *RedisSessionRepository) SaveState(ctx context.Context, sessionID string, state any) error {
	b, err := json.Marshal(state)
	if err != nil {
		logx.Error().Err(err).Str("sessionID", sessionID).Msg("failed to marshal session state")
		return fmt.Errorf("marshal session state: %w", err)
	}

	key := r.stateKey(sessionID)
	if err := r.rdb.Set(ctx, key, b, r.ttl).Err(); err != nil {
		logx.Error().Err(err).Str("key", key).Msg("failed to save session state to redis")
		return errx.WrapRedis(err)
	}
	return nil
}

func (r *RedisSessionRepository) LoadState(ctx context.Context, sessionID string, out any) (bool, error) {
	key := r.stateKey(sessionID)

	data, err := r.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		logx.Error().Err(err).Str("key", key).Msg("failed to load session state from redis")
		return false, errx.WrapRedis(err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		logx.Error().Err(err).Str("sessionID", sessionID).Msg("failed to unmarshal session state")
		return false, fmt.Errorf("unmarshal session state: %w", err)
	}

	// touch the TTL so an active conversation never expires mid-turn
	if r.ttl > 0 {
		if ok, err := r.rdb.Expire(ctx, key, r.ttl).Result(); err != nil {
			logx.Warn().Err(err).Str("key", key).Msg("failed to refresh session TTL")
		} else if !ok {
			logx.Warn().Str("key", key).Dur("ttl", r.ttl).Msg("session key vanished while refreshing TTL")
		}
	}

	return true, nil
}

func (r *RedisSessionRepository) ClearState(ctx context.Context, sessionID string) error {
	key := r.stateKey(sessionID)
	if err := r.rdb.Del(ctx, key).Err(); err != nil {
		logx.Error().Err(err).Str("key", key).Msg("failed to delete session state from redis")
		return errx.WrapRedis(err)
	}
	return nil
}

var _ model.SessionRepository = (*RedisSessionRepository)(nil)
