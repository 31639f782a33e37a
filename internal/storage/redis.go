package storage

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	go_json "github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"github.com/garrettladley/lumi/internal/color"
)

var _ Backend = (*RedisBackend)(nil)

const (
	rateLimitKeyPrefix = "lumisim:ratelimit:"
	facesKey           = "lumisim:faces"
	patternKey         = "lumisim:pattern"
)

type RedisConfig struct {
	Client *redis.Client
}

type RedisBackend struct {
	client     *redis.Client
	rateLimit  int
	rateWindow time.Duration
}

func NewRedisBackend(cfg RedisConfig, rateLimit int) (*RedisBackend, error) {
	if cfg.Client == nil {
		return nil, errors.New("redis client is required")
	}
	return &RedisBackend{
		client:     cfg.Client,
		rateLimit:  rateLimit,
		rateWindow: time.Second,
	}, nil
}

func (r *RedisBackend) Allow(ctx context.Context, key string) (RateLimitResult, error) {
	params := rateLimitParams{
		window: r.rateWindow,
		limit:  r.rateLimit,
		ttl:    r.rateWindow + time.Second,
	}

	return runRateLimitScript(ctx, r.client, rateLimitKeyPrefix+key, params)
}

func (r *RedisBackend) State(ctx context.Context) (DeviceState, error) {
	var (
		state   DeviceState
		pipe    = r.client.Pipeline()
		faces   = pipe.HGetAll(ctx, facesKey)
		pattern = pipe.Get(ctx, patternKey)
	)
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return DeviceState{}, fmt.Errorf("failed to read device state: %w", err)
	}

	for field, hex := range faces.Val() {
		i, err := strconv.Atoi(field)
		if err != nil || checkFace(i) != nil {
			continue
		}
		c, err := color.ParseHex(hex)
		if err != nil {
			return DeviceState{}, fmt.Errorf("face %d: %w", i, err)
		}
		state.Faces[i] = c
	}

	data, err := pattern.Bytes()
	switch {
	case errors.Is(err, redis.Nil):
	case err != nil:
		return DeviceState{}, fmt.Errorf("failed to read pattern: %w", err)
	default:
		var p Pattern
		if err := go_json.Unmarshal(data, &p); err != nil {
			return DeviceState{}, fmt.Errorf("failed to unmarshal pattern: %w", err)
		}
		state.Pattern = &p
	}

	return state, nil
}

func (r *RedisBackend) SetFace(ctx context.Context, face int, c color.RGB) error {
	if err := checkFace(face); err != nil {
		return err
	}
	if err := r.client.HSet(ctx, facesKey, strconv.Itoa(face), c.Hex()).Err(); err != nil {
		return fmt.Errorf("failed to set face: %w", err)
	}
	return nil
}

func (r *RedisBackend) Fill(ctx context.Context, c color.RGB) error {
	values := make([]any, 0, 2*Faces)
	for i := range Faces {
		values = append(values, strconv.Itoa(i), c.Hex())
	}
	if err := r.client.HSet(ctx, facesKey, values...).Err(); err != nil {
		return fmt.Errorf("failed to fill faces: %w", err)
	}
	return nil
}

func (r *RedisBackend) SetPattern(ctx context.Context, p *Pattern) error {
	if p == nil {
		if err := r.client.Del(ctx, patternKey).Err(); err != nil {
			return fmt.Errorf("failed to clear pattern: %w", err)
		}
		return nil
	}

	data, err := go_json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal pattern: %w", err)
	}
	if err := r.client.Set(ctx, patternKey, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to set pattern: %w", err)
	}
	return nil
}

func (r *RedisBackend) Close() error {
	return r.client.Close()
}

func (r *RedisBackend) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
