package store

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/greenlegacy/greenlegacy/internal/adminauth/entity"
	"github.com/greenlegacy/greenlegacy/internal/pkg/goerror"
	"github.com/greenlegacy/greenlegacy/internal/pkg/instrument"
)

const redisKeyPrefix = "adminotp:"

// RedisClient is the subset of redis.Client commands the store issues.
type RedisClient interface {
	HGetAll(ctx context.Context, key string) *redis.MapStringStringCmd
	TxPipeline() redis.Pipeliner
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Exists(ctx context.Context, keys ...string) *redis.IntCmd
	HIncrBy(ctx context.Context, key, field string, incr int64) *redis.IntCmd
}

// Redis is a Store backed by a Redis hash per email.
//
// Keys carry a TTL so abandoned challenges are garbage collected. The TTL
// should exceed the code lifetime; exact expiry is still enforced by the
// verification flow using the stored issue time.
type Redis struct {
	client RedisClient
	keyTTL time.Duration
	ins    instrument.Instrumentation
}

// NewRedis constructs a Redis-backed store.
func NewRedis(client RedisClient, keyTTL time.Duration, ins instrument.Instrumentation) *Redis {
	return &Redis{
		client: client,
		keyTTL: keyTTL,
		ins:    ins,
	}
}

func (r *Redis) Get(ctx context.Context, email string) (ch *entity.Challenge, err error) {
	ctx, span := startSpan(ctx, r.ins, "RedisGet")
	defer func() { endSpan(span, err) }()

	fields, err := r.client.HGetAll(ctx, redisKeyPrefix+email).Result()
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, goerror.ErrNotFound
	}

	issuedAt, err := strconv.ParseInt(fields["issued_at"], 10, 64)
	if err != nil {
		return nil, err
	}
	attempts, err := strconv.Atoi(fields["attempts"])
	if err != nil {
		return nil, err
	}

	return &entity.Challenge{
		Email:    email,
		Code:     fields["code"],
		IssuedAt: time.Unix(issuedAt, 0),
		Attempts: attempts,
	}, nil
}

func (r *Redis) Put(ctx context.Context, ch entity.Challenge) (err error) {
	ctx, span := startSpan(ctx, r.ins, "RedisPut")
	defer func() { endSpan(span, err) }()

	key := redisKeyPrefix + ch.Email

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, key)
	pipe.HSet(ctx, key,
		"code", ch.Code,
		"issued_at", strconv.FormatInt(ch.IssuedAt.Unix(), 10),
		"attempts", strconv.Itoa(ch.Attempts),
	)
	pipe.Expire(ctx, key, r.keyTTL)

	_, err = pipe.Exec(ctx)
	return err
}

func (r *Redis) Delete(ctx context.Context, email string) (err error) {
	ctx, span := startSpan(ctx, r.ins, "RedisDelete")
	defer func() { endSpan(span, err) }()

	return r.client.Del(ctx, redisKeyPrefix+email).Err()
}

func (r *Redis) AddAttempt(ctx context.Context, email string) (err error) {
	ctx, span := startSpan(ctx, r.ins, "RedisAddAttempt")
	defer func() { endSpan(span, err) }()

	key := redisKeyPrefix + email

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return err
	}
	if exists == 0 {
		return goerror.ErrNotFound
	}

	return r.client.HIncrBy(ctx, key, "attempts", 1).Err()
}
