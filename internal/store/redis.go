package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	redis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"hetvrp/internal/customer"
)

// Redis keeps each instance as a JSON string under instance:<id> and indexes
// ids in a sorted set scored by creation time.
type Redis struct {
	rdb *redis.Client
	log *zap.Logger
}

const indexKey = "instances"

type redisRecord struct {
	Summary
	Body json.RawMessage `json:"body"`
}

func NewRedis(ctx context.Context, url string, log *zap.Logger) (*Redis, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	r := &Redis{rdb: redis.NewClient(opt), log: log.Named("redis")}
	if err := r.rdb.Ping(ctx).Err(); err != nil {
		_ = r.rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	r.log.Info("connected", zap.String("addr", opt.Addr))
	return r, nil
}

func (r *Redis) key(id string) string { return "instance:" + id }

func (r *Redis) SaveInstance(ctx context.Context, name string, cs *customer.Set) (string, error) {
	body, err := encodeSet(cs)
	if err != nil {
		return "", err
	}
	rec := redisRecord{
		Summary: Summary{ID: uuid.New().String(), Name: name, CreatedAt: time.Now().UTC(), Size: cs.Size()},
		Body:    body,
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return "", err
	}
	_, err = r.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, r.key(rec.ID), data, 0)
		pipe.ZAdd(ctx, indexKey, redis.Z{Score: float64(rec.CreatedAt.UnixNano()), Member: rec.ID})
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("save instance: %w", err)
	}
	r.log.Debug("saved instance", zap.String("id", rec.ID), zap.Int("size", rec.Size))
	return rec.ID, nil
}

func (r *Redis) record(ctx context.Context, id string) (redisRecord, error) {
	var rec redisRecord
	data, err := r.rdb.Get(ctx, r.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return rec, ErrNotFound
	}
	if err != nil {
		return rec, err
	}
	err = json.Unmarshal(data, &rec)
	return rec, err
}

func (r *Redis) LoadInstance(ctx context.Context, id string) (Instance, error) {
	rec, err := r.record(ctx, id)
	if err != nil {
		return Instance{}, fmt.Errorf("load instance %s: %w", id, err)
	}
	cs, err := decodeSet(rec.Body)
	if err != nil {
		return Instance{}, err
	}
	return Instance{Summary: rec.Summary, Customers: cs}, nil
}

func (r *Redis) ListInstances(ctx context.Context) ([]Summary, error) {
	ids, err := r.rdb.ZRange(ctx, indexKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("list instances: %w", err)
	}
	out := make([]Summary, 0, len(ids))
	for _, id := range ids {
		rec, err := r.record(ctx, id)
		if errors.Is(err, ErrNotFound) {
			r.log.Warn("index entry without instance", zap.String("id", id))
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("list instances: %w", err)
		}
		out = append(out, rec.Summary)
	}
	return out, nil
}

func (r *Redis) DeleteInstance(ctx context.Context, id string) error {
	var del *redis.IntCmd
	_, err := r.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		del = pipe.Del(ctx, r.key(id))
		pipe.ZRem(ctx, indexKey, id)
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete instance %s: %w", id, err)
	}
	if del.Val() == 0 {
		return fmt.Errorf("delete instance %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *Redis) Close() error { return r.rdb.Close() }
