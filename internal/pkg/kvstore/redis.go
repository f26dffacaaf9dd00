package kvstore

import (
	"context"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// Redis keeps every item of a resource in one hash named "{store}:{resource}".
type Redis struct {
	client  *redis.Client
	hashKey string
}

var _ Resource = (*Redis)(nil)

func NewRedis(client *redis.Client, storeID, resource string) (*Redis, error) {
	if storeID == "" {
		return nil, errors.New("kvstore: redis: store id is missing")
	}
	if resource == "" {
		return nil, errors.New("kvstore: redis: resource name is missing")
	}
	return &Redis{
		client:  client,
		hashKey: storeID + ":" + resource,
	}, nil
}

func (r *Redis) Backend() string { return BackendRedis }

func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *Redis) List(ctx context.Context) ([][]byte, error) {
	values, err := r.client.HVals(ctx, r.hashKey).Result()
	if err != nil {
		return nil, errors.Wrap(err, "kvstore: redis: list")
	}
	out := make([][]byte, 0, len(values))
	for _, v := range values {
		out = append(out, []byte(v))
	}
	return out, nil
}

func (r *Redis) Get(ctx context.Context, id string) ([]byte, error) {
	if id == "" {
		return nil, ErrIDMissing
	}
	b, err := r.client.HGet(ctx, r.hashKey, id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, errors.Wrap(err, "kvstore: redis: get")
	}
	return b, nil
}

func (r *Redis) Set(ctx context.Context, id string, value []byte) error {
	if id == "" {
		return ErrIDMissing
	}
	return errors.Wrap(r.client.HSet(ctx, r.hashKey, id, value).Err(), "kvstore: redis: set")
}

func (r *Redis) Remove(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDMissing
	}
	return errors.Wrap(r.client.HDel(ctx, r.hashKey, id).Err(), "kvstore: redis: remove")
}

func (r *Redis) RemoveAll(ctx context.Context) error {
	return errors.Wrap(r.client.Del(ctx, r.hashKey).Err(), "kvstore: redis: remove all")
}
