package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// jsonStore keeps one JSON document per key under a common prefix.
type jsonStore struct {
	client   *redis.Client
	prefix   string
	notFound error
}

func (that jsonStore) key(id string) string {
	return that.prefix + ":" + id
}

func (that jsonStore) put(ctx context.Context, id string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("could not marshal %s: %w", that.prefix, err)
	}

	if err = that.client.Set(ctx, that.key(id), payload, 0).Err(); err != nil {
		return fmt.Errorf("failed to set %s: %w", that.prefix, err)
	}

	return nil
}

// get decodes the document into dest and returns notFound for a missing key.
func (that jsonStore) get(ctx context.Context, id string, dest any) error {
	payload, err := that.client.Get(ctx, that.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return that.notFound
	}

	if err != nil {
		return fmt.Errorf("failed to get %s by id: %w", that.prefix, err)
	}

	if err = json.Unmarshal(payload, dest); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", that.prefix, err)
	}

	return nil
}

func (that jsonStore) del(ctx context.Context, id string) error {
	deleted, err := that.client.Del(ctx, that.key(id)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete %s by id: %w", that.prefix, err)
	}

	if deleted == 0 {
		return that.notFound
	}

	return nil
}
