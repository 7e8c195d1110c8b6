package recordsRepo

import (
	"context"
	"encoding/json"

	"github.com/go-redis/redis/v8"
)

// envelope wraps a collection payload with its version for storage.
type envelope struct {
	Version int64  `json:"version"`
	Data    string `json:"data"`
}

const redisKeyPrefix = "records:"

type redisStore struct {
	client *redis.Client
}

// NewRedisStore returns a Store backed by Redis. The compare-and-swap is
// implemented with WATCH/MULTI on the collection key.
func NewRedisStore(client *redis.Client) Store {
	return &redisStore{client: client}
}

func (s *redisStore) Load(ctx context.Context, collection string) (Snapshot, error) {
	raw, err := s.client.Get(ctx, redisKeyPrefix+collection).Result()
	if err == redis.Nil {
		return Snapshot{}, nil
	}
	if err != nil {
		return Snapshot{}, err
	}
	return decodeEnvelope(raw), nil
}

func (s *redisStore) Save(ctx context.Context, collection string, data string, expected int64) error {
	key := redisKeyPrefix + collection

	txn := func(tx *redis.Tx) error {
		current := Snapshot{}
		raw, err := tx.Get(ctx, key).Result()
		if err != nil && err != redis.Nil {
			return err
		}
		if err == nil {
			current = decodeEnvelope(raw)
		}
		if current.Version != expected {
			return ErrConflict
		}

		payload, err := json.Marshal(envelope{Version: expected + 1, Data: data})
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, payload, 0)
			return nil
		})
		return err
	}

	err := s.client.Watch(ctx, txn, key)
	if err == redis.TxFailedErr {
		// The watched key changed between read and write.
		return ErrConflict
	}
	return err
}

func (s *redisStore) Delete(ctx context.Context, collection string) error {
	return s.client.Del(ctx, redisKeyPrefix+collection).Err()
}

// decodeEnvelope tolerates malformed payloads: anything unreadable is treated
// as an empty collection at version zero, so the next save rebuilds it.
func decodeEnvelope(raw string) Snapshot {
	var env envelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		return Snapshot{}
	}
	return Snapshot{Data: env.Data, Version: env.Version}
}
