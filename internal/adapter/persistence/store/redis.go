package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"construction_console/internal/config"
	"construction_console/internal/usecase/interfaces"
)

const maxTxRetries = 10

// RedisStore keeps every parent path in a hash and announces changes on a per-parent channel.
//
// Layout:
//   - hash   <prefix>:<parent>         field <key> = JSON value
//   - pubsub <prefix>:events:<parent>  payload = ChildEvent JSON
type RedisStore struct {
	client *redis.Client
	prefix string
	log    *logrus.Entry
}

var _ interfaces.IRemoteStore = (*RedisStore)(nil)

func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	if prefix == "" {
		prefix = "console"
	}
	return &RedisStore{client: client, prefix: prefix, log: config.Module("store.redis")}
}

func (s *RedisStore) hashKey(parent string) string {
	return s.prefix + ":" + parent
}

func (s *RedisStore) channel(parent string) string {
	return s.prefix + ":events:" + parent
}

func (s *RedisStore) Get(ctx context.Context, path string) (json.RawMessage, error) {
	parent, key, err := Split(path)
	if err != nil {
		return nil, err
	}
	v, err := s.client.HGet(ctx, s.hashKey(parent), key).Bytes()
	if err == nil {
		return v, nil
	}
	if !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("store/redis: get %s: %w", path, err)
	}
	children, err := s.children(ctx, Clean(path))
	if err != nil {
		return nil, err
	}
	return assemble(children)
}

func (s *RedisStore) children(ctx context.Context, parent string) (map[string]json.RawMessage, error) {
	all, err := s.client.HGetAll(ctx, s.hashKey(parent)).Result()
	if err != nil {
		return nil, fmt.Errorf("store/redis: load %s: %w", parent, err)
	}
	out := make(map[string]json.RawMessage, len(all))
	for k, v := range all {
		out[k] = json.RawMessage(v)
	}
	return out, nil
}

func (s *RedisStore) Write(ctx context.Context, path string, value json.RawMessage) error {
	if isNull(value) {
		return s.Delete(ctx, path)
	}
	if err := validate(value); err != nil {
		return err
	}
	return s.mutate(ctx, path, func(json.RawMessage) (json.RawMessage, error) {
		return value, nil
	})
}

func (s *RedisStore) Patch(ctx context.Context, path string, fields json.RawMessage) error {
	if err := validate(fields); err != nil {
		return err
	}
	return s.mutate(ctx, path, func(current json.RawMessage) (json.RawMessage, error) {
		return mergeFields(current, fields)
	})
}

// mutate runs an optimistic WATCH/MULTI transaction on the parent hash and publishes the
// resulting child event in the same transaction.
func (s *RedisStore) mutate(ctx context.Context, path string, next func(current json.RawMessage) (json.RawMessage, error)) error {
	parent, key, err := Split(path)
	if err != nil {
		return err
	}
	hash := s.hashKey(parent)

	txf := func(tx *redis.Tx) error {
		current, err := tx.HGet(ctx, hash, key).Bytes()
		existed := err == nil
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		value, err := next(current)
		if err != nil {
			return err
		}
		payload, err := json.Marshal(change{parent: parent, key: key, value: value, existed: existed}.childEvent())
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, hash, key, []byte(value))
			pipe.Publish(ctx, s.channel(parent), payload)
			return nil
		})
		return err
	}
	return s.retry(ctx, path, txf, hash)
}

// Delete removes the leaf at path and, when path is itself a parent, all of its children.
func (s *RedisStore) Delete(ctx context.Context, path string) error {
	parent, key, err := Split(path)
	if err != nil {
		return err
	}
	full := Clean(path)
	leafHash, childHash := s.hashKey(parent), s.hashKey(full)

	txf := func(tx *redis.Tx) error {
		old, err := tx.HGet(ctx, leafHash, key).Bytes()
		leafExists := err == nil
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		kids, err := tx.HGetAll(ctx, childHash).Result()
		if err != nil {
			return err
		}
		if !leafExists && len(kids) == 0 {
			return nil
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			for _, k := range sortedKeys(kids) {
				payload, err := json.Marshal(interfaces.ChildEvent{Type: interfaces.ChildRemoved, Key: k, Value: json.RawMessage(kids[k])})
				if err != nil {
					return err
				}
				pipe.Publish(ctx, s.channel(full), payload)
			}
			if len(kids) > 0 {
				pipe.Del(ctx, childHash)
			}
			if leafExists {
				payload, err := json.Marshal(interfaces.ChildEvent{Type: interfaces.ChildRemoved, Key: key, Value: old})
				if err != nil {
					return err
				}
				pipe.HDel(ctx, leafHash, key)
				pipe.Publish(ctx, s.channel(parent), payload)
			}
			return nil
		})
		return err
	}
	return s.retry(ctx, path, txf, leafHash, childHash)
}

func (s *RedisStore) retry(ctx context.Context, path string, txf func(*redis.Tx) error, keys ...string) error {
	for i := 0; i < maxTxRetries; i++ {
		err := s.client.Watch(ctx, txf, keys...)
		if err == nil {
			return nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return fmt.Errorf("store/redis: write %s: %w", path, err)
	}
	return fmt.Errorf("store/redis: write %s: %w", path, redis.TxFailedErr)
}

func (s *RedisStore) Watch(path string, onValue func(json.RawMessage), onError func(error)) func() {
	parent, key, err := Split(path)
	sub := &subscription{onValue: onValue, onError: onError}
	if err != nil {
		sub.fail(err)
		return func() {}
	}

	initial := func(ctx context.Context) error {
		v, err := s.client.HGet(ctx, s.hashKey(parent), key).Bytes()
		if errors.Is(err, redis.Nil) {
			sub.value(nil)
			return nil
		}
		if err != nil {
			return fmt.Errorf("store/redis: load %s: %w", path, err)
		}
		sub.value(v)
		return nil
	}
	live := func(ev interfaces.ChildEvent) {
		if ev.Key != key {
			return
		}
		if ev.Type == interfaces.ChildRemoved {
			sub.value(nil)
			return
		}
		sub.value(ev.Value)
	}
	return s.subscribe(parent, sub, initial, live)
}

func (s *RedisStore) WatchChildren(path string, onEvent func(interfaces.ChildEvent), onError func(error)) func() {
	parent := Clean(path)
	sub := &subscription{onEvent: onEvent, onError: onError}

	initial := func(ctx context.Context) error {
		kids, err := s.children(ctx, parent)
		if err != nil {
			return err
		}
		for _, k := range sortedKeys(kids) {
			sub.event(interfaces.ChildEvent{Type: interfaces.ChildAdded, Key: k, Value: kids[k]})
		}
		return nil
	}
	return s.subscribe(parent, sub, initial, sub.event)
}

// subscribe listens on the parent channel before loading the current state, so no change is
// missed. A change racing the initial load may be delivered twice; consumers apply deltas
// idempotently.
func (s *RedisStore) subscribe(parent string, sub *subscription, initial func(context.Context) error, live func(interfaces.ChildEvent)) func() {
	ctx, cancel := context.WithCancel(context.Background())
	ps := s.client.Subscribe(ctx, s.channel(parent))

	go func() {
		if _, err := ps.Receive(ctx); err != nil {
			if ctx.Err() == nil {
				sub.fail(fmt.Errorf("store/redis: subscribe %s: %w", parent, err))
			}
			return
		}
		if err := initial(ctx); err != nil && ctx.Err() == nil {
			sub.fail(err)
		}

		ch := ps.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				var ev interfaces.ChildEvent
				if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
					s.log.WithField("channel", msg.Channel).WithError(err).Warn("dropping malformed change event")
					sub.fail(fmt.Errorf("store/redis: decode event: %w", err))
					continue
				}
				live(ev)
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			sub.closed.Store(true)
			cancel()
			_ = ps.Close()
		})
	}
}
