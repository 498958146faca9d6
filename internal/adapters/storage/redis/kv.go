package redis

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"dog-health-tracker/internal/ports/kv"
)

// Reintentos de Update cuando otra réplica modifica la clave entre WATCH y EXEC.
const maxUpdateRetries = 100

// KV usa Redis como almacén local compartido (varias réplicas del API).
type KV struct {
	client *goredis.Client
}

var _ kv.Store = (*KV)(nil)

// Open parsea una URL redis:// y verifica la conexión.
func Open(ctx context.Context, url string) (*KV, error) {
	opts, err := goredis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("redis: parse url: %w", err)
	}
	client := goredis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return &KV{client: client}, nil
}

// New envuelve un cliente ya creado.
func New(client *goredis.Client) *KV { return &KV{client: client} }

func (s *KV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	v, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return v, true, nil
}

func (s *KV) Set(ctx context.Context, key string, value []byte) error {
	return s.client.Set(ctx, key, value, 0).Err()
}

// Update usa WATCH/MULTI: si la clave cambia antes del EXEC se vuelve a leer y
// se reaplica fn.
func (s *KV) Update(ctx context.Context, key string, fn kv.UpdateFunc) error {
	txf := func(tx *goredis.Tx) error {
		cur, err := tx.Get(ctx, key).Bytes()
		ok := true
		if errors.Is(err, goredis.Nil) {
			cur, ok, err = nil, false, nil
		}
		if err != nil {
			return err
		}
		next, err := fn(cur, ok)
		if err != nil || next == nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.Set(ctx, key, next, 0)
			return nil
		})
		return err
	}

	for i := 0; i < maxUpdateRetries; i++ {
		err := s.client.Watch(ctx, txf, key)
		if errors.Is(err, goredis.TxFailedErr) {
			continue
		}
		return err
	}
	return fmt.Errorf("redis: update %s: too many concurrent writers", key)
}

func (s *KV) Close() error { return s.client.Close() }
