package memory

import (
	"context"
	"sync"

	"dog-health-tracker/internal/ports/kv"
)

type kvStore struct {
	mu   sync.RWMutex
	byID map[string][]byte
}

// NewKV es el almacén local en proceso (dev y tests). No sobrevive reinicios.
func NewKV() kv.Store {
	return &kvStore{byID: make(map[string][]byte)}
}

func (s *kvStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.byID[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

func (s *kvStore) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := make([]byte, len(value))
	copy(v, value)
	s.byID[key] = v
	return nil
}

func (s *kvStore) Update(ctx context.Context, key string, fn kv.UpdateFunc) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var cur []byte
	v, ok := s.byID[key]
	if ok {
		cur = make([]byte, len(v))
		copy(cur, v)
	}
	next, err := fn(cur, ok)
	if err != nil || next == nil {
		return err
	}
	s.byID[key] = append([]byte(nil), next...)
	return nil
}

func (s *kvStore) Close() error { return nil }
