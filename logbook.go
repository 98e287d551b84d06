package main

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/redis/go-redis/v9"
)

// The logbook is persisted as one serialized collection under one fixed key,
// the server-side analogue of the dashboard's old localStorage entry. Every
// mutation is a read-modify-write of the whole collection; there is no
// schema versioning, so a reader must treat anything that is not a JSON
// array as an empty logbook.

// logbookKey is the fixed storage key holding the serialized collection.
const logbookKey = "farm-records"

// LogbookStore is the persistence contract for the crop record collection.
type LogbookStore interface {
	Load(ctx context.Context) ([]CropRecord, error)
	Save(ctx context.Context, records []CropRecord) error
}

// RedisLogbookStore keeps the collection in Redis under logbookKey, with no
// expiration.
type RedisLogbookStore struct {
	client *redis.Client
}

func NewRedisLogbookStore(client *redis.Client) *RedisLogbookStore {
	return &RedisLogbookStore{
		client: client,
	}
}

func (s *RedisLogbookStore) Load(ctx context.Context) ([]CropRecord, error) {
	data, err := s.client.Get(ctx, logbookKey).Result()
	if err == redis.Nil {
		return []CropRecord{}, nil
	}
	if err != nil {
		return nil, err
	}

	var records []CropRecord
	if err := json.Unmarshal([]byte(data), &records); err != nil {
		return nil, err
	}
	if records == nil {
		records = []CropRecord{}
	}
	return records, nil
}

func (s *RedisLogbookStore) Save(ctx context.Context, records []CropRecord) error {
	p, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, logbookKey, p, 0).Err()
}

// MemoryLogbookStore holds the collection in process memory. It is the
// fallback when no Redis URL is configured; records do not survive a
// restart, which matches a cleared browser store.
type MemoryLogbookStore struct {
	mu      sync.RWMutex
	records []CropRecord
}

func NewMemoryLogbookStore() *MemoryLogbookStore {
	return &MemoryLogbookStore{
		records: []CropRecord{},
	}
}

func (s *MemoryLogbookStore) Load(ctx context.Context) ([]CropRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	records := make([]CropRecord, len(s.records))
	copy(records, s.records)
	return records, nil
}

func (s *MemoryLogbookStore) Save(ctx context.Context, records []CropRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = make([]CropRecord, len(records))
	copy(s.records, records)
	return nil
}
