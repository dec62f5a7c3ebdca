package repository

import (
	"context"
	"sort"
	"sync"

	domainRepo "github.com/swapnilsborase/blooddonor-service/internal/domain/repository"
)

// memoryKVStore keeps the namespace in a map. Used by tests and as a
// substrate-free fallback; semantics match the postgres store.
type memoryKVStore struct {
	mu      sync.RWMutex
	entries map[string]string
}

func NewMemoryKVStore() domainRepo.KVStore {
	return &memoryKVStore{entries: make(map[string]string)}
}

func (s *memoryKVStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = value
	return nil
}

func (s *memoryKVStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.entries[key]
	return value, ok, nil
}

func (s *memoryKVStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}

func (s *memoryKVStore) List(_ context.Context) ([]domainRepo.KVPair, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	pairs := make([]domainRepo.KVPair, 0, len(s.entries))
	for k, v := range s.entries {
		pairs = append(pairs, domainRepo.KVPair{Key: k, Value: v})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Key < pairs[j].Key })
	return pairs, nil
}
