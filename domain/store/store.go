package store

import (
	"context"
	"sync"
)

// MemoryStore keeps discovered links in process memory, in insertion order.
type MemoryStore struct {
	seenUrls map[string]struct{}
	links    []string
	rwMutex  sync.RWMutex
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		seenUrls: make(map[string]struct{}),
	}
}

// InsertIfAbsent appends link unless it is already stored, reporting whether it did.
func (s *MemoryStore) InsertIfAbsent(_ context.Context, link string) (bool, error) {
	s.rwMutex.Lock()
	defer s.rwMutex.Unlock()
	if _, ok := s.seenUrls[link]; ok {
		return false, nil
	}
	s.seenUrls[link] = struct{}{}
	s.links = append(s.links, link)
	return true, nil
}

func (s *MemoryStore) Seen(link string) bool {
	s.rwMutex.RLock()
	defer s.rwMutex.RUnlock()
	_, ok := s.seenUrls[link]
	return ok
}

func (s *MemoryStore) Links(_ context.Context) ([]string, error) {
	s.rwMutex.RLock()
	defer s.rwMutex.RUnlock()
	out := make([]string, len(s.links))
	copy(out, s.links)
	return out, nil
}

func (s *MemoryStore) Close() error {
	return nil
}
