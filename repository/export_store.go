package repository

import (
	"context"
	"sync"
	"time"

	"logo-banner/models"
)

type storedExport struct {
	png       []byte
	expiresAt time.Time
}

// MemoryExportStore keeps exported banners in process memory until they expire
type MemoryExportStore struct {
	mu      sync.RWMutex
	exports map[string]storedExport
	now     func() time.Time
	stop    chan struct{}
	once    sync.Once
}

// NewMemoryExportStore creates a store and starts its cleanup loop
func NewMemoryExportStore(cleanupEvery time.Duration) *MemoryExportStore {
	s := &MemoryExportStore{
		exports: make(map[string]storedExport),
		now:     time.Now,
		stop:    make(chan struct{}),
	}
	if cleanupEvery > 0 {
		go s.cleanupLoop(cleanupEvery)
	}
	return s
}

// Ensure MemoryExportStore implements ExportStoreInterface
var _ ExportStoreInterface = (*MemoryExportStore)(nil)

func (s *MemoryExportStore) Save(ctx context.Context, exportID string, png []byte, ttl time.Duration) error {
	data := make([]byte, len(png))
	copy(data, png)

	s.mu.Lock()
	s.exports[exportID] = storedExport{png: data, expiresAt: s.now().Add(ttl)}
	s.mu.Unlock()
	return nil
}

func (s *MemoryExportStore) Get(ctx context.Context, exportID string) ([]byte, error) {
	s.mu.RLock()
	stored, exists := s.exports[exportID]
	s.mu.RUnlock()

	if !exists || !s.now().Before(stored.expiresAt) {
		return nil, models.ErrExportNotFound
	}
	return stored.png, nil
}

// Purge drops expired exports and returns how many were removed
func (s *MemoryExportStore) Purge() int {
	now := s.now()
	removed := 0

	s.mu.Lock()
	defer s.mu.Unlock()
	for id, stored := range s.exports {
		if !now.Before(stored.expiresAt) {
			delete(s.exports, id)
			removed++
		}
	}
	return removed
}

func (s *MemoryExportStore) cleanupLoop(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.Purge()
		case <-s.stop:
			return
		}
	}
}

func (s *MemoryExportStore) Close() error {
	s.once.Do(func() { close(s.stop) })
	return nil
}
