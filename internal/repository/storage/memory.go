package storage

import (
	"context"
	"sync"
	"time"

	"github.com/rocketscienceinc/hangman/internal/apperror"
)

type memoryItem struct {
	value     []byte
	expiresAt time.Time
}

// MemoryStorage keeps values in process memory. Entries expire lazily on read.
type MemoryStorage struct {
	mu    sync.RWMutex
	items map[string]memoryItem
	now   func() time.Time
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		items: make(map[string]memoryItem),
		now:   time.Now,
	}
}

func (that *MemoryStorage) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	item := memoryItem{value: append([]byte(nil), value...)}
	if ttl > 0 {
		item.expiresAt = that.now().Add(ttl)
	}
	that.items[key] = item

	return nil
}

func (that *MemoryStorage) Get(_ context.Context, key string) ([]byte, error) {
	that.mu.RLock()
	item, ok := that.items[key]
	that.mu.RUnlock()

	if !ok {
		return nil, apperror.ErrCacheMiss
	}

	if !item.expiresAt.IsZero() && !that.now().Before(item.expiresAt) {
		that.mu.Lock()
		if current, ok := that.items[key]; ok && current.expiresAt.Equal(item.expiresAt) {
			delete(that.items, key)
		}
		that.mu.Unlock()

		return nil, apperror.ErrCacheMiss
	}

	return append([]byte(nil), item.value...), nil
}

func (that *MemoryStorage) Del(_ context.Context, keys ...string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	for _, key := range keys {
		delete(that.items, key)
	}

	return nil
}

func (that *MemoryStorage) Close() error {
	return nil
}
