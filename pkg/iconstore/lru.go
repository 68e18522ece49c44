package iconstore

import (
	"container/list"
	"context"
	"fmt"
	"sync"
)

// lruItem is the internal structure stored in the linked list.
type lruItem struct {
	url  string
	data []byte
}

// LRUStore is an opt-in, size-bounded in-memory front over another Store.
// Reads that miss the in-memory layer fall through to the inner store and
// populate the front on the way back; writes go to both layers. The default
// pipeline does not use it; it exists for embedders that want to shield a
// slow backing store (Redis, GCS) from hot icons.
type LRUStore struct {
	maxEntries int
	inner      Store

	mu    sync.Mutex
	ll    *list.List               // Tracks recency order.
	cache map[string]*list.Element // Fast URL lookup.
}

// NewLRUStore wraps inner with an in-memory LRU holding at most maxEntries
// icons. maxEntries must be > 0 and inner must not be nil.
func NewLRUStore(maxEntries int, inner Store) (*LRUStore, error) {
	if maxEntries <= 0 {
		return nil, fmt.Errorf("maxEntries must be greater than 0")
	}
	if inner == nil {
		return nil, fmt.Errorf("inner store cannot be nil")
	}
	return &LRUStore{
		maxEntries: maxEntries,
		inner:      inner,
		ll:         list.New(),
		cache:      make(map[string]*list.Element),
	}, nil
}

// Fetch checks the in-memory layer first, falling through to the inner store
// on a miss. A fall-through hit is written back to the front.
func (s *LRUStore) Fetch(ctx context.Context, url string) ([]byte, error) {
	s.mu.Lock()
	if elem, ok := s.cache[url]; ok {
		s.ll.MoveToFront(elem)
		data := elem.Value.(*lruItem).data
		s.mu.Unlock()
		return data, nil
	}
	s.mu.Unlock()

	data, err := s.inner.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	s.add(url, data)
	return data, nil
}

// Write stores the entry in the inner store first, then in the front. The
// inner store is authoritative; a front-only entry must never outlive a
// failed durable write.
func (s *LRUStore) Write(ctx context.Context, url string, data []byte) error {
	if err := s.inner.Write(ctx, url, data); err != nil {
		return err
	}
	s.add(url, data)
	return nil
}

// Close closes the inner store.
func (s *LRUStore) Close() error {
	return s.inner.Close()
}

func (s *LRUStore) add(url string, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if elem, ok := s.cache[url]; ok {
		s.ll.MoveToFront(elem)
		elem.Value.(*lruItem).data = data
		return
	}

	elem := s.ll.PushFront(&lruItem{url: url, data: data})
	s.cache[url] = elem

	if s.ll.Len() > s.maxEntries {
		s.evict()
	}
}

// evict removes the least recently used entry. Callers must hold the mutex.
func (s *LRUStore) evict() {
	back := s.ll.Back()
	if back != nil {
		item := s.ll.Remove(back).(*lruItem)
		delete(s.cache, item.url)
	}
}
