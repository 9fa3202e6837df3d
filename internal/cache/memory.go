package cache

import (
	"container/list"
	"context"
	"sync"
	"time"
)

// DefaultMaxEntries bounds a Memory cache created with a non-positive size.
const DefaultMaxEntries = 256

// Memory is an in-process LRU cache whose entries also expire after a TTL.
type Memory struct {
	mu         sync.Mutex
	entries    map[string]*list.Element
	order      *list.List
	maxEntries int
	now        func() time.Time
}

type memoryEntry struct {
	key       string
	summary   string
	expiresAt time.Time
}

// NewMemory creates a cache holding at most maxEntries summaries.
func NewMemory(maxEntries int) *Memory {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &Memory{
		entries:    make(map[string]*list.Element, maxEntries),
		order:      list.New(),
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

// Get returns the summary for key if present and not expired. A hit marks
// the entry as most recently used.
func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	elem, ok := m.entries[key]
	if !ok {
		return "", false, nil
	}
	entry := elem.Value.(*memoryEntry)
	if m.now().After(entry.expiresAt) {
		m.removeElement(elem)
		return "", false, nil
	}

	m.order.MoveToFront(elem)
	return entry.summary, true, nil
}

// Set stores summary under key for ttl. Empty summaries and non-positive
// TTLs are not stored.
func (m *Memory) Set(_ context.Context, key, summary string, ttl time.Duration) error {
	if key == "" || summary == "" || ttl <= 0 {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	expiresAt := now.Add(ttl)

	if elem, ok := m.entries[key]; ok {
		entry := elem.Value.(*memoryEntry)
		entry.summary = summary
		entry.expiresAt = expiresAt
		m.order.MoveToFront(elem)
		return nil
	}

	m.entries[key] = m.order.PushFront(&memoryEntry{
		key:       key,
		summary:   summary,
		expiresAt: expiresAt,
	})

	m.evictExpiredLocked(now)
	for len(m.entries) > m.maxEntries {
		m.removeElement(m.order.Back())
	}
	return nil
}

// Len returns the number of stored entries, expired ones included until
// they are evicted.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// Close drops every entry.
func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = make(map[string]*list.Element, m.maxEntries)
	m.order.Init()
	return nil
}

func (m *Memory) evictExpiredLocked(now time.Time) {
	for elem := m.order.Back(); elem != nil; {
		prev := elem.Prev()
		if now.After(elem.Value.(*memoryEntry).expiresAt) {
			m.removeElement(elem)
		}
		elem = prev
	}
}

func (m *Memory) removeElement(elem *list.Element) {
	delete(m.entries, elem.Value.(*memoryEntry).key)
	m.order.Remove(elem)
}
