package capture

import "sync"

// MemoryStore is an ItemStore that lives as long as the process
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]CaptureItem
}

// NewMemoryStore makes an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: map[string]CaptureItem{}}
}

func (s *MemoryStore) Save(item *CaptureItem) error {
	if item == nil || item.ID == "" {
		return &InvalidInputError{What: "item id"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[item.ID] = cloneItem(item)
	return nil
}

func (s *MemoryStore) Load(id string) (*CaptureItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[id]
	if !ok {
		return nil, ErrItemNotFound
	}
	out := cloneItem(&item)
	return &out, nil
}

func (s *MemoryStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return ErrItemNotFound
	}
	delete(s.items, id)
	return nil
}

func (s *MemoryStore) Close() error { return nil }

func cloneItem(item *CaptureItem) CaptureItem {
	out := *item
	out.Lore = append([]string{}, item.Lore...)
	return out
}
