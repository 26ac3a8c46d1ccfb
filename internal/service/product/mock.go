package product

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/janisto/catalog-lambda/internal/platform/pagination"
)

// MockStore implements Service with in-memory storage.
// Products are listed newest first, ties broken by ID.
type MockStore struct {
	mu       sync.RWMutex
	products []Product
}

// NewMockStore creates an in-memory store holding the given products.
func NewMockStore(products ...Product) *MockStore {
	m := &MockStore{}
	m.Add(products...)
	return m
}

// Add stores products, keeping the listing order.
func (m *MockStore) Add(products ...Product) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.products = append(m.products, products...)
	slices.SortStableFunc(m.products, func(a, b Product) int {
		if c := cmp.Compare(b.CreatedAt, a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}

func (m *MockStore) List(_ context.Context, limit int, cursor *string) (*Page, error) {
	c, err := decodeCursor(cursor)
	if err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	result := pagination.Paginate(m.products, c, limit, CursorType, func(p Product) string {
		return p.ID
	})

	page := &Page{Items: result.Items}
	if result.NextCursor != "" {
		page.NextCursor = &result.NextCursor
	}
	return page, nil
}

var _ Service = (*MockStore)(nil)
