package pagination

import "slices"

// Result is a single page of items.
type Result[T any] struct {
	Items      []T
	NextCursor string
	Total      int
}

// Paginate returns up to limit items following the position in cursor.
// Items are assumed to be in a stable order. A cursor whose value is not
// found restarts from the first item.
func Paginate[T any](items []T, cursor Cursor, limit int, cursorType string, keyFn func(T) string) Result[T] {
	if limit <= 0 {
		limit = DefaultLimit
	}

	start := 0
	if cursor.Value != "" {
		if idx := slices.IndexFunc(items, func(item T) bool { return keyFn(item) == cursor.Value }); idx >= 0 {
			start = idx + 1
		}
	}

	end := min(start+limit, len(items))
	page := make([]T, 0, end-start)
	page = append(page, items[start:end]...)

	result := Result[T]{Items: page, Total: len(items)}
	if end < len(items) && len(page) > 0 {
		result.NextCursor = Cursor{Type: cursorType, Value: keyFn(page[len(page)-1])}.Encode()
	}
	return result
}
