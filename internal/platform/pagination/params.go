package pagination

const (
	// DefaultLimit is the page size used when the caller does not ask for one.
	DefaultLimit = 20

	// MaxLimit is the largest page size a caller may request.
	MaxLimit = 100
)
