package catalog

import (
	"context"
	"errors"
	"fmt"
)

// ErrNoSource is returned when neither a path nor an object key is set.
var ErrNoSource = errors.New("no catalog source configured")

// ObjectFetcher reads a raw document from object storage.
type ObjectFetcher interface {
	FetchObject(ctx context.Context, key string) ([]byte, error)
}

// Source locates the catalog document. A local Path wins over an object Key.
type Source struct {
	Path    string
	Key     string
	Objects ObjectFetcher
}

func (s Source) String() string {
	if s.Path != "" {
		return s.Path
	}
	return "object:" + s.Key
}

// Load reads and validates the catalog from the source.
func (s Source) Load(ctx context.Context) (*Store, error) {
	if s.Path != "" {
		return LoadFile(s.Path)
	}
	if s.Key == "" || s.Objects == nil {
		return nil, ErrNoSource
	}

	raw, err := s.Objects.FetchObject(ctx, s.Key)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog: %w", err)
	}
	return Parse(raw, FormatFromPath(s.Key))
}

// Reload loads a fresh snapshot from src and installs it. On any error the
// current snapshot stays in place.
func (h *Holder) Reload(ctx context.Context, src Source) (Counts, error) {
	next, err := src.Load(ctx)
	if err != nil {
		return Counts{}, err
	}
	h.Swap(next)
	return next.Counts(), nil
}
