// Package loader fetches the works dataset once, normalizes it and keeps the
// result in an injectable in-memory cache.
package loader

import (
	"context"
	"errors"
	"fmt"

	"worksvis/importer"
	"worksvis/work"
)

type Loader struct {
	source Source
	cache  *Cache
	mapper importer.Mapper
}

type Options struct {
	Cache  *Cache
	Mapper importer.Mapper
}

func New(source Source, options Options) (*Loader, error) {
	if source == nil {
		return nil, errors.New("source is required")
	}
	cache := options.Cache
	if cache == nil {
		cache = NewCache()
	}
	mapper := options.Mapper
	if mapper == nil {
		mapper = importer.NewWorksMapper(importer.DefaultColumns(), nil)
	}
	return &Loader{source: source, cache: cache, mapper: mapper}, nil
}

func (l *Loader) Cache() *Cache {
	return l.cache
}

// LoadWorks returns the cached rows, loading them on the first call. A failed
// load leaves the cache empty so the next call fetches again. Overlapping
// calls are not deduplicated; each one fetches and the last to finish wins.
func (l *Loader) LoadWorks(ctx context.Context) ([]work.Row, error) {
	if rows, ok := l.cache.Get(); ok {
		return rows, nil
	}
	result, err := l.fetch(ctx)
	if err != nil {
		return nil, err
	}
	return result.Rows, nil
}

// LoadWorksWithResult is LoadWorks that also reports the row counts of the
// normalization pass. A cache hit returns nil for the result.
func (l *Loader) LoadWorksWithResult(ctx context.Context) ([]work.Row, *importer.Result, error) {
	if rows, ok := l.cache.Get(); ok {
		return rows, nil, nil
	}
	result, err := l.fetch(ctx)
	if err != nil {
		return nil, nil, err
	}
	return result.Rows, result, nil
}

func (l *Loader) fetch(ctx context.Context) (*importer.Result, error) {
	location := l.source.Location()
	body, err := l.source.Open(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", location, err)
	}
	defer body.Close()

	result, err := importer.RunReader(body, l.source.Format(), l.mapper)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", location, err)
	}

	l.cache.Set(result.Rows)
	return result, nil
}
