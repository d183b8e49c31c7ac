package resource_loader

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"
)

// CachedLoader caches loaded resources in a size-bounded LRU. A stylesheet
// shared by many components is fetched once per cache lifetime.
type CachedLoader struct {
	inner ResourceLoader
	cache *lru.Cache[string, string]
}

// NewCachedLoader wraps inner with an LRU cache of the given size
func NewCachedLoader(inner ResourceLoader, size int) (*CachedLoader, error) {
	cache, err := lru.New[string, string](size)
	if err != nil {
		return nil, err
	}
	return &CachedLoader{
		inner: inner,
		cache: cache,
	}, nil
}

// Load returns the cached content for url, fetching it on a miss.
// Failed loads are not cached.
func (l *CachedLoader) Load(ctx context.Context, url string) (string, error) {
	if content, ok := l.cache.Get(url); ok {
		return content, nil
	}
	content, err := l.inner.Load(ctx, url)
	if err != nil {
		return "", err
	}
	l.cache.Add(url, content)
	return content, nil
}
