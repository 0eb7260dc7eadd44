package cache

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"workdeck/internal/core/ports"
)

const defaultProgressEntries = 1024

// ProgressCache is an in-process LRU of derived project progress values.
type ProgressCache struct {
	entries *lru.Cache[uint64, int]
}

var _ ports.ProgressCache = (*ProgressCache)(nil)

func NewProgressCache(size int) (*ProgressCache, error) {
	if size <= 0 {
		size = defaultProgressEntries
	}
	entries, err := lru.New[uint64, int](size)
	if err != nil {
		return nil, err
	}
	return &ProgressCache{entries: entries}, nil
}

func (c *ProgressCache) Get(projectID uint64) (int, bool) {
	return c.entries.Get(projectID)
}

func (c *ProgressCache) Set(projectID uint64, progress int) {
	c.entries.Add(projectID, progress)
}

func (c *ProgressCache) Invalidate(projectID uint64) {
	c.entries.Remove(projectID)
}
