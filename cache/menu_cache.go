package cache

import (
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"rex-dinner-api/models"
)

// GroupedMenu is the public menu partitioned by category, with the
// category labels in ascending order.
type GroupedMenu struct {
	Categories []string
	Items      map[string][]models.MenuItem
}

type cachedMenu struct {
	menu      GroupedMenu
	timestamp time.Time
}

const groupedMenuKey = "grouped_menu"

// MenuCache caches the grouped public menu response between mutations.
type MenuCache struct {
	entries *lru.Cache[string, cachedMenu]
	ttl     time.Duration
	mu      sync.RWMutex
}

// NewMenuCache creates a menu cache with the given size and TTL.
func NewMenuCache(size int, ttl time.Duration) (*MenuCache, error) {
	entries, err := lru.New[string, cachedMenu](size)
	if err != nil {
		return nil, err
	}
	return &MenuCache{entries: entries, ttl: ttl}, nil
}

// GetGrouped returns the cached grouped menu, if present and fresh.
func (c *MenuCache) GetGrouped() (GroupedMenu, bool) {
	c.mu.RLock()
	cached, ok := c.entries.Get(groupedMenuKey)
	c.mu.RUnlock()
	if !ok {
		return GroupedMenu{}, false
	}
	if time.Since(cached.timestamp) > c.ttl {
		c.mu.Lock()
		c.entries.Remove(groupedMenuKey)
		c.mu.Unlock()
		return GroupedMenu{}, false
	}
	return cached.menu, true
}

// SetGrouped stores the grouped menu.
func (c *MenuCache) SetGrouped(menu GroupedMenu) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries.Add(groupedMenuKey, cachedMenu{menu: menu, timestamp: time.Now()})
}

// Invalidate drops all cached entries. Called after every menu mutation.
func (c *MenuCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries.Purge()
}
