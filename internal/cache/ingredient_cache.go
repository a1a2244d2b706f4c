// Package cache holds process-wide memoization of parsed ingredient lines.
package cache

import (
	"sync"

	"github.com/limbo/fast800/pkg/entity"
)

// IngredientCache is keyed by the exact ingredient line. Entries are never evicted or replaced.
type IngredientCache struct {
	mu    sync.RWMutex
	items map[string]entity.ParsedIngredient
}

func NewIngredientCache() *IngredientCache {
	return &IngredientCache{items: make(map[string]entity.ParsedIngredient)}
}

func (c *IngredientCache) Get(line string) (entity.ParsedIngredient, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.items[line]
	return p, ok
}

// Set stores parsed for line unless the line is already known.
func (c *IngredientCache) Set(line string, parsed entity.ParsedIngredient) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[line]; ok {
		return
	}
	c.items[line] = parsed
}

func (c *IngredientCache) Has(line string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.items[line]
	return ok
}

func (c *IngredientCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
