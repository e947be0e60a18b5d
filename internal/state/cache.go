package state

import (
	"sync"

	"github.com/knmsyk/notion-content-mcp/internal/posts"
)

// Cache holds lightweight shared state for the MCP session.
type Cache struct {
	mu     sync.RWMutex
	posts  []posts.Post
	topics []string
}

// NewCache creates a Cache.
func NewCache() *Cache {
	return &Cache{}
}

// SetPosts stores the most recent post listing.
func (c *Cache) SetPosts(list []posts.Post) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.posts = append([]posts.Post(nil), list...)
}

// Posts returns the cached post listing.
func (c *Cache) Posts() []posts.Post {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]posts.Post(nil), c.posts...)
}

// SetTopics stores the most recent topic listing.
func (c *Cache) SetTopics(topics []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.topics = append([]string(nil), topics...)
}

// Topics returns the cached topic listing.
func (c *Cache) Topics() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]string(nil), c.topics...)
}
