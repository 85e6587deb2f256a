package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/awmpietro/golang-logic-inference/internal/logic"
)

// InMemory caches parsed formulas by the hash of their source text.
// Concurrent misses on the same text share one parse; failed parses are
// not cached. Once max entries are stored, new results are returned but
// not retained.
type InMemory struct {
	mu    sync.RWMutex
	max   int
	items map[string]logic.Formula
	group singleflight.Group
}

func NewInMemory(max int) *InMemory {
	return &InMemory{
		max:   max,
		items: make(map[string]logic.Formula, max),
	}
}

func (c *InMemory) GetOrCompute(text string, fn func() (logic.Formula, error)) (logic.Formula, error) {
	key := hash(text)

	c.mu.RLock()
	f, ok := c.items[key]
	c.mu.RUnlock()
	if ok {
		return f, nil
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		f, err := run(fn)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		if len(c.items) < c.max {
			c.items[key] = f
		}
		c.mu.Unlock()
		return f, nil
	})
	if err != nil {
		return nil, err
	}
	f, _ = v.(logic.Formula)
	return f, nil
}

func (c *InMemory) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func run(fn func() (logic.Formula, error)) (f logic.Formula, err error) {
	defer func() {
		if r := recover(); r != nil {
			f, err = nil, fmt.Errorf("parse panicked: %v", r)
		}
	}()
	return fn()
}

func hash(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
