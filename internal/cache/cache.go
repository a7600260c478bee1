// Package cache provides the optional read-through result cache for battle
// resolutions, keyed by the content hash of the inputs. A singleflight
// group ensures only one computation runs for a given key while concurrent
// callers wait for the result; inserted outcomes are never mutated.
package cache

import (
	"sync"

	"github.com/mbarros/particle-clash/internal/game"

	"golang.org/x/sync/singleflight"
)

// OutcomeCache supports concurrent readers and insert-if-absent writes.
// The zero value is not usable; call New.
type OutcomeCache struct {
	entries sync.Map
	group   singleflight.Group
}

func New() *OutcomeCache {
	return &OutcomeCache{}
}

// Resolve returns the cached outcome for key, computing and inserting it on
// a miss. The compute function runs at most once per key across concurrent
// callers; its error is returned to all of them and nothing is cached.
func (c *OutcomeCache) Resolve(key string, compute func() (*game.BattleOutcome, error)) (*game.BattleOutcome, error) {
	if v, ok := c.entries.Load(key); ok {
		return v.(*game.BattleOutcome), nil
	}
	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		if v, ok := c.entries.Load(key); ok {
			return v, nil
		}
		out, err := compute()
		if err != nil {
			return nil, err
		}
		actual, _ := c.entries.LoadOrStore(key, out)
		return actual, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*game.BattleOutcome), nil
}

// Len reports the number of cached outcomes. Intended for diagnostics.
func (c *OutcomeCache) Len() int {
	n := 0
	c.entries.Range(func(_, _ interface{}) bool {
		n++
		return true
	})
	return n
}
