package pathfind

import (
	"github.com/lixenwraith/tilegrid/geom"
	"github.com/lixenwraith/tilegrid/gridmap"
)

// DistanceMapCache rebuilds a distance map toward moving seeds with throttling
type DistanceMapCache struct {
	Map *DistanceMap

	// Rebuild throttling
	LastSeeds              []geom.Point // Seeds of the last rebuild
	TicksSinceRebuild      int          // Ticks since last rebuild
	MinTicksBetweenRebuild int          // Minimum ticks between rebuilds
	DirtyDistance          int          // Seed must move this many cells (Manhattan) to force a rebuild

	// PendingUpdate latches true on any state change, cleared after rebuild
	PendingUpdate bool

	built   bool
	indices []int
}

// NewDistanceMapCache creates a cache for a map of size cells
func NewDistanceMapCache(size int, maxDepth float32, minTicks, dirtyDist int) *DistanceMapCache {
	return &DistanceMapCache{
		Map:                    newDistanceMap(size, maxDepth),
		LastSeeds:              make([]geom.Point, 0, 8),
		TicksSinceRebuild:      minTicks, // Allow immediate first rebuild
		MinTicksBetweenRebuild: minTicks,
		DirtyDistance:          dirtyDist,
		PendingUpdate:          true, // Force initial rebuild
	}
}

// Update rebuilds the map if seeds moved far enough and the throttle allows it
// Returns true if the map was rebuilt this tick
func (c *DistanceMapCache) Update(seeds []geom.Point, m gridmap.Algorithm2D) bool {
	c.TicksSinceRebuild++

	if len(seeds) != len(c.LastSeeds) {
		c.PendingUpdate = true
		c.TicksSinceRebuild = c.MinTicksBetweenRebuild
	} else {
		for i, s := range seeds {
			if int(geom.Manhattan.Distance2D(s, c.LastSeeds[i])) >= c.DirtyDistance {
				c.PendingUpdate = true
				c.TicksSinceRebuild = c.MinTicksBetweenRebuild
				break
			}
		}
	}

	if (c.PendingUpdate && c.TicksSinceRebuild >= c.MinTicksBetweenRebuild) || !c.built {
		c.indices = c.indices[:0]
		for _, s := range seeds {
			if gridmap.InBounds(m, s) {
				c.indices = append(c.indices, m.Point2DToIndex(s))
			}
		}
		c.Map.Rebuild(c.indices, m)

		c.LastSeeds = append(c.LastSeeds[:0], seeds...)
		c.TicksSinceRebuild = 0
		c.PendingUpdate = false
		c.built = true
		return true
	}

	return false
}

// MarkDirty forces a rebuild on the next eligible tick
func (c *DistanceMapCache) MarkDirty() {
	c.PendingUpdate = true
}

// Cost returns the cached label at p, Unreachable before the first rebuild
func (c *DistanceMapCache) Cost(p geom.Point, m gridmap.Algorithm2D) float32 {
	if !c.built || !gridmap.InBounds(m, p) {
		return Unreachable
	}
	return c.Map.Cost(m.Point2DToIndex(p))
}

// IsValid returns true once the map has been built
func (c *DistanceMapCache) IsValid() bool {
	return c.built
}
