package pathfind

import (
	"math"

	"github.com/zyedidia/generic/heap"

	"github.com/lixenwraith/tilegrid/gridmap"
)

const (
	// Unreachable labels cells no seed reaches within the depth cap
	Unreachable float32 = math.MaxFloat32

	// MaxDepthUnlimited disables the depth cap
	MaxDepthUnlimited float32 = math.MaxFloat32
)

type queued struct {
	idx  int
	cost float32
	seq  uint64 // Enqueue order, earlier wins on equal cost
}

// DistanceMap labels every cell with the cheapest cost from its nearest seed
type DistanceMap struct {
	Costs    []float32 // Per-index cost, Unreachable if not labeled
	MaxDepth float32   // Labels above this are not recorded

	// Reusable buffers across rebuilds
	queue *heap.Heap[queued]
	exits []gridmap.Exit
	seq   uint64
}

// NewDistanceMap floods outward from seeds over AvailableExits
// Seeds and exits outside [0, size) are ignored. Seeds are labeled 0 regardless of maxDepth
func NewDistanceMap(size int, seeds []int, m gridmap.BaseMap, maxDepth float32) *DistanceMap {
	d := newDistanceMap(size, maxDepth)
	d.Rebuild(seeds, m)
	return d
}

func newDistanceMap(size int, maxDepth float32) *DistanceMap {
	return &DistanceMap{
		Costs:    make([]float32, max(size, 0)),
		MaxDepth: maxDepth,
		queue: heap.New(func(a, b queued) bool {
			if a.cost != b.cost {
				return a.cost < b.cost
			}
			return a.seq < b.seq
		}),
	}
}

// Rebuild recomputes all labels for a new seed set, reusing buffers
func (d *DistanceMap) Rebuild(seeds []int, m gridmap.BaseMap) {
	for i := range d.Costs {
		d.Costs[i] = Unreachable
	}
	d.seq = 0
	for d.queue.Size() > 0 {
		d.queue.Pop()
	}

	for _, s := range seeds {
		if !d.inRange(s) || d.Costs[s] == 0 {
			continue
		}
		d.Costs[s] = 0
		d.push(s, 0)
	}

	for d.queue.Size() > 0 {
		entry, _ := d.queue.Pop()
		if entry.cost > d.Costs[entry.idx] {
			continue // Stale entry
		}

		d.exits = m.AvailableExits(entry.idx, d.exits[:0])
		for _, e := range d.exits {
			if !d.inRange(e.Index) {
				continue
			}
			cost := entry.cost + e.Cost
			if cost > d.MaxDepth {
				continue
			}
			if cost < d.Costs[e.Index] {
				d.Costs[e.Index] = cost
				d.push(e.Index, cost)
			}
		}
	}
}

func (d *DistanceMap) push(idx int, cost float32) {
	d.queue.Push(queued{idx: idx, cost: cost, seq: d.seq})
	d.seq++
}

func (d *DistanceMap) inRange(idx int) bool {
	return idx >= 0 && idx < len(d.Costs)
}

// Size returns the number of labeled slots
func (d *DistanceMap) Size() int {
	return len(d.Costs)
}

// Cost returns the label at idx, Unreachable when out of range
func (d *DistanceMap) Cost(idx int) float32 {
	if !d.inRange(idx) {
		return Unreachable
	}
	return d.Costs[idx]
}

// Reachable reports whether some seed reaches idx
func (d *DistanceMap) Reachable(idx int) bool {
	return d.Cost(idx) != Unreachable
}

// LowestExit returns the exit that steps downhill toward the nearest seed
// Ties keep the first exit in AvailableExits order; false at a seed or unreachable cell
func (d *DistanceMap) LowestExit(idx int, m gridmap.BaseMap) (int, bool) {
	best := d.Cost(idx)
	if best == Unreachable {
		return 0, false
	}

	bestIdx, found := 0, false
	d.exits = m.AvailableExits(idx, d.exits[:0])
	for _, e := range d.exits {
		if c := d.Cost(e.Index); c < best {
			best = c
			bestIdx = e.Index
			found = true
		}
	}
	return bestIdx, found
}

// HighestExit returns the reachable exit that steps farthest away from all seeds
// Ties keep the first exit in AvailableExits order; false when no exit climbs
func (d *DistanceMap) HighestExit(idx int, m gridmap.BaseMap) (int, bool) {
	best := d.Cost(idx)
	if best == Unreachable {
		return 0, false
	}

	bestIdx, found := 0, false
	d.exits = m.AvailableExits(idx, d.exits[:0])
	for _, e := range d.exits {
		if c := d.Cost(e.Index); c != Unreachable && c > best {
			best = c
			bestIdx = e.Index
			found = true
		}
	}
	return bestIdx, found
}
