// Package pathfind provides A* routing and Dijkstra distance maps over gridmap.BaseMap
package pathfind

import (
	"github.com/zyedidia/generic/heap"

	"github.com/lixenwraith/tilegrid/geom"
	"github.com/lixenwraith/tilegrid/gridmap"
)

// Path is the result of a search, Steps runs start..goal inclusive on success and is empty otherwise
type Path struct {
	Steps   []int
	Success bool
	Cost    float32
}

// Points converts Steps to coordinates
func (p Path) Points(m gridmap.Algorithm2D) []geom.Point {
	points := make([]geom.Point, len(p.Steps))
	for i, idx := range p.Steps {
		points[i] = m.IndexToPoint2D(idx)
	}
	return points
}

type openNode struct {
	idx int
	f   float32
	seq uint64 // Enqueue order, later wins on equal f
}

type nodeRecord struct {
	g      float32
	parent int
	closed bool
}

// AStarSearch finds the cheapest route from start to goal following AvailableExits
// Equal f values pop most recently enqueued first; closed nodes are never reopened
func AStarSearch(start, goal int, m gridmap.BaseMap) Path {
	if start == goal {
		return Path{Steps: []int{start}, Success: true}
	}

	open := heap.New(func(a, b openNode) bool {
		if a.f != b.f {
			return a.f < b.f
		}
		return a.seq > b.seq
	})
	nodes := map[int]*nodeRecord{
		start: {g: 0, parent: start},
	}

	var seq uint64
	open.Push(openNode{idx: start, f: m.PathingDistance(start, goal), seq: seq})

	var exits []gridmap.Exit
	for open.Size() > 0 {
		cur, _ := open.Pop()
		rec := nodes[cur.idx]
		if rec.closed {
			continue // Superseded entry
		}
		rec.closed = true

		if cur.idx == goal {
			return Path{Steps: tracePath(nodes, start, goal), Success: true, Cost: rec.g}
		}

		exits = m.AvailableExits(cur.idx, exits[:0])
		for _, e := range exits {
			g := rec.g + e.Cost

			next, seen := nodes[e.Index]
			if seen && (next.closed || g >= next.g) {
				continue
			}
			if !seen {
				next = &nodeRecord{}
				nodes[e.Index] = next
			}
			next.g = g
			next.parent = cur.idx

			seq++
			open.Push(openNode{idx: e.Index, f: g + m.PathingDistance(e.Index, goal), seq: seq})
		}
	}

	return Path{}
}

// AStarSearch2D searches between two points of a 2D map
func AStarSearch2D(start, goal geom.Point, m gridmap.Algorithm2D) Path {
	return AStarSearch(m.Point2DToIndex(start), m.Point2DToIndex(goal), m)
}

func tracePath(nodes map[int]*nodeRecord, start, goal int) []int {
	steps := []int{goal}
	for idx := goal; idx != start; {
		idx = nodes[idx].parent
		steps = append(steps, idx)
	}
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}
	return steps
}
