package raster

import (
	"iter"
	"math"

	"github.com/lixenwraith/tilegrid/geom"
)

// VectorLine marches a unit vector from the centre of start toward the centre of end
// Yields start, every distinct cell crossed, then end exactly once
type VectorLine struct {
	start, end geom.Point

	posX, posY     float64
	slopeX, slopeY float64
	stepsLeft      int // Forces arrival at end under floating drift

	cur     geom.Point
	started bool
	done    bool
}

// NewVectorLine creates a vector line iterator from start to end
func NewVectorLine(start, end geom.Point) *VectorLine {
	v := &VectorLine{start: start, end: end}
	v.Reset()
	return v
}

// Reset rewinds the iterator to start
func (v *VectorLine) Reset() {
	v.posX = float64(v.start.X) + 0.5
	v.posY = float64(v.start.Y) + 0.5

	dx := float64(v.end.X - v.start.X)
	dy := float64(v.end.Y - v.start.Y)
	length := math.Hypot(dx, dy)
	if length > 0 {
		v.slopeX = dx / length
		v.slopeY = dy / length
	} else {
		v.slopeX, v.slopeY = 0, 0
	}
	v.stepsLeft = int(math.Ceil(length)) + 1

	v.started = false
	v.done = false
}

// Next advances to the next cell, returns false after end has been yielded
func (v *VectorLine) Next() bool {
	if v.done {
		return false
	}

	if !v.started {
		v.started = true
		v.cur = v.start
		if v.start == v.end {
			v.done = true
		}
		return true
	}

	for v.stepsLeft > 0 {
		v.stepsLeft--
		v.posX += v.slopeX
		v.posY += v.slopeY

		p := geom.Point{X: int(math.Floor(v.posX)), Y: int(math.Floor(v.posY))}
		if p == v.end {
			break
		}
		if p != v.cur {
			v.cur = p
			return true
		}
	}

	v.cur = v.end
	v.done = true
	return true
}

// Point returns the cell produced by the last successful Next
func (v *VectorLine) Point() geom.Point {
	return v.cur
}

// VectorPoints returns a restartable sequence of vector line cells, both ends included
func VectorPoints(start, end geom.Point) iter.Seq[geom.Point] {
	return func(yield func(geom.Point) bool) {
		v := NewVectorLine(start, end)
		for v.Next() {
			if !yield(v.Point()) {
				return
			}
		}
	}
}
