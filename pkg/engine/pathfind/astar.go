// Package pathfind implements grid A* search over a world.TileMap.
package pathfind

import (
	"strings"

	"github.com/zyedidia/generic/heap"

	"dungeoncrawl/pkg/engine/world"
)

// Path is an ordered sequence of points from source to destination, both included.
type Path []world.Point

// Moves returns the number of steps along the path
func (p Path) Moves() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Directions converts consecutive points into step directions.
// Non-adjacent pairs are skipped.
func (p Path) Directions() []world.Direction {
	dirs := make([]world.Direction, 0, p.Moves())
	for i := 1; i < len(p); i++ {
		if d, ok := world.DirectionBetween(p[i-1], p[i]); ok {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// Symbols returns the path as a string of movement symbols
func (p Path) Symbols() string {
	var sb strings.Builder
	for _, d := range p.Directions() {
		sb.WriteRune(d.Symbol())
	}
	return sb.String()
}

// Expansion order: west, east, south, north.
var steps = [4]world.Point{{X: -1, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: -1}, {X: 0, Y: 1}}

const unset = -1

// node holds the search bookkeeping for one cell
type node struct {
	parent world.Point
	g, f   int
	closed bool
}

// entry is a frontier element. It carries its own priority so later cost
// updates never reorder entries already in the heap.
type entry struct {
	p   world.Point
	f   int
	seq int
}

func lessEntry(a, b entry) bool {
	if a.f != b.f {
		return a.f < b.f
	}
	return a.seq < b.seq
}

// FindPath searches a shortest 4-directional path from src to dst.
//
// Walls are never entered, except that the destination itself is not checked:
// the search stops as soon as a neighbour equals dst. The second result is
// false when either endpoint is out of bounds or dst is unreachable.
func FindPath(m *world.TileMap, src, dst world.Point) (Path, bool) {
	if m == nil || !m.IsValidPosition(src) || !m.IsValidPosition(dst) {
		return nil, false
	}
	if src == dst {
		return Path{src}, true
	}

	w := m.Width()
	nodes := make([]node, w*m.Height())
	for i := range nodes {
		nodes[i] = node{g: unset, f: unset}
	}
	idx := func(p world.Point) int { return p.Y*w + p.X }

	start := &nodes[idx(src)]
	start.g, start.f, start.parent = 0, 0, src

	seq := 0
	open := heap.New[entry](lessEntry)
	open.Push(entry{p: src, f: 0, seq: seq})

	for open.Size() > 0 {
		cur, _ := open.Pop()
		cn := &nodes[idx(cur.p)]
		if cn.closed {
			continue
		}
		cn.closed = true

		for _, s := range steps {
			np := cur.p.Add(s)
			if !m.IsValidPosition(np) {
				continue
			}
			if np == dst {
				nodes[idx(np)].parent = cur.p
				return trace(nodes, idx, src, dst), true
			}

			nn := &nodes[idx(np)]
			if nn.closed || m.IsWall(np) {
				continue
			}
			g := cn.g + 1
			f := g + world.Manhattan(np, dst)
			if nn.f == unset || f < nn.f {
				nn.g, nn.f, nn.parent = g, f, cur.p
				seq++
				open.Push(entry{p: np, f: f, seq: seq})
			}
		}
	}

	return nil, false
}

// trace follows parent links back from dst and returns the path in forward order
func trace(nodes []node, idx func(world.Point) int, src, dst world.Point) Path {
	var path Path
	for p := dst; p != src; p = nodes[idx(p)].parent {
		path = append(path, p)
	}
	path = append(path, src)

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
