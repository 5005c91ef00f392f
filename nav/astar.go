package nav

import (
	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"
)

// PathFinder runs A* over a WalkabilityMap with four-way unit-cost moves.
type PathFinder struct {
	Map *WalkabilityMap
	// MaxNodes caps expanded nodes; zero means unlimited.
	MaxNodes int
}

type openNode struct {
	cell Cell
	f    int
	seq  uint64
}

// FindPath returns the cells from src to dst inclusive and the number of
// steps. ok is false when no walkable route exists. The start cell is
// explored even if it is not itself walkable.
func (pf PathFinder) FindPath(src, dst Cell) (path []Cell, cost int, ok bool) {
	open := heap.New[openNode](func(a, b openNode) bool {
		if a.f != b.f {
			return a.f < b.f
		}
		return a.seq < b.seq
	})
	closed := mapset.New[Cell]()
	gScore := map[Cell]int{src: 0}
	cameFrom := make(map[Cell]Cell)

	var seq uint64
	open.Push(openNode{cell: src, f: src.Manhattan(dst), seq: seq})

	expanded := 0
	for open.Size() > 0 {
		current, _ := open.Pop()
		cur := current.cell
		if closed.Has(cur) {
			continue
		}
		if cur == dst {
			path = reconstructPath(cameFrom, src, dst)
			return path, len(path) - 1, true
		}
		closed.Put(cur)

		expanded++
		if pf.MaxNodes > 0 && expanded >= pf.MaxNodes {
			return nil, 0, false
		}

		for _, n := range pf.Map.WalkableNeighbours(cur) {
			if closed.Has(n) {
				continue
			}
			g := gScore[cur] + 1
			if prev, seen := gScore[n]; seen && g >= prev {
				continue
			}
			gScore[n] = g
			cameFrom[n] = cur
			seq++
			open.Push(openNode{cell: n, f: g + n.Manhattan(dst), seq: seq})
		}
	}

	return nil, 0, false
}

// FindPath is shorthand for an unbounded search over m.
func FindPath(m *WalkabilityMap, src, dst Cell) ([]Cell, int, bool) {
	return PathFinder{Map: m}.FindPath(src, dst)
}

func reconstructPath(cameFrom map[Cell]Cell, src, dst Cell) []Cell {
	path := []Cell{dst}
	for cur := dst; cur != src; {
		cur = cameFrom[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
