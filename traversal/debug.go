package traversal

import (
	"strconv"

	"github.com/katalvlaran/pathgrid/gridgraph"
)

// Debug field keys, in display order per mode.
const (
	FieldPos         = "pos"
	FieldPredecessor = "predecessor"
	FieldF           = "f"
	FieldG           = "g"
	FieldH           = "h"
	FieldDistance    = "distance"
)

// DebugFields returns the overlay keys shown for mode, in display order.
func DebugFields(mode Mode) []string {
	switch mode {
	case AStar:
		return []string{FieldPos, FieldPredecessor, FieldF, FieldG, FieldH}
	case Dijkstra:
		return []string{FieldPos, FieldPredecessor, FieldDistance}
	default:
		return []string{FieldPos, FieldPredecessor}
	}
}

// CellDebugInfo returns the per-cell overlay for mode: position and
// predecessor always, plus f/g/h for A* or distance for Dijkstra.
// A missing predecessor reads "none" and an unset distance reads "inf".
func CellDebugInfo(g *gridgraph.Grid, c gridgraph.Coord, mode Mode) (map[string]string, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if !mode.Valid() {
		return nil, ErrUnknownMode
	}
	cell, err := g.Cell(c)
	if err != nil {
		return nil, err
	}

	info := map[string]string{
		FieldPos:         cell.Pos.String(),
		FieldPredecessor: "none",
	}
	if p, ok := g.Predecessor(c); ok {
		info[FieldPredecessor] = p.String()
	}
	switch mode {
	case AStar:
		info[FieldF] = strconv.Itoa(cell.F)
		info[FieldG] = strconv.Itoa(cell.G)
		info[FieldH] = strconv.Itoa(cell.H)
	case Dijkstra:
		info[FieldDistance] = "inf"
		if cell.Distance != gridgraph.Infinity {
			info[FieldDistance] = strconv.Itoa(cell.Distance)
		}
	}
	return info, nil
}
