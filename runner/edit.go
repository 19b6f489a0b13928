package runner

import (
	"fmt"

	"github.com/katalvlaran/pathgrid/gridgraph"
	"github.com/katalvlaran/pathgrid/traversal"
)

// editable guards every mutation of the grid or run parameters.
func (c *Controller) editable() error {
	if c.status != Wait {
		return ErrNotEditable
	}
	return nil
}

// ToggleWall flips the wall at p.
func (c *Controller) ToggleWall(p gridgraph.Coord) error {
	if err := c.editable(); err != nil {
		return err
	}
	return c.grid.ToggleWall(p)
}

// SetWall places or removes the wall at p.
func (c *Controller) SetWall(p gridgraph.Coord, wall bool) error {
	if err := c.editable(); err != nil {
		return err
	}
	return c.grid.SetWall(p, wall)
}

// MoveStart relocates the Start marker.
func (c *Controller) MoveStart(p gridgraph.Coord) error {
	if err := c.editable(); err != nil {
		return err
	}
	return c.grid.MoveStart(p)
}

// MoveEnd relocates the End marker.
func (c *Controller) MoveEnd(p gridgraph.Coord) error {
	if err := c.editable(); err != nil {
		return err
	}
	return c.grid.MoveEnd(p)
}

// ClearWalls removes every wall.
func (c *Controller) ClearWalls() error {
	if err := c.editable(); err != nil {
		return err
	}
	c.grid.ClearWalls()
	return nil
}

// SetMode selects the algorithm for the next run.
func (c *Controller) SetMode(m traversal.Mode) error {
	if err := c.editable(); err != nil {
		return err
	}
	if !m.Valid() {
		return traversal.ErrUnknownMode
	}
	c.mode = m
	c.log.Debug("mode", "mode", m)
	return nil
}

// NextMode cycles BFS → A* → Dijkstra → BFS.
func (c *Controller) NextMode() error {
	return c.SetMode((c.mode + 1) % traversal.Mode(len(traversal.Modes())))
}

// SetConnectivity selects 4- or 8-neighbor moves for the next run.
func (c *Controller) SetConnectivity(conn gridgraph.Connectivity) error {
	if err := c.editable(); err != nil {
		return err
	}
	if !conn.Valid() {
		return fmt.Errorf("%w: %d", gridgraph.ErrConnectivity, int(conn))
	}
	c.conn = conn
	c.log.Debug("connectivity", "conn", conn)
	return nil
}
