package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates a width or height below one.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row and one column")
	// ErrGridTooSmall indicates a grid with no room for distinct Start and End cells.
	ErrGridTooSmall = errors.New("gridgraph: grid needs at least two cells")
	// ErrNonRectangular indicates layout rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrOutOfBounds indicates a coordinate outside [0,Width)×[0,Height).
	ErrOutOfBounds = errors.New("gridgraph: coordinate out of bounds")
	// ErrMarkerCollision indicates an edit that would wall over or stack the Start/End markers.
	ErrMarkerCollision = errors.New("gridgraph: edit collides with start or end marker")
	// ErrLayoutMarkers indicates a layout without exactly one start and one end.
	ErrLayoutMarkers = errors.New("gridgraph: layout needs exactly one S and one E")
	// ErrLayoutRune indicates an unknown character in a layout row.
	ErrLayoutRune = errors.New("gridgraph: unknown layout character")
	// ErrConnectivity indicates a connectivity other than Conn4 or Conn8.
	ErrConnectivity = errors.New("gridgraph: connectivity must be 4 or 8")
	// ErrNoPath indicates no route exists between two cells.
	ErrNoPath = errors.New("gridgraph: no path between specified cells")
)
