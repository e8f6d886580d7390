package maze

import "fmt"

// WallCell is one grid position while the maze is being carved.
// A wall flag is true while the wall is still standing.
type WallCell struct {
	Visited bool // Visited is set once the carver has reached the cell.
	Top     bool // Top indicates whether the wall above the cell stands.
	Bottom  bool // Bottom indicates whether the wall below the cell stands.
	Left    bool // Left indicates whether the wall on the left side stands.
	Right   bool // Right indicates whether the wall on the right side stands.
}

// Closed reports whether all four walls of the cell are still standing.
func (c *WallCell) Closed() bool {
	return c.Top && c.Bottom && c.Left && c.Right
}

// CellKind is the gameplay meaning of a cell in a finished level.
type CellKind int8

const (
	// Passage is an empty, walkable cell. In a finished level only the
	// entry, the exit and consumed pickups are Passage.
	Passage CellKind = iota
	// Wall is impassable.
	Wall
	// Collectible grants a life and extra time and is consumed on entry.
	Collectible
	// Hazard costs a life and sends the player back to the entry. It persists.
	Hazard
	// Obstacle is impassable and permanent.
	Obstacle
	// Minidot grants score and is consumed on entry.
	Minidot
)

var kindNames = [...]string{
	Passage:     "passage",
	Wall:        "wall",
	Collectible: "collectible",
	Hazard:      "hazard",
	Obstacle:    "obstacle",
	Minidot:     "minidot",
}

// Valid reports whether k is one of the six known kinds.
func (k CellKind) Valid() bool {
	return k >= Passage && k <= Minidot
}

// Passable reports whether a player can stand on a cell of this kind.
func (k CellKind) Passable() bool {
	return k.Valid() && k != Wall && k != Obstacle
}

// String returns the lowercase name of the kind.
func (k CellKind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("CellKind(%d)", int8(k))
	}
	return kindNames[k]
}

// MarshalText implements encoding.TextMarshaler.
func (k CellKind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int8(k))
	}
	return []byte(kindNames[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *CellKind) UnmarshalText(text []byte) error {
	kind, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

// ParseKind returns the kind named s.
func ParseKind(s string) (CellKind, error) {
	for i, name := range kindNames {
		if name == s {
			return CellKind(i), nil
		}
	}
	return Passage, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// CellPosition represents the position of a cell in the grid.
type CellPosition struct {
	Row int `json:"row" bson:"row"` // Row index of the cell
	Col int `json:"col" bson:"col"` // Column index of the cell
}

// Add returns the position shifted by delta.
func (p CellPosition) Add(delta CellPosition) CellPosition {
	return CellPosition{Row: p.Row + delta.Row, Col: p.Col + delta.Col}
}
