package game

import "fmt"

const (
	MaxPip       = 6
	NumTiles     = 28
	HandSize     = 7
	tilesPerSuit = MaxPip + 1
)

// Tile is a domino piece. On the board Left touches the left neighbour and Right
// the right neighbour; in hands and stock tiles are kept canonical (Left <= Right).
type Tile struct {
	Left  int
	Right int
}

// NewTile returns the canonical tile with pips a and b.
func NewTile(a, b int) Tile {
	return Tile{Left: a, Right: b}.Canonical()
}

func (t Tile) Canonical() Tile {
	if t.Left > t.Right {
		return t.Flip()
	}
	return t
}

func (t Tile) Flip() Tile {
	return Tile{Left: t.Right, Right: t.Left}
}

// Same reports whether t and o are the same physical tile, regardless of orientation.
func (t Tile) Same(o Tile) bool {
	return t.Canonical() == o.Canonical()
}

func (t Tile) Has(pip int) bool {
	return t.Left == pip || t.Right == pip
}

func (t Tile) IsDouble() bool {
	return t.Left == t.Right
}

// Pips is the tile's contribution to a pip count.
func (t Tile) Pips() int {
	return t.Left + t.Right
}

// Other returns the pip opposite to the given one. The pip must be on the tile.
func (t Tile) Other(pip int) int {
	if t.Left == pip {
		return t.Right
	}
	return t.Left
}

func (t Tile) Valid() bool {
	return t.Left >= 0 && t.Left <= MaxPip && t.Right >= 0 && t.Right <= MaxPip
}

// Index maps the unordered tile onto 0..27, in GenerateTiles order.
func (t Tile) Index() int {
	c := t.Canonical()
	// Row lo starts after the lo previous rows of 7, 6, 5, ... tiles
	start := c.Left*tilesPerSuit - c.Left*(c.Left-1)/2
	return start + c.Right - c.Left
}

func (t Tile) String() string {
	return fmt.Sprintf("%d|%d", t.Left, t.Right)
}

// GenerateTiles returns the 28 canonical tiles of a double-six set.
func GenerateTiles() []Tile {
	tiles := make([]Tile, 0, NumTiles)
	for i := 0; i <= MaxPip; i++ {
		for j := i; j <= MaxPip; j++ {
			tiles = append(tiles, Tile{Left: i, Right: j})
		}
	}
	return tiles
}

// IsValidMove reports whether tile can be attached to an open end showing end.
func IsValidMove(tile Tile, end int) bool {
	return tile.Has(end)
}
