package reversi

type Direction struct {
	DRow int
	DCol int
}

var Directions = [8]Direction{
	{0, 1}, {1, 1}, {1, 0}, {1, -1},
	{0, -1}, {-1, -1}, {-1, 0}, {-1, 1},
}

// run is the outcome of walking one direction. Only closed runs are flipped.
type run struct {
	closed    bool
	positions []Position
}

// scan walks from pos (exclusive) along dir collecting opposite-color pieces
// until it meets a piece of color (closed), an empty slot or the edge (open).
func (that *Board) scan(pos Position, color Color, dir Direction) run {
	var candidates []Position

	opponent := color.Opposite()
	next := Position{Row: pos.Row + dir.DRow, Col: pos.Col + dir.DCol}

	for that.IsValidPos(next) {
		piece := that.grid[next.Row][next.Col]

		switch {
		case piece == nil:
			return run{}
		case piece.Color() == opponent:
			candidates = append(candidates, next)
		case piece.Color() == color:
			return run{closed: true, positions: candidates}
		default:
			return run{}
		}

		next = Position{Row: next.Row + dir.DRow, Col: next.Col + dir.DCol}
	}

	return run{}
}

// captures - union of closed runs over all eight directions. No direction short-circuits another.
func (that *Board) captures(pos Position, color Color) []Position {
	var flips []Position

	for _, dir := range Directions {
		if r := that.scan(pos, color, dir); r.closed {
			flips = append(flips, r.positions...)
		}
	}

	return flips
}
