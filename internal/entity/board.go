package entity

const (
	BoardRows  = 6
	BoardCols  = 7
	BoardCells = BoardRows * BoardCols
)

const (
	EmptyCell = ""

	ColorGreen = "green"
	ColorBlue  = "blue"
)

// Board is a 6x7 connect-four grid stored row-major, row 0 on top.
// Pure game logic lives here; the board does no I/O.
type Board [BoardCells]string

// Drop - places a token of the given color into the column, falling to
// the lowest empty cell. Reports false when the column index is out of
// range or the column is already full.
func (that *Board) Drop(column int, color string) bool {
	if column < 0 || column >= BoardCols {
		return false
	}

	for i := (BoardRows-1)*BoardCols + column; i >= 0; i -= BoardCols {
		if that[i] == EmptyCell {
			that[i] = color
			return true
		}
	}

	return false
}

// HasWinner - scans the whole board row-major for a run of four equal
// cells. Only forward offsets are checked from each anchor (right,
// down, down-right, down-left), so no run is counted twice.
func (that *Board) HasWinner() bool {
	for row := 0; row < BoardRows; row++ {
		for col := 0; col < BoardCols; col++ {
			cell := that[row*BoardCols+col]
			if cell == EmptyCell {
				continue
			}

			if col+3 < BoardCols &&
				cell == that[row*BoardCols+col+1] &&
				cell == that[row*BoardCols+col+2] &&
				cell == that[row*BoardCols+col+3] {
				return true
			}

			if row+3 >= BoardRows {
				continue
			}

			if cell == that[(row+1)*BoardCols+col] &&
				cell == that[(row+2)*BoardCols+col] &&
				cell == that[(row+3)*BoardCols+col] {
				return true
			}

			if col+3 < BoardCols &&
				cell == that[(row+1)*BoardCols+col+1] &&
				cell == that[(row+2)*BoardCols+col+2] &&
				cell == that[(row+3)*BoardCols+col+3] {
				return true
			}

			if col-3 >= 0 &&
				cell == that[(row+1)*BoardCols+col-1] &&
				cell == that[(row+2)*BoardCols+col-2] &&
				cell == that[(row+3)*BoardCols+col-3] {
				return true
			}
		}
	}

	return false
}

// Cells - returns a copy of the grid for outbound set-board events.
func (that *Board) Cells() []string {
	cells := make([]string, BoardCells)
	copy(cells, that[:])
	return cells
}
