package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cellAt(board *Board, row, col int) string {
	return board[row*BoardCols+col]
}

func TestBoard_Drop(t *testing.T) {
	t.Run("Token falls to the bottom row", func(t *testing.T) {
		// Given: an empty board
		var board Board

		// When: a green token is dropped into column 3
		ok := board.Drop(3, ColorGreen)

		// Then: it lands on the bottom row of that column
		require.True(t, ok)
		require.Equal(t, ColorGreen, cellAt(&board, 5, 3))
	})

	t.Run("Tokens stack upwards", func(t *testing.T) {
		// Given: an empty board
		var board Board

		// When: three tokens are dropped into the same column
		require.True(t, board.Drop(0, ColorGreen))
		require.True(t, board.Drop(0, ColorBlue))
		require.True(t, board.Drop(0, ColorGreen))

		// Then: they occupy the three lowest rows
		require.Equal(t, ColorGreen, cellAt(&board, 5, 0))
		require.Equal(t, ColorBlue, cellAt(&board, 4, 0))
		require.Equal(t, ColorGreen, cellAt(&board, 3, 0))
	})

	t.Run("Full column rejects the drop", func(t *testing.T) {
		// Given: column 6 filled to the top
		var board Board
		for i := 0; i < BoardRows; i++ {
			require.True(t, board.Drop(6, ColorGreen))
		}

		before := board.Cells()

		// When: another token is dropped into the full column
		ok := board.Drop(6, ColorBlue)

		// Then: the drop is refused and the board is unchanged
		assert.False(t, ok)
		assert.Equal(t, before, board.Cells())
	})

	t.Run("Out of range columns reject the drop", func(t *testing.T) {
		var board Board

		assert.False(t, board.Drop(-1, ColorGreen))
		assert.False(t, board.Drop(BoardCols, ColorGreen))
	})
}

func TestBoard_HasWinner(t *testing.T) {
	set := func(board *Board, row, col int, color string) {
		board[row*BoardCols+col] = color
	}

	t.Run("Empty board has no winner", func(t *testing.T) {
		var board Board

		assert.False(t, board.HasWinner())
	})

	t.Run("Three in a row is not enough", func(t *testing.T) {
		var board Board
		for col := 0; col < 3; col++ {
			set(&board, 5, col, ColorGreen)
		}

		assert.False(t, board.HasWinner())
	})

	t.Run("Horizontal run of four wins", func(t *testing.T) {
		var board Board
		for col := 2; col < 6; col++ {
			set(&board, 5, col, ColorBlue)
		}

		assert.True(t, board.HasWinner())
	})

	t.Run("Vertical run of four wins", func(t *testing.T) {
		var board Board
		for row := 2; row < 6; row++ {
			set(&board, row, 0, ColorGreen)
		}

		assert.True(t, board.HasWinner())
	})

	t.Run("Down-right diagonal wins", func(t *testing.T) {
		var board Board
		for i := 0; i < 4; i++ {
			set(&board, 1+i, 1+i, ColorGreen)
		}

		assert.True(t, board.HasWinner())
	})

	t.Run("Down-left diagonal wins", func(t *testing.T) {
		var board Board
		for i := 0; i < 4; i++ {
			set(&board, 2+i, 5-i, ColorBlue)
		}

		assert.True(t, board.HasWinner())
	})

	t.Run("Mixed colors do not win", func(t *testing.T) {
		var board Board
		set(&board, 5, 0, ColorGreen)
		set(&board, 5, 1, ColorBlue)
		set(&board, 5, 2, ColorGreen)
		set(&board, 5, 3, ColorBlue)

		assert.False(t, board.HasWinner())
	})
}

func TestBoard_Cells(t *testing.T) {
	// Given: a board with one token
	var board Board
	require.True(t, board.Drop(1, ColorGreen))

	// When: the cells are copied out
	cells := board.Cells()

	// Then: the copy has all 42 cells and mutating it leaves the board alone
	require.Len(t, cells, BoardCells)
	cells[0] = ColorBlue
	assert.Equal(t, EmptyCell, board[0])
}
