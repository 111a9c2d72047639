package gol

import (
	"fmt"
	"math/rand"

	"uk.ac.bris.cs/torusgol/util"
)

// Board is a dense toroidal grid of cells stored column-major.
// Cell (row, col) lives at cells[row+lda*col] and holds 0 (dead) or 1 (alive).
type Board struct {
	rows  int
	cols  int
	lda   int // Leading dimension, distance between the starts of two adjacent columns
	cells []uint8
}

// Make board object with empty data
func MakeBoard(rows, cols int) *Board {
	return MakeBoardWithStride(rows, cols, rows)
}

// Make board object with empty data and padded columns
func MakeBoardWithStride(rows, cols, lda int) *Board {
	if rows < 1 || cols < 1 || lda < rows {
		panic(fmt.Sprintf("gol: invalid board shape %dx%d (lda %d)", rows, cols, lda))
	}
	return &Board{
		rows:  rows,
		cols:  cols,
		lda:   lda,
		cells: make([]uint8, lda*cols),
	}
}

// Make board object by providing cell array
// Ownership of cell array stays with the caller, nothing is copied
func MakeBoardFromData(rows, cols, lda int, data []uint8) (*Board, error) {
	if rows < 1 || cols < 1 || lda < rows {
		return nil, fmt.Errorf("%w: %dx%d (lda %d)", ErrInvalidDimensions, rows, cols, lda)
	}
	// Last column only needs rows cells, padding after it is optional
	if need := lda*(cols-1) + rows; len(data) < need {
		return nil, fmt.Errorf("%w: %d cells given, %d needed", ErrInvalidDimensions, len(data), need)
	}
	return &Board{rows: rows, cols: cols, lda: lda, cells: data}, nil
}

// Make board object seeded with random cells alive with the given probability
func RandomBoard(rows, cols int, density float64, seed int64) *Board {
	board := MakeBoard(rows, cols)
	rng := rand.New(rand.NewSource(seed))
	for i := range board.cells {
		if rng.Float64() < density {
			board.cells[i] = 1
		}
	}
	return board
}

func (board *Board) Rows() int { return board.rows }

func (board *Board) Cols() int { return board.cols }

func (board *Board) LDA() int { return board.lda }

// Cells exposes the underlying storage, including any column padding.
func (board *Board) Cells() []uint8 { return board.cells }

func (board *Board) Get(row, col int) bool {
	return board.cells[row+board.lda*col] != 0
}

func (board *Board) Set(row, col int, alive bool) {
	if alive {
		board.cells[row+board.lda*col] = 1
	} else {
		board.cells[row+board.lda*col] = 0
	}
}

// Check if two boards have the same shape and the same alive cells (padding ignored)
func (board *Board) Equal(other *Board) bool {
	if board.rows != other.rows || board.cols != other.cols {
		return false
	}
	for j := 0; j != board.cols; j++ {
		a := board.column(j)
		b := other.column(j)
		for i := range a {
			if (a[i] != 0) != (b[i] != 0) {
				return false
			}
		}
	}
	return true
}

// Get coordinates of all alive cells, scanning row by row
func (board *Board) AliveCells() []util.Cell {
	cells := make([]util.Cell, 0)
	for i := 0; i != board.rows; i++ {
		for j := 0; j != board.cols; j++ {
			if board.cells[i+board.lda*j] != 0 {
				cells = append(cells, util.Cell{X: j, Y: i})
			}
		}
	}
	return cells
}

func (board *Board) AliveCount() int {
	count := 0
	for j := 0; j != board.cols; j++ {
		for _, value := range board.column(j) {
			if value != 0 {
				count++
			}
		}
	}
	return count
}

// Slice of a single column without padding
func (board *Board) column(j int) []uint8 {
	return board.cells[board.lda*j : board.lda*j+board.rows]
}

// Check the other board can be used as the second buffer of a run
func (board *Board) sameShape(other *Board) bool {
	return board.rows == other.rows && board.cols == other.cols
}

func (board *Board) String() string {
	return fmt.Sprintf("%dx%d", board.cols, board.rows)
}
