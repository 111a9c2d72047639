package gol

import (
	"errors"
	"fmt"
)

// Params provides the details of how to run the Game of Life.
type Params struct {
	Turns       int // Number of generations to compute
	Threads     int // Number of band workers, fixed for the whole run
	ImageWidth  int // Number of columns
	ImageHeight int // Number of rows
}

var (
	ErrInvalidDimensions = errors.New("gol: invalid board dimensions")
	ErrBoardMismatch     = errors.New("gol: boards do not match")
	ErrInvalidThreads    = errors.New("gol: thread count must be at least 1")
	ErrInvalidTurns      = errors.New("gol: turn count must not be negative")
	ErrBrokenBarrier     = errors.New("gol: barrier broken")
	ErrBadImage          = errors.New("gol: bad pgm image")
)

// Run computes p.Turns generations starting from inboard, using outboard as the second buffer.
// It returns whichever of the two boards holds the final generation: inboard when p.Turns is
// even, outboard when it is odd. Both boards stay owned by the caller.
func Run(p Params, outboard, inboard *Board) (*Board, error) {
	if err := p.check(outboard, inboard); err != nil {
		return nil, err
	}
	return distributor(p, outboard, inboard, stepBandSplit)
}

func (p Params) check(outboard, inboard *Board) error {
	if p.ImageWidth < 1 || p.ImageHeight < 1 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, p.ImageWidth, p.ImageHeight)
	}
	if p.Threads < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidThreads, p.Threads)
	}
	if p.Turns < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidTurns, p.Turns)
	}
	if inboard == nil || outboard == nil {
		return fmt.Errorf("%w: nil board", ErrBoardMismatch)
	}
	if inboard == outboard {
		return fmt.Errorf("%w: inboard and outboard are the same board", ErrBoardMismatch)
	}
	if inboard.cols != p.ImageWidth || inboard.rows != p.ImageHeight {
		return fmt.Errorf("%w: params %dx%d, inboard %s", ErrBoardMismatch, p.ImageWidth, p.ImageHeight, inboard)
	}
	if !inboard.sameShape(outboard) {
		return fmt.Errorf("%w: inboard %s, outboard %s", ErrBoardMismatch, inboard, outboard)
	}
	return nil
}
