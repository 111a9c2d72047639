package gol

import (
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Band is a contiguous range of columns owned by one worker
type Band struct {
	Start int // First column
	End   int // Last column (not inclusive)
}

func (band Band) Width() int {
	return band.End - band.Start
}

// Computes next generation of the columns in band, reading current and writing next
type bandKernel func(current, next *Board, band Band)

type WorkerParams struct {
	turns   int        // Number of generations to compute
	band    Band       // Only columns written by this worker
	boards  [2]*Board  // Generation g is read from boards[g&1] and written to boards[(g+1)&1]
	barrier *Barrier   // Shared by every worker of the run
	step    bandKernel // Band kernel
}

// distributor divides the columns between workers and waits for all of them to finish.
func distributor(p Params, outboard, inboard *Board, step bandKernel) (*Board, error) {

	boards := [2]*Board{inboard, outboard}
	if p.Turns == 0 {
		return inboard, nil
	}

	// Create goroutines
	bands := divideToBands(p.ImageWidth, p.Threads)
	barrier := NewBarrier(len(bands))
	results := make([]error, len(bands))
	var group errgroup.Group
	for i := 0; i != len(bands); i++ {
		thread_index := i
		wp := WorkerParams{
			turns:   p.Turns,
			band:    bands[i],
			boards:  boards,
			barrier: barrier,
			step:    step,
		}
		group.Go(func() error {
			results[thread_index] = worker(wp)
			return results[thread_index]
		})
	}

	// Wait until every worker has passed its last barrier
	if err := group.Wait(); err != nil {
		// Report the worker that broke the barrier rather than those released by it
		for _, result := range results {
			if result != nil && !errors.Is(result, ErrBrokenBarrier) {
				return nil, result
			}
		}
		return nil, err
	}

	// Roles swapped once per generation
	return boards[p.Turns&1], nil
}

func worker(wp WorkerParams) (err error) {

	turn := 0
	defer func() {
		if r := recover(); r != nil {
			// Nobody else can pass the barrier without this worker
			wp.barrier.Break()
			err = fmt.Errorf("gol: worker for columns [%d, %d) failed at turn %d: %v",
				wp.band.Start, wp.band.End, turn, r)
		}
	}()

	// Work for each turn
	for ; turn != wp.turns; turn++ {
		wp.step(wp.boards[turn&1], wp.boards[(turn+1)&1], wp.band)

		// Wait for other workers completing current turn
		if err := wp.barrier.Wait(); err != nil {
			return fmt.Errorf("gol: worker for columns [%d, %d) stopped at turn %d: %w",
				wp.band.Start, wp.band.End, turn, err)
		}
	}
	return nil
}

// Divide columns into bands of equal width, the last band takes the remainder.
// With more threads than columns every band but the last is empty.
func divideToBands(ncols, threads int) []Band {
	bands := make([]Band, threads)
	width := ncols / threads
	for i := 0; i != threads; i++ {
		bands[i] = Band{Start: i * width, End: (i + 1) * width}
	}
	bands[threads-1].End = ncols
	return bands
}

// Band kernel with the row wrap taken out of the inner loop.
// Column wrap is resolved once per column, the first and last rows are handled
// separately, and interior rows are visited two at a time reusing row sums.
func stepBandSplit(current, next *Board, band Band) {
	ncols := current.cols
	for j := band.Start; j != band.End; j++ {
		jwest := j - 1
		jeast := j + 1
		if j == 0 {
			jwest = ncols - 1
		}
		if j == ncols-1 {
			jeast = 0
		}
		stepColumn(current.column(jwest), current.column(j), current.column(jeast), next.column(j))
	}
}

func stepColumn(west, centre, east, out []uint8) {
	nrows := len(centre)
	last := nrows - 1
	west = west[:nrows]
	east = east[:nrows]
	out = out[:nrows]

	// Single row, north and south are the row itself
	if nrows == 1 {
		sum := west[0] + centre[0] + east[0]
		out[0] = alive(centre[0], 3*sum-centre[0])
		return
	}

	// Sums of three horizontally adjacent cells
	top := west[0] + centre[0] + east[0]
	bottom := west[last] + centre[last] + east[last]

	// First row, north wraps to the last row
	above := top
	middle := west[1] + centre[1] + east[1]
	out[0] = alive(centre[0], bottom+top+middle-centre[0])

	// Interior rows, two per iteration
	i := 1
	for ; i+1 < last; i += 2 {
		below := west[i+1] + centre[i+1] + east[i+1]
		below_below := west[i+2] + centre[i+2] + east[i+2]
		out[i] = alive(centre[i], above+middle+below-centre[i])
		out[i+1] = alive(centre[i+1], middle+below+below_below-centre[i+1])
		above, middle = below, below_below
	}
	if i < last {
		below := west[i+1] + centre[i+1] + east[i+1]
		out[i] = alive(centre[i], above+middle+below-centre[i])
	}

	// Last row, south wraps to the first row
	penultimate := west[last-1] + centre[last-1] + east[last-1]
	out[last] = alive(centre[last], penultimate+bottom+top-centre[last])
}

// Band kernel applying modulo wrap to every neighbour
func stepBandModulo(current, next *Board, band Band) {
	nrows := current.rows
	ncols := current.cols
	for j := band.Start; j != band.End; j++ {
		for i := 0; i != nrows; i++ {
			var neighbours uint8
			for dj := -1; dj <= 1; dj++ {
				column := (j + dj + ncols) % ncols
				for di := -1; di <= 1; di++ {
					if di == 0 && dj == 0 {
						continue
					}
					neighbours += current.cells[(i+di+nrows)%nrows+current.lda*column]
				}
			}
			next.cells[i+next.lda*j] = alive(current.cells[i+current.lda*j], neighbours)
		}
	}
}
