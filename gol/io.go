package gol

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Pixel values used in pgm images
const (
	pixelDead  = 0
	pixelAlive = 255
)

// ReadPgm loads a P5 pgm image into a new board. The image must be width x height,
// every non-zero pixel becomes an alive cell.
func ReadPgm(filename string, p Params) (*Board, error) {

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	// Header is four whitespace separated fields: magic, width, height, maxval
	fields := strings.Fields(string(data))
	if len(fields) < 4 {
		return nil, fmt.Errorf("%w: %s: truncated header", ErrBadImage, filename)
	}
	if fields[0] != "P5" {
		return nil, fmt.Errorf("%w: %s: not a pgm file", ErrBadImage, filename)
	}

	width, _ := strconv.Atoi(fields[1])
	if width != p.ImageWidth {
		return nil, fmt.Errorf("%w: %s: width %s, expected %d", ErrBadImage, filename, fields[1], p.ImageWidth)
	}

	height, _ := strconv.Atoi(fields[2])
	if height != p.ImageHeight {
		return nil, fmt.Errorf("%w: %s: height %s, expected %d", ErrBadImage, filename, fields[2], p.ImageHeight)
	}

	maxval, _ := strconv.Atoi(fields[3])
	if maxval != pixelAlive {
		return nil, fmt.Errorf("%w: %s: maxval %s", ErrBadImage, filename, fields[3])
	}

	// Pixel data is the trailing width*height bytes, one row after another
	if len(data) < width*height {
		return nil, fmt.Errorf("%w: %s: truncated pixel data", ErrBadImage, filename)
	}
	pixels := data[len(data)-width*height:]

	board := MakeBoard(height, width)
	for y := 0; y != height; y++ {
		for x := 0; x != width; x++ {
			if pixels[y*width+x] != pixelDead {
				board.cells[y+board.lda*x] = 1
			}
		}
	}
	return board, nil
}

// WritePgm stores a board as a P5 pgm image, creating the parent directory if needed.
func WritePgm(filename string, board *Board) error {

	if err := os.MkdirAll(filepath.Dir(filename), os.ModePerm); err != nil {
		return err
	}

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	_, _ = fmt.Fprintf(writer, "P5\n%d %d\n%d\n", board.cols, board.rows, pixelAlive)

	// Images are stored row by row, boards column by column
	row := make([]byte, board.cols)
	for y := 0; y != board.rows; y++ {
		for x := 0; x != board.cols; x++ {
			if board.cells[y+board.lda*x] != 0 {
				row[x] = pixelAlive
			} else {
				row[x] = pixelDead
			}
		}
		if _, err := writer.Write(row); err != nil {
			return err
		}
	}

	if err := writer.Flush(); err != nil {
		return err
	}
	return file.Sync()
}

// Name of the image holding the initial board, e.g. 512x512
func InputName(p Params) string {
	return fmt.Sprintf("%dx%d", p.ImageWidth, p.ImageHeight)
}

// Name of the image holding the board after p.Turns generations, e.g. 512x512x1000
func OutputName(p Params) string {
	return fmt.Sprintf("%dx%dx%d", p.ImageWidth, p.ImageHeight, p.Turns)
}
