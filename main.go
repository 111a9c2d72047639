package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime/pprof"
	"time"

	"uk.ac.bris.cs/torusgol/gol"
)

type options struct {
	input      string
	output     string
	density    float64
	seed       int64
	cpuprofile string
}

func main() {
	var params gol.Params
	var opts options

	flag.IntVar(&params.Threads, "t", 8, "Specify the number of worker threads to use. Defaults to 8.")
	flag.IntVar(&params.ImageWidth, "w", 512, "Specify the width of the image. Defaults to 512.")
	flag.IntVar(&params.ImageHeight, "h", 512, "Specify the height of the image. Defaults to 512.")
	flag.IntVar(&params.Turns, "turns", 100, "Specify the number of turns to process. Defaults to 100.")
	flag.StringVar(&opts.input, "in", "images", "Directory holding the initial <w>x<h>.pgm image.")
	flag.StringVar(&opts.output, "out", "out", "Directory the final <w>x<h>x<turns>.pgm image is written to.")
	flag.Float64Var(&opts.density, "random", 0, "Start from a random board with this fraction of alive cells instead of an image.")
	flag.Int64Var(&opts.seed, "seed", 1, "Seed of the random board.")
	flag.StringVar(&opts.cpuprofile, "cpuprofile", "", "Write a CPU profile of the run to this file.")
	flag.Parse()

	if opts.cpuprofile != "" {
		file, err := os.Create(opts.cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		defer file.Close()
		if err := pprof.StartCPUProfile(file); err != nil {
			log.Fatal(err)
		}
		defer pprof.StopCPUProfile()
	}

	if err := run(params, opts); err != nil {
		pprof.StopCPUProfile()
		log.Fatal(err)
	}
}

func run(params gol.Params, opts options) error {

	fmt.Println("Threads:", params.Threads)
	fmt.Println("Width:", params.ImageWidth)
	fmt.Println("Height:", params.ImageHeight)

	// Load initial board
	var inboard *gol.Board
	if opts.density > 0 {
		inboard = gol.RandomBoard(params.ImageHeight, params.ImageWidth, opts.density, opts.seed)
	} else {
		board, err := gol.ReadPgm(filepath.Join(opts.input, gol.InputName(params)+".pgm"), params)
		if err != nil {
			return err
		}
		inboard = board
	}
	outboard := gol.MakeBoard(params.ImageHeight, params.ImageWidth)

	log.Printf("Run: %dx%dx%d-%d", params.ImageWidth, params.ImageHeight, params.Turns, params.Threads)
	start := time.Now()
	final, err := gol.Run(params, outboard, inboard)
	if err != nil {
		return fmt.Errorf("run %dx%dx%d-%d: %w",
			params.ImageWidth, params.ImageHeight, params.Turns, params.Threads, err)
	}
	elapsed := time.Since(start)
	log.Printf("Completed %d turns in %v, %d cells alive", params.Turns, elapsed, final.AliveCount())

	// Write final board
	filename := filepath.Join(opts.output, gol.OutputName(params)+".pgm")
	if err := gol.WritePgm(filename, final); err != nil {
		return err
	}
	fmt.Println("File", filename, "output done!")
	return nil
}
