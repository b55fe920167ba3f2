package main

import (
	"flag"
	"fmt"
	"hash/maphash"
	"math/rand/v2"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-bot/internal/mines"
	"github.com/vancomm/minesweeper-bot/internal/solver"
)

var log = logrus.New()

var presets = map[string]mines.GameParams{
	"beginner":     {Width: 9, Height: 9, MineCount: 10},
	"intermediate": {Width: 16, Height: 16, MineCount: 40},
	"expert":       {Width: 30, Height: 16, MineCount: 99},
}

var (
	preset  string
	width   int
	height  int
	mineCnt int
	flood   bool
	safe    bool
	games   int
	seed    uint64
	verbose bool
)

func init() {
	flag.StringVar(&preset, "preset", "", "board preset (beginner, intermediate, expert)")
	flag.IntVar(&width, "width", 9, "board width")
	flag.IntVar(&height, "height", 9, "board height")
	flag.IntVar(&mineCnt, "mines", 10, "mine count")
	flag.BoolVar(&flood, "flood", false, "auto-open neighbors of zero-count cells")
	flag.BoolVar(&safe, "safe", false, "guarantee a mine-free first reveal")
	flag.IntVar(&games, "games", 1, "number of games to play")
	flag.Uint64Var(&seed, "seed", 0, "RNG seed (0 = random)")
	flag.BoolVar(&verbose, "v", false, "log every action")
}

func gameParams() (mines.GameParams, error) {
	params := mines.GameParams{
		Width: width, Height: height, MineCount: mineCnt, FloodFill: flood,
	}
	if preset != "" {
		p, ok := presets[preset]
		if !ok {
			return params, fmt.Errorf("unknown preset %q", preset)
		}
		p.FloodFill = flood
		params = p
	}
	return params, params.Validate()
}

func playGame(params mines.GameParams, rnd *rand.Rand) solver.Status {
	var field *mines.Minefield
	var start *mines.Point
	if safe {
		start = &mines.Point{X: rnd.IntN(params.Width), Y: rnd.IntN(params.Height)}
		field = mines.NewSafeMinefield(params, start.X, start.Y, rnd)
	} else {
		field = mines.NewMinefield(params, rnd)
	}
	board := mines.NewBoard(params, field)
	if start != nil {
		if _, err := board.Reveal(start.X, start.Y); err != nil {
			log.Fatal("opening move failed: ", err)
		}
	}

	var observers []solver.Observer
	if verbose {
		observers = append(observers, solver.ObserverFunc(func(e solver.Event) {
			log.WithFields(logrus.Fields{
				"step":   e.Step,
				"cell":   e.Action.Cell.String(),
				"guess":  e.Action.Guess,
				"risk":   e.Action.Risk,
				"status": e.Status.String(),
			}).Info(e.Action.Kind.String())
		}))
	}

	s := solver.New(board, rnd, observers...)
	status, err := s.Run()
	if err != nil {
		log.Fatal("solver failed: ", err)
	}

	if verbose {
		fmt.Print(board.String())
	}
	log.WithFields(logrus.Fields{
		"steps":  s.Steps(),
		"status": status.String(),
	}).Info("game over")
	return status
}

func main() {
	flag.Parse()

	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	params, err := gameParams()
	if err != nil {
		log.Error(err)
		flag.Usage()
		os.Exit(2)
	}

	if seed == 0 {
		seed = new(maphash.Hash).Sum64()
	}
	rnd := rand.New(rand.NewPCG(seed, seed+1))

	log.WithFields(logrus.Fields{
		"params": params.Seed(),
		"games":  games,
		"seed":   seed,
	}).Info("starting")

	won := 0
	for range games {
		if playGame(params, rnd) == solver.Won {
			won++
		}
	}

	fmt.Printf("won %d of %d games (%.1f%%)\n",
		won, games, 100*float64(won)/float64(games))
}
