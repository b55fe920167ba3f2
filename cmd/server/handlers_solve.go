package main

import (
	"errors"
	"hash/maphash"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/schema"
	"github.com/jackc/pgx/v5"

	"github.com/vancomm/minesweeper-bot/internal/mines"
	"github.com/vancomm/minesweeper-bot/internal/solver"
)

var dec = schema.NewDecoder()

func init() {
	dec.IgnoreUnknownKeys(true)
}

type SolveParams struct {
	Width     int    `schema:"width,required"`
	Height    int    `schema:"height,required"`
	MineCount int    `schema:"mine_count,required"`
	FloodFill bool   `schema:"flood_fill"`
	Seed      uint64 `schema:"seed"`
}

func (p SolveParams) GameParams() mines.GameParams {
	return mines.GameParams{
		Width:     p.Width,
		Height:    p.Height,
		MineCount: p.MineCount,
		FloodFill: p.FloodFill,
	}
}

func (p SolveParams) SeedOrRandom() uint64 {
	if p.Seed != 0 {
		return p.Seed
	}
	return new(maphash.Hash).Sum64()
}

type SolverRunJSON struct {
	RunId     string     `json:"run_id"`
	Width     int        `json:"width"`
	Height    int        `json:"height"`
	MineCount int        `json:"mine_count"`
	Seed      string     `json:"seed"`
	Status    string     `json:"status"`
	Steps     int        `json:"steps"`
	Guesses   int        `json:"guesses"`
	Grid      mines.Grid `json:"grid"`
	StartedAt int64      `json:"started_at"`
	EndedAt   int64      `json:"ended_at"`
}

func runJSON(run *SolverRun) SolverRunJSON {
	return SolverRunJSON{
		RunId:     strconv.Itoa(run.RunId),
		Width:     run.Params.Width,
		Height:    run.Params.Height,
		MineCount: run.Params.MineCount,
		Seed:      strconv.FormatUint(run.Seed, 10),
		Status:    run.Status.String(),
		Steps:     run.Steps,
		Guesses:   run.Guesses,
		Grid:      run.Grid,
		StartedAt: run.StartedAt.UnixMilli(),
		EndedAt:   run.EndedAt.UnixMilli(),
	}
}

// playRun plays one full game and returns its record, not yet persisted.
func playRun(params mines.GameParams, seed uint64, observers ...solver.Observer) (*SolverRun, error) {
	rnd := rand.New(rand.NewPCG(seed, seed+1))
	field := mines.NewMinefield(params, rnd)
	board := mines.NewBoard(params, field)

	guesses := 0
	countGuesses := solver.ObserverFunc(func(e solver.Event) {
		if e.Action.Guess {
			guesses++
		}
	})

	startedAt := time.Now().UTC()
	s := solver.New(board, rnd, append(observers, countGuesses)...)
	status, err := s.Run()
	if err != nil {
		return nil, err
	}

	return &SolverRun{
		Params:    params,
		Seed:      seed,
		Status:    status,
		Steps:     s.Steps(),
		Guesses:   guesses,
		Grid:      board.Grid(),
		StartedAt: startedAt,
		EndedAt:   time.Now().UTC(),
	}, nil
}

func handleSolve(w http.ResponseWriter, r *http.Request) {
	var params SolveParams
	if err := dec.Decode(&params, r.URL.Query()); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	gameParams := params.GameParams()
	if err := gameParams.Validate(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(err.Error()))
		return
	}

	seed := params.SeedOrRandom()
	log.WithFields(map[string]any{
		"params": gameParams.Seed(),
		"seed":   seed,
	}).Info("solve request")

	run, err := playRun(gameParams, seed)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		log.Error("solver failed: ", err)
		return
	}

	if claims, ok := r.Context().Value(ctxPlayerClaims).(*PlayerClaims); ok {
		run.PlayerId = &claims.PlayerId
		refreshPlayerCookies(w, *claims)
	}
	if err := pg.CreateSolverRun(r.Context(), run); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		log.Error("unable to store solver run: ", err)
		return
	}
	if _, err := sendJSON(w, runJSON(run)); err != nil {
		log.Error(err)
	}
}

func handleGetRun(w http.ResponseWriter, r *http.Request) {
	runId, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	run, err := pg.GetSolverRun(r.Context(), runId)
	if errors.Is(err, pgx.ErrNoRows) {
		w.WriteHeader(http.StatusNotFound)
		return
	} else if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		log.Error(err)
		return
	}
	if _, err := sendJSON(w, runJSON(run)); err != nil {
		log.Error(err)
	}
}

func handleGetRecords(w http.ResponseWriter, r *http.Request) {
	records, err := pg.GetRecords(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		log.Error(err)
		return
	}
	if _, err := sendJSON(w, records); err != nil {
		log.Error(err)
	}
}
