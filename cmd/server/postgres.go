package main

import (
	"bytes"
	"context"
	"encoding/gob"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vancomm/minesweeper-bot/internal/mines"
	"github.com/vancomm/minesweeper-bot/internal/solver"
)

type postgres struct {
	db *pgxpool.Pool
}

func NewPostgres(ctx context.Context, dbUrl string) (*postgres, error) {
	poolConfig, err := pgxpool.ParseConfig(dbUrl)
	if err != nil {
		return nil, err
	}
	db, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, err
	}
	return &postgres{db}, nil
}

func (pg *postgres) Ping(ctx context.Context) error {
	return pg.db.Ping(ctx)
}

func (pg *postgres) Close() {
	pg.db.Close()
}

// pgx runs Exec over the extended protocol, one statement at a time
func (pg *postgres) Migrate(ctx context.Context) error {
	for _, stmt := range []string{`
		CREATE TABLE IF NOT EXISTS player (
			player_id     serial PRIMARY KEY,
			username      text UNIQUE NOT NULL,
			password_hash bytea NOT NULL,
			created_at    timestamptz NOT NULL DEFAULT now()
		);`, `
		CREATE TABLE IF NOT EXISTS solver_run (
			solver_run_id serial PRIMARY KEY,
			player_id     int REFERENCES player,
			width         int NOT NULL,
			height        int NOT NULL,
			mine_count    int NOT NULL,
			seed          bigint NOT NULL,
			status        text NOT NULL,
			steps         int NOT NULL,
			guesses       int NOT NULL,
			grid          bytea NOT NULL,
			started_at    timestamptz NOT NULL DEFAULT now(),
			ended_at      timestamptz NOT NULL
		);`,
	} {
		if _, err := pg.db.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

type Player struct {
	PlayerId     int    `db:"player_id" json:"player_id"`
	Username     string `db:"username" json:"username"`
	PasswordHash []byte `db:"password_hash" json:"-"`
}

func (pg *postgres) CreatePlayer(
	ctx context.Context, username string, passwordHash []byte,
) (*Player, error) {
	var playerId int
	if err := pg.db.QueryRow(ctx, `
		INSERT INTO player (
			username, password_hash
		)
		VALUES (
			@username, @password_hash
		)
		RETURNING player_id`,
		pgx.NamedArgs{
			"username":      username,
			"password_hash": passwordHash,
		}).Scan(&playerId); err != nil {
		return nil, err
	}
	player := &Player{
		PlayerId: playerId,
		Username: username,
	}
	return player, nil
}

func (pg *postgres) GetPlayer(
	ctx context.Context, username string,
) (*Player, error) {
	rows, err := pg.db.Query(ctx, `
		SELECT player_id, username, password_hash
		FROM player
		WHERE username = $1;`,
		username)
	if err != nil {
		return nil, err
	}
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[Player])
}

type SolverRun struct {
	RunId     int
	PlayerId  *int
	Params    mines.GameParams
	Seed      uint64
	Status    solver.Status
	Steps     int
	Guesses   int
	Grid      mines.Grid
	StartedAt time.Time
	EndedAt   time.Time
}

func (pg *postgres) CreateSolverRun(
	ctx context.Context, run *SolverRun,
) error {
	var gridBuf bytes.Buffer
	if err := gob.NewEncoder(&gridBuf).Encode(run.Grid); err != nil {
		return err
	}
	return pg.db.QueryRow(ctx, `
		INSERT INTO solver_run (
			player_id, width, height, mine_count, seed,
			status, steps, guesses, grid, started_at, ended_at
		)
		VALUES (
			@player_id, @width, @height, @mine_count, @seed,
			@status, @steps, @guesses, @grid, @started_at, @ended_at
		)
		RETURNING solver_run_id;`,
		pgx.NamedArgs{
			"player_id":  run.PlayerId,
			"width":      run.Params.Width,
			"height":     run.Params.Height,
			"mine_count": run.Params.MineCount,
			"seed":       int64(run.Seed),
			"status":     run.Status.String(),
			"steps":      run.Steps,
			"guesses":    run.Guesses,
			"grid":       gridBuf.Bytes(),
			"started_at": run.StartedAt,
			"ended_at":   run.EndedAt,
		}).Scan(&run.RunId)
}

func (pg *postgres) GetSolverRun(
	ctx context.Context, runId int,
) (*SolverRun, error) {
	var (
		run       = &SolverRun{RunId: runId}
		seed      int64
		status    string
		gridBytes []byte
	)
	if err := pg.db.QueryRow(ctx, `
		SELECT player_id, width, height, mine_count, seed,
			status, steps, guesses, grid, started_at, ended_at
		FROM solver_run
		WHERE solver_run_id = $1;`,
		runId).Scan(
		&run.PlayerId, &run.Params.Width, &run.Params.Height,
		&run.Params.MineCount, &seed, &status, &run.Steps,
		&run.Guesses, &gridBytes, &run.StartedAt, &run.EndedAt,
	); err != nil {
		return nil, err
	}
	run.Seed = uint64(seed)
	switch status {
	case solver.Won.String():
		run.Status = solver.Won
	case solver.Lost.String():
		run.Status = solver.Lost
	}
	if err := gob.NewDecoder(
		bytes.NewReader(gridBytes),
	).Decode(&run.Grid); err != nil {
		return nil, err
	}
	return run, nil
}

type Record struct {
	Width     int     `json:"width"`
	Height    int     `json:"height"`
	MineCount int     `json:"mine_count"`
	Games     int     `json:"games"`
	Wins      int     `json:"wins"`
	WinRate   float64 `json:"win_rate"`
	AvgSteps  float64 `json:"avg_steps"`
}

func (pg *postgres) GetRecords(ctx context.Context) ([]Record, error) {
	rows, err := pg.db.Query(ctx, `
		SELECT width, height, mine_count,
			count(*) AS games,
			count(*) FILTER (WHERE status = 'won') AS wins,
			avg(steps) AS avg_steps
		FROM solver_run
		GROUP BY width, height, mine_count
		ORDER BY width * height, mine_count;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(
			&r.Width, &r.Height, &r.MineCount,
			&r.Games, &r.Wins, &r.AvgSteps,
		); err != nil {
			return nil, err
		}
		if r.Games > 0 {
			r.WinRate = float64(r.Wins) / float64(r.Games)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
