package main

import (
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/vancomm/minesweeper-bot/internal/solver"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		log.Debug("\tws origin: ", r.Host)
		return true
	},
}

// handleWatchSolve plays one game live, pushing every solver event to the
// client as it happens, then the final run record, then closes.
func handleWatchSolve(w http.ResponseWriter, r *http.Request) {
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

	c, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("upgrade: ", err)
		return
	}
	defer c.Close()

	var wsErr error
	stream := solver.ObserverFunc(func(e solver.Event) {
		if wsErr != nil {
			return
		}
		wsErr = c.WriteJSON(e)
	})

	seed := params.SeedOrRandom()
	run, err := playRun(gameParams, seed, stream)
	if err != nil {
		log.Error("solver failed: ", err)
		return
	}
	if wsErr != nil {
		log.Warn("write: ", wsErr)
		return
	}

	if claims, ok := r.Context().Value(ctxPlayerClaims).(*PlayerClaims); ok {
		run.PlayerId = &claims.PlayerId
	}
	if err := pg.CreateSolverRun(r.Context(), run); err != nil {
		log.Error("unable to store solver run: ", err)
		return
	}
	if err := c.WriteJSON(runJSON(run)); err != nil {
		log.Warn("write: ", err)
		return
	}
	c.WriteMessage(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
	)
}
