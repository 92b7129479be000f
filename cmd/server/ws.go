package main

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/vancomm/colorsort-server/internal/colorsort"
	"github.com/vancomm/colorsort-server/internal/levels"
	"github.com/vancomm/colorsort-server/internal/repository"
)

type generateProgress struct {
	Number   int    `json:"number"`
	Total    int    `json:"total"`
	Explored int    `json:"explored,omitempty"`
	Done     bool   `json:"done"`
	Error    string `json:"error,omitempty"`
}

// wsGenerate streams batch generation progress: the full schedule is
// regenerated level by level and every accepted level is upserted into
// the store as soon as it is built.
func (app *application) wsGenerate(w http.ResponseWriter, r *http.Request) {
	if !app.requireAdmin(w, r) {
		return
	}

	c, err := app.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		app.logger.Error("ws upgrade failed", slog.Any("error", err))
		return
	}
	defer c.Close()

	g := levels.NewBuilder(app.colors, nil)
	g.Log = app.logger
	g.Strategy = app.gen.Strategy

	total := app.gen.LevelCount
	for n := range total {
		g.Rand = app.newRand(n)
		settings := levels.DefaultSchedule.At(n)
		lvl, err := g.BuildSettings(settings)
		if err != nil {
			c.WriteJSON(generateProgress{Number: n, Total: total, Error: err.Error()})
			return
		}

		board, err := lvl.Board()
		if err != nil {
			c.WriteJSON(generateProgress{Number: n, Total: total, Error: err.Error()})
			return
		}
		_, explored := colorsort.Solve(board, levels.DefaultMaxExplored)

		_, err = app.repo.UpsertLevel(r.Context(), lvl, repository.SaveLevelParams{
			Number:     n,
			BaseCount:  settings.BasesCount,
			BaseHeight: settings.BaseHeight,
			Steps:      settings.Steps,
			Explored:   explored,
		})
		if err != nil {
			c.WriteJSON(generateProgress{Number: n, Total: total, Error: err.Error()})
			return
		}

		err = c.WriteJSON(generateProgress{
			Number: n, Total: total, Explored: explored, Done: n == total-1,
		})
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				app.logger.Warn("ws write failed", slog.Any("error", err))
			}
			return
		}
	}
}
