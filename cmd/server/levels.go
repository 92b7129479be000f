package main

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/vancomm/colorsort-server/internal/colorsort"
	"github.com/vancomm/colorsort-server/internal/levels"
	"github.com/vancomm/colorsort-server/internal/repository"
)

func (app *application) handleListLevels(w http.ResponseWriter, r *http.Request) {
	stored, err := app.repo.ListLevels(r.Context())
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		app.internalError(w, "failed to list levels", slog.Any("error", err))
		return
	}
	dtos := make([]LevelDTO, 0, len(stored))
	for _, l := range stored {
		dtos = append(dtos, levelDTO(l))
	}
	app.replyWithJSON(w, dtos)
}

func (app *application) handleFetchLevel(w http.ResponseWriter, r *http.Request) {
	number, err := app.getLevelNumber(r)
	if err != nil {
		app.badRequest(w)
		return
	}
	stored, err := app.repo.FetchLevel(r.Context(), number)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			app.notFound(w)
		} else {
			app.internalError(w, "failed to fetch level", slog.Any("error", err))
		}
		return
	}
	app.replyWithJSON(w, levelDTO(stored))
}

// handleCheckLevel re-runs the solver on a stored level. An unsolvable
// stored level indicates a defect in the generation pipeline, so it is
// reported with its search size rather than hidden.
func (app *application) handleCheckLevel(w http.ResponseWriter, r *http.Request) {
	number, err := app.getLevelNumber(r)
	if err != nil {
		app.badRequest(w)
		return
	}
	stored, err := app.repo.FetchLevel(r.Context(), number)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			app.notFound(w)
		} else {
			app.internalError(w, "failed to fetch level", slog.Any("error", err))
		}
		return
	}
	lvl, err := stored.Decode()
	if err != nil {
		app.internalError(w, "failed to decode level state", slog.Any("error", err))
		return
	}
	board, err := lvl.Board()
	if err != nil {
		app.internalError(w, "stored level is malformed", slog.Any("error", err))
		return
	}
	solved, explored := colorsort.Solve(board, levels.DefaultMaxExplored)
	app.replyWithJSON(w, map[string]any{
		"number":   number,
		"solvable": solved,
		"explored": explored,
	})
}

// handlePredecessors runs back-propagation analysis on the solved form
// of a stored level's configuration, listing every board one legal
// forward move away from the solved state.
func (app *application) handlePredecessors(w http.ResponseWriter, r *http.Request) {
	number, err := app.getLevelNumber(r)
	if err != nil {
		app.badRequest(w)
		return
	}
	stored, err := app.repo.FetchLevel(r.Context(), number)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			app.notFound(w)
		} else {
			app.internalError(w, "failed to fetch level", slog.Any("error", err))
		}
		return
	}
	solvedBoard, err := colorsort.NewSolved(
		app.colors, stored.BaseCount, stored.BaseHeight,
	)
	if err != nil {
		app.internalError(w, "failed to rebuild solved board", slog.Any("error", err))
		return
	}
	preds, err := solvedBoard.BackPropagate()
	if err != nil {
		// cannot happen for a freshly built solved board
		app.internalError(w, "back propagation failed", slog.Any("error", err))
		return
	}
	dtos := make([]*levels.Level, 0, len(preds))
	for _, p := range preds {
		dtos = append(dtos, levels.FromBoard(p))
	}
	app.replyWithJSON(w, map[string]any{
		"number":       number,
		"predecessors": dtos,
	})
}

func (app *application) handleDeleteLevel(w http.ResponseWriter, r *http.Request) {
	if !app.requireAdmin(w, r) {
		return
	}
	number, err := app.getLevelNumber(r)
	if err != nil {
		app.badRequest(w)
		return
	}
	deleted, err := app.repo.DeleteLevel(r.Context(), number)
	if err != nil {
		app.internalError(w, "failed to delete level", slog.Any("error", err))
		return
	}
	if deleted == 0 {
		app.notFound(w)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (app *application) handleCreateLevel(w http.ResponseWriter, r *http.Request) {
	if !app.requireAdmin(w, r) {
		return
	}

	params, err := decodeGenParams(r.URL.Query())
	if err != nil {
		app.badRequest(w)
		return
	}

	g := levels.NewBuilder(app.colors, app.newRand(params.Number))
	g.Log = app.logger
	g.Strategy = app.gen.Strategy
	if params.Strategy != "" {
		strategy, err := colorsort.ParseStrategy(params.Strategy)
		if err != nil {
			app.badRequest(w)
			return
		}
		g.Strategy = strategy
	}

	settings := params.settings()
	lvl, err := g.BuildSettings(settings)
	if err != nil {
		if errors.Is(err, levels.ErrGenerationFailed) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			app.replyWithJSON(w, map[string]string{"error": err.Error()})
		} else {
			app.internalError(w, "failed to build level", slog.Any("error", err))
		}
		return
	}

	board, err := lvl.Board()
	if err != nil {
		app.internalError(w, "generated level is malformed", slog.Any("error", err))
		return
	}
	_, explored := colorsort.Solve(board, levels.DefaultMaxExplored)

	saveParams := repository.SaveLevelParams{
		Number:     params.Number,
		BaseCount:  settings.BasesCount,
		BaseHeight: settings.BaseHeight,
		Steps:      settings.Steps,
		Explored:   explored,
	}

	var stored *repository.Level
	if params.Overwrite {
		stored, err = app.repo.UpsertLevel(r.Context(), lvl, saveParams)
	} else {
		stored, err = app.repo.CreateLevel(r.Context(), lvl, saveParams)
	}
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) &&
			pgerrcode.IsIntegrityConstraintViolation(pgErr.Code) {
			w.WriteHeader(http.StatusConflict)
			app.replyWithJSON(w, map[string]string{
				"error": "level number already exists",
			})
			return
		}
		app.internalError(w, "failed to store level", slog.Any("error", err))
		return
	}

	app.replyWithJSON(w, levelDTO(stored))
}
