package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/lmittmann/tint"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/colorsort-server/internal/colors"
	"github.com/vancomm/colorsort-server/internal/config"
	"github.com/vancomm/colorsort-server/internal/database"
	"github.com/vancomm/colorsort-server/internal/middleware"
	"github.com/vancomm/colorsort-server/internal/repository"
)

func main() {
	var handler slog.Handler = slog.NewJSONHandler(os.Stderr, nil)
	if config.Development() {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level: slog.LevelDebug,
		})
	}
	logger := slog.New(handler)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	db, err := database.ConnectAndMigrate(ctx)
	if err != nil {
		logger.Error("failed to connect and migrate db", slog.Any("error", err))
		return
	}
	defer db.Close()

	jwt, err := config.NewJWT()
	if err != nil {
		logger.Error("failed to read jwt config", slog.Any("error", err))
		return
	}

	cookies, err := config.NewCookies(jwt)
	if err != nil {
		logger.Error("failed to read cookies config", slog.Any("error", err))
		return
	}

	admin, err := config.NewAdmin()
	if err != nil {
		logger.Error("failed to read admin config", slog.Any("error", err))
		return
	}

	ws, err := config.NewWebSocket()
	if err != nil {
		logger.Error("failed to read ws config", slog.Any("error", err))
		return
	}

	gen, err := config.NewGeneration()
	if err != nil {
		logger.Error("failed to read generation config", slog.Any("error", err))
		return
	}

	palette, err := colors.Dir(os.DirFS("."), gen.ColorsDir)
	if err != nil {
		logger.Error("failed to load colors", slog.Any("error", err))
		return
	}
	if len(palette) == 0 {
		logger.Error("no color sprites found", slog.String("dir", gen.ColorsDir))
		return
	}

	app := &application{
		logger:  logger,
		repo:    repository.New(db),
		cookies: cookies,
		jwt:     jwt,
		admin:   admin,
		ws:      ws,
		gen:     gen,
		colors:  palette,
	}
	httpHandler := middleware.Wrap(
		app.Router(),
		middleware.Logging(logger),
		middleware.Cors(),
	)

	port := config.Port()
	server := &http.Server{
		Addr:         port,
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      httpHandler,
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to listen and serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		sCtx, cancel := context.WithTimeout(context.Background(), time.Second*15)
		defer cancel()
		return server.Shutdown(sCtx)
	})

	logger.Info(fmt.Sprintf("colorsort server listening at http://localhost%s", port))

	if err := g.Wait(); err != nil {
		logger.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}
}
