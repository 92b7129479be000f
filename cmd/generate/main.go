// Command generate builds the full level set and writes it to a JSON
// file, then re-verifies every written level with the solver. An
// accepted level failing verification means the scrambler and solver
// disagree, which is a defect, so the whole run fails.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/colorsort-server/internal/colors"
	"github.com/vancomm/colorsort-server/internal/colorsort"
	"github.com/vancomm/colorsort-server/internal/levels"
)

var (
	log = logrus.New()

	levelCount   int
	outputPath   string
	colorsDir    string
	seed         uint64
	strategyName string
	workers      int
	logFilePath  string
	verbose      bool
)

func init() {
	flag.IntVar(&levelCount, "count", levels.DefaultLevelCount, "number of levels to generate")
	flag.StringVar(&outputPath, "out", "levels.json", "output file path")
	flag.StringVar(&colorsDir, "colors-dir", "www/img", "directory with object_*.png sprites")
	flag.Uint64Var(&seed, "seed", 0, "random seed (levels are reproducible per seed)")
	flag.StringVar(&strategyName, "strategy", "uniform", "scramble strategy: uniform or per-source")
	flag.IntVar(&workers, "workers", 4, "concurrent generation tasks")
	flag.StringVar(&logFilePath, "log-file", "", "also log to this rotating file")
	flag.BoolVar(&verbose, "v", false, "debug logging")
}

func setupLogging() {
	logLevel := logrus.InfoLevel
	if verbose {
		logLevel = logrus.DebugLevel
	}
	log.SetLevel(logLevel)
	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})

	if logFilePath != "" {
		hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   logFilePath,
			MaxSize:    10, // MB
			MaxBackups: 3,
			MaxAge:     28, // days
			Level:      logLevel,
			Formatter:  &logrus.JSONFormatter{},
		})
		if err != nil {
			log.Fatal("unable to create log file hook: ", err)
		}
		log.AddHook(hook)
	}
}

func main() {
	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	flag.Parse()
	setupLogging()

	strategy, err := colorsort.ParseStrategy(strategyName)
	if err != nil {
		log.Fatal(err)
	}

	palette, err := colors.Dir(os.DirFS("."), colorsDir)
	if err != nil {
		log.Fatal("unable to load colors: ", err)
	}
	if len(palette) == 0 {
		log.Fatalf("no object_*.png sprites found in %s", colorsDir)
	}
	log.Infof("loaded %d colors from %s", len(palette), colorsDir)

	built := make([]*levels.Level, levelCount)

	g, gCtx := errgroup.WithContext(mainCtx)
	g.SetLimit(workers)
	for n := range levelCount {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			// each task owns its rand so no synchronization is needed;
			// seeding by level number keeps runs reproducible
			builder := levels.NewBuilder(
				palette, rand.New(rand.NewPCG(seed, uint64(n))),
			)
			builder.Strategy = strategy

			lvl, err := builder.Build(n, levels.DefaultSchedule)
			if err != nil {
				return err
			}
			built[n] = lvl
			log.Debugf("built level %d", n)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal("generation failed: ", err)
	}

	payload, err := json.MarshalIndent(built, "", "  ")
	if err != nil {
		log.Fatal("unable to marshal levels: ", err)
	}
	if err := os.WriteFile(outputPath, payload, 0644); err != nil {
		log.Fatal("unable to write output: ", err)
	}
	log.Infof("wrote %d level(s) to %s", levelCount, outputPath)

	for n, lvl := range built {
		board, err := lvl.Board()
		if err != nil {
			log.Fatalf("level %d is malformed: %s", n+1, err)
		}
		solved, explored := colorsort.Solve(board, 0)
		if !solved {
			log.Fatalf(
				"level %d has no solution after exploring %d options",
				n+1, explored,
			)
		}
		log.Infof("level %d solved after exploring %d options", n+1, explored)
	}
}
