package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/Bloch-AI/fifa-dashboard/internal/datagen"
	"github.com/Bloch-AI/fifa-dashboard/pkg/logger"
)

// Default configuration constants.
const (
	defaultNumPlayers = 5000
	defaultSeed       = 1
	defaultTimeout    = 1 * time.Minute
)

func main() {
	var (
		output  = flag.String("output", "FIFA DATA.csv", "Output CSV file")
		count   = flag.Int("count", defaultNumPlayers, "Number of players to generate")
		seed    = flag.Int64("seed", defaultSeed, "Random seed; the same seed reproduces the same dataset")
		verbose = flag.Bool("verbose", false, "Enable debug logging")
	)
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	if *verbose {
		_ = logger.SetLevelString("debug")
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	gen := datagen.New(*seed)
	players := gen.Players(ctx, *count)

	if err := datagen.WriteCSV(ctx, *output, players); err != nil {
		os.Stderr.WriteString("failed to write dataset: " + err.Error() + "\n")
		return
	}

	logger.Get().Info(ctx, "dataset ready",
		logger.String("runID", gen.RunID()),
		logger.String("output", *output),
		logger.Int("players", *count),
	)
}
