package datagen

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/Bloch-AI/fifa-dashboard/internal/domain/model"
	"github.com/Bloch-AI/fifa-dashboard/pkg/logger"
)

const outputFilePermission = 0o600

// WriteCSV writes players to path using the reference column layout,
// including the trailing space on the "Value " header, so the ingest
// normalization path is exercised end to end.
func WriteCSV(ctx context.Context, path string, players []model.Player) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, outputFilePermission)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"Name", "Age", "OverallRating", "Nationality", "Club", "Value ", "Position"}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, p := range players {
		row := []string{
			p.Name,
			strconv.Itoa(p.Age),
			strconv.Itoa(p.OverallRating),
			p.Nationality,
			p.Club,
			strconv.FormatFloat(p.Value, 'f', 2, 64),
			p.Attributes["Position"],
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}

	logger.Get().Info(ctx, "wrote dataset",
		logger.String("path", path),
		logger.Int("rows", len(players)),
	)
	return nil
}
