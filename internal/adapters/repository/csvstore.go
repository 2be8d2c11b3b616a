package repository

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Bloch-AI/fifa-dashboard/internal/domain/model"
	"github.com/Bloch-AI/fifa-dashboard/pkg/logger"
	"github.com/Bloch-AI/fifa-dashboard/pkg/metrics"
)

// Columns the pipeline reads. The reference data carries a trailing space on
// "Value "; headers are whitespace-trimmed on ingest so lookups use the clean
// names below.
const (
	colName        = "Name"
	colAge         = "Age"
	colRating      = "OverallRating"
	colNationality = "Nationality"
	colClub        = "Club"
	colValue       = "Value"
)

var requiredColumns = []string{colName, colAge, colRating, colNationality, colClub, colValue}

// CSVStore loads the player CSV exactly once and serves it unchanged for the
// rest of the process lifetime. The one-time load path is guarded so
// overlapping interactions cannot re-enter it.
type CSVStore struct {
	path          string
	skipMalformed bool
	log           logger.Logger

	once    sync.Once
	loadErr error

	players       []model.Player
	nationalities []string
	ageMin        int
	ageMax        int
	ratingMin     int
	ratingMax     int
}

// NewCSVStore creates a store for the given file path. Load must be called
// before any read.
func NewCSVStore(path string, opts ...Option) *CSVStore {
	s := &CSVStore{path: path}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads and parses the file. It runs at most once; repeated calls return
// the first outcome without touching the file again.
func (s *CSVStore) Load(ctx context.Context) error {
	s.once.Do(func() {
		start := time.Now()
		s.loadErr = s.load(ctx)
		if s.loadErr == nil {
			metrics.RecordDatasetLoadDuration(float64(time.Since(start).Milliseconds()))
			metrics.UpdateDatasetRows(len(s.players))
		}
	})
	return s.loadErr
}

func (s *CSVStore) load(ctx context.Context) error {
	f, err := os.Open(s.path)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrFileAccess, s.path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)

	header, err := r.Read()
	if err != nil {
		return fmt.Errorf("%w: reading header: %w", ErrFileAccess, err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	colIdx := make(map[string]int, len(header))
	for i, name := range header {
		if _, dup := colIdx[name]; !dup {
			colIdx[name] = i
		}
	}
	for _, name := range requiredColumns {
		if _, ok := colIdx[name]; !ok {
			return fmt.Errorf("%w: missing column %q", ErrSchema, name)
		}
	}

	players := make([]model.Player, 0, 1024)
	for line := 2; ; line++ {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				if s.skipRow(ctx, line, err) {
					continue
				}
				return fmt.Errorf("%w: line %d: %w", ErrValueParse, line, err)
			}
			return fmt.Errorf("%w: reading rows: %w", ErrFileAccess, err)
		}

		p, err := decodeRow(header, colIdx, row)
		if err != nil {
			if s.skipRow(ctx, line, err) {
				continue
			}
			return fmt.Errorf("line %d: %w", line, err)
		}
		players = append(players, p)
	}

	s.players = players
	s.computeBounds()
	return nil
}

// skipRow applies the malformed-row policy. Returns true when the row should
// be dropped with a warning instead of failing the load.
func (s *CSVStore) skipRow(ctx context.Context, line int, err error) bool {
	if !s.skipMalformed {
		return false
	}
	if s.log != nil {
		s.log.Warn(ctx, "skipping malformed row",
			logger.Int("line", line),
			logger.Error(err),
		)
	}
	metrics.RecordDatasetRowSkipped()
	return true
}

func decodeRow(header []string, colIdx map[string]int, row []string) (model.Player, error) {
	cell := func(name string) string {
		return strings.TrimSpace(row[colIdx[name]])
	}

	age, err := strconv.Atoi(cell(colAge))
	if err != nil {
		return model.Player{}, fmt.Errorf("%w: column %s: %q", ErrValueParse, colAge, cell(colAge))
	}
	rating, err := strconv.Atoi(cell(colRating))
	if err != nil {
		return model.Player{}, fmt.Errorf("%w: column %s: %q", ErrValueParse, colRating, cell(colRating))
	}
	value, err := strconv.ParseFloat(strings.ReplaceAll(cell(colValue), ",", ""), 64)
	if err != nil {
		return model.Player{}, fmt.Errorf("%w: column %s: %q", ErrValueParse, colValue, cell(colValue))
	}

	p := model.Player{
		Name:          cell(colName),
		Age:           age,
		OverallRating: rating,
		Nationality:   cell(colNationality),
		Club:          cell(colClub),
		Value:         value,
	}

	// Every other column passes through untouched.
	named := make(map[string]bool, len(requiredColumns))
	for _, name := range requiredColumns {
		named[name] = true
	}
	for i, name := range header {
		if named[name] || i >= len(row) {
			continue
		}
		if p.Attributes == nil {
			p.Attributes = make(map[string]string)
		}
		p.Attributes[name] = row[i]
	}
	return p, nil
}

func (s *CSVStore) computeBounds() {
	distinct := make(map[string]struct{})
	for i, p := range s.players {
		if i == 0 {
			s.ageMin, s.ageMax = p.Age, p.Age
			s.ratingMin, s.ratingMax = p.OverallRating, p.OverallRating
		}
		if p.Age < s.ageMin {
			s.ageMin = p.Age
		}
		if p.Age > s.ageMax {
			s.ageMax = p.Age
		}
		if p.OverallRating < s.ratingMin {
			s.ratingMin = p.OverallRating
		}
		if p.OverallRating > s.ratingMax {
			s.ratingMax = p.OverallRating
		}
		distinct[p.Nationality] = struct{}{}
	}

	s.nationalities = make([]string, 0, len(distinct))
	for n := range distinct {
		s.nationalities = append(s.nationalities, n)
	}
	sort.Strings(s.nationalities)
}

// Players returns every record in original file order. Callers must not
// mutate the returned slice.
func (s *CSVStore) Players(_ context.Context) []model.Player {
	return s.players
}

// Count returns the number of records in the dataset.
func (s *CSVStore) Count(_ context.Context) int {
	return len(s.players)
}

// NationalityOptions returns the distinct nationality values, sorted.
func (s *CSVStore) NationalityOptions(_ context.Context) []string {
	return s.nationalities
}

// AgeBounds returns the minimum and maximum age present in the dataset.
func (s *CSVStore) AgeBounds(_ context.Context) (int, int) {
	return s.ageMin, s.ageMax
}

// RatingBounds returns the minimum and maximum overall rating present.
func (s *CSVStore) RatingBounds(_ context.Context) (int, int) {
	return s.ratingMin, s.ratingMax
}
