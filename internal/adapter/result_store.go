package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
	m "tourbrute.dev/pkg/tourbrute/internal/model"
)

// ResultSource is a sequence of grid results that can be replayed.
type ResultSource interface {
	Range(f func(index uint64, item m.GridResult) error) error
}

// ResultStore persists grid runs.
type ResultStore interface {
	SaveResults(ctx context.Context, path m.Path, summary m.GridSummary, results ResultSource) error
	LoadResults(ctx context.Context, path m.Path) (m.GridSummary, []m.GridResult, error)
}

// The export is a YAML stream: a summary document followed by one document
// per result, so large runs are written without being held in memory.
type summaryDocument struct {
	RunID          string          `yaml:"run_id"`
	Configurations uint64          `yaml:"configurations"`
	Shortest       *resultDocument `yaml:"shortest,omitempty"`
	Longest        *resultDocument `yaml:"longest,omitempty"`
}

type resultDocument struct {
	Index    uint64    `yaml:"index"`
	Points   []m.Point `yaml:"points"`
	Route    []m.Point `yaml:"route"`
	Distance float64   `yaml:"distance"`
}

func toResultDocument(result m.GridResult) resultDocument {
	return resultDocument{
		Index:    result.Index,
		Points:   result.Points,
		Route:    result.Best.Route,
		Distance: result.Best.Distance,
	}
}

func (d resultDocument) toResult() m.GridResult {
	return m.GridResult{
		Index:  d.Index,
		Points: m.Route(d.Points),
		Best:   m.Tour{Route: m.Route(d.Route), Distance: d.Distance},
	}
}

func optionalResultDocument(result m.GridResult) *resultDocument {
	if !result.Best.Found() {
		return nil
	}

	doc := toResultDocument(result)

	return &doc
}

type yamlResultStore struct{}

// NewResultStore returns a ResultStore writing YAML streams to disk.
func NewResultStore() ResultStore {
	return &yamlResultStore{}
}

func (s *yamlResultStore) SaveResults(ctx context.Context, path m.Path, summary m.GridSummary, results ResultSource) (err error) {
	file, err := os.Create(string(path))
	if err != nil {
		slog.Error("Failed to create results file", "path", path, "error", err)
		return fmt.Errorf("create results file: %w", err)
	}

	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close results file: %w", closeErr)
		}
	}()

	encoder := yaml.NewEncoder(file)
	encoder.SetIndent(2)

	header := summaryDocument{
		RunID:          summary.RunID,
		Configurations: summary.Configurations,
		Shortest:       optionalResultDocument(summary.Shortest),
		Longest:        optionalResultDocument(summary.Longest),
	}
	if err := encoder.Encode(header); err != nil {
		return fmt.Errorf("encode summary: %w", err)
	}

	err = results.Range(func(index uint64, result m.GridResult) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := encoder.Encode(toResultDocument(result)); err != nil {
			return fmt.Errorf("encode result %d: %w", index, err)
		}

		return nil
	})
	if err != nil {
		slog.Error("Failed to write results", "path", path, "error", err)
		return fmt.Errorf("write results: %w", err)
	}

	if err := encoder.Close(); err != nil {
		return fmt.Errorf("flush results: %w", err)
	}

	slog.Info("saved grid results", "path", path, "run", summary.RunID, "configurations", summary.Configurations)

	return nil
}

func (s *yamlResultStore) LoadResults(ctx context.Context, path m.Path) (m.GridSummary, []m.GridResult, error) {
	file, err := os.Open(string(path))
	if err != nil {
		slog.Error("Failed to open results file", "path", path, "error", err)
		return m.GridSummary{}, nil, fmt.Errorf("open results file: %w", err)
	}

	defer func() {
		if err := file.Close(); err != nil {
			slog.Error("Failed to close results file", "path", path, "error", err)
		}
	}()

	decoder := yaml.NewDecoder(file)

	var header summaryDocument
	if err := decoder.Decode(&header); err != nil {
		return m.GridSummary{}, nil, fmt.Errorf("decode summary: %w", err)
	}

	summary := m.GridSummary{RunID: header.RunID, Configurations: header.Configurations}
	summary.Shortest = noResult()
	summary.Longest = noResult()

	if header.Shortest != nil {
		summary.Shortest = header.Shortest.toResult()
	}

	if header.Longest != nil {
		summary.Longest = header.Longest.toResult()
	}

	var results []m.GridResult

	for {
		if err := ctx.Err(); err != nil {
			return m.GridSummary{}, nil, err
		}

		var doc resultDocument

		err := decoder.Decode(&doc)
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return m.GridSummary{}, nil, fmt.Errorf("decode result %d: %w", len(results), err)
		}

		results = append(results, doc.toResult())
	}

	return summary, results, nil
}

func noResult() m.GridResult {
	return m.GridResult{Best: m.NoTour()}
}
