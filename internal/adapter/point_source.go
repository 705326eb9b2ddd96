// Package adapter provides the file-backed ports used by the workflow.
package adapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
	m "tourbrute.dev/pkg/tourbrute/internal/model"
)

// ErrNoPointsInFile is returned when a point file holds an empty point list.
var ErrNoPointsInFile = errors.New("point file contains no points")

// PointSource loads point sets.
type PointSource interface {
	Load(ctx context.Context, path m.Path) (m.Route, error)
}

// pointsDocument is the YAML layout of a point file:
//
//	points:
//	  - {x: -1, y: -1}
//	  - {x: 1, y: 0.5}
type pointsDocument struct {
	Points []m.Point `yaml:"points"`
}

type localPointSource struct{}

// NewLocalPointSource returns a PointSource reading YAML files from disk.
func NewLocalPointSource() PointSource {
	return &localPointSource{}
}

func (l *localPointSource) Load(ctx context.Context, path m.Path) (m.Route, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(string(path))
	if err != nil {
		slog.Error("Failed to read point file", "path", path, "error", err)
		return nil, fmt.Errorf("read point file: %w", err)
	}

	var doc pointsDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		slog.Error("Failed to parse point file", "path", path, "error", err)
		return nil, fmt.Errorf("parse point file %s: %w", path, err)
	}

	if len(doc.Points) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoPointsInFile, path)
	}

	slog.Debug("loaded points", "path", path, "count", len(doc.Points))

	return m.Route(doc.Points), nil
}
