// Package app implements the primary ports on top of the pure core packages.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/example/roster/internal/core/identifier"
	"github.com/example/roster/internal/core/report"
	"github.com/example/roster/internal/core/roster"
	"github.com/example/roster/internal/models"
	"github.com/example/roster/internal/ports/primary"
	"github.com/example/roster/internal/ports/secondary"
)

// RosterServiceImpl implements the RosterService interface.
type RosterServiceImpl struct {
	reader secondary.RosterReader
	logger *slog.Logger
}

// NewRosterService creates a new RosterService with injected dependencies.
// A nil logger uses slog.Default().
func NewRosterService(reader secondary.RosterReader, logger *slog.Logger) *RosterServiceImpl {
	if logger == nil {
		logger = slog.Default()
	}
	return &RosterServiceImpl{
		reader: reader,
		logger: logger,
	}
}

// CheckIdentifier checks a single player identifier.
func (s *RosterServiceImpl) CheckIdentifier(ctx context.Context, id string) primary.CheckIdentifierResponse {
	result := identifier.Check(id)
	return primary.CheckIdentifierResponse{
		ID:     id,
		Valid:  result.Valid,
		Reason: result.Reason,
	}
}

// ValidateRoster reads a roster, validates every identifier and renders the report.
func (s *RosterServiceImpl) ValidateRoster(ctx context.Context, req primary.ValidateRosterRequest) (*primary.ValidateRosterResponse, error) {
	if req.Input == nil {
		return nil, fmt.Errorf("no roster input provided")
	}

	players, err := s.reader.ReadPlayers(ctx, req.Input)
	if err != nil {
		s.logger.Warn("roster rejected", "source", req.Source, "error", err)
		return nil, fmt.Errorf("failed to read roster: %w", err)
	}

	return s.validate(req.Source, players), nil
}

// ValidateRosterFile is ValidateRoster for a roster stored on disk.
func (s *RosterServiceImpl) ValidateRosterFile(ctx context.Context, path string) (*primary.ValidateRosterResponse, error) {
	players, err := s.reader.ReadFile(ctx, path)
	if err != nil {
		s.logger.Warn("roster rejected", "source", path, "error", err)
		return nil, fmt.Errorf("failed to read roster: %w", err)
	}

	return s.validate(filepath.Base(path), players), nil
}

func (s *RosterServiceImpl) validate(source string, players []models.Player) *primary.ValidateRosterResponse {
	rep := roster.Validate(players)

	s.logger.Info("roster validated",
		"source", source,
		"total", rep.TotalCount(),
		"valid", rep.ValidCount(),
		"invalid", rep.InvalidCount(),
	)

	return &primary.ValidateRosterResponse{
		Report:  rep,
		Message: report.Format(rep),
	}
}
