// Package primary defines the primary ports (driving side) for the application.
package primary

import (
	"context"
	"io"

	"github.com/example/roster/internal/models"
)

// RosterService defines the primary port for roster validation.
type RosterService interface {
	// CheckIdentifier checks a single player identifier.
	CheckIdentifier(ctx context.Context, id string) CheckIdentifierResponse

	// ValidateRoster reads a roster, validates every identifier and renders the report.
	ValidateRoster(ctx context.Context, req ValidateRosterRequest) (*ValidateRosterResponse, error)

	// ValidateRosterFile is ValidateRoster for a roster stored on disk.
	ValidateRosterFile(ctx context.Context, path string) (*ValidateRosterResponse, error)
}

// ValidateRosterRequest contains parameters for validating a roster.
type ValidateRosterRequest struct {
	Source string    // display name of the roster (file name, attachment name)
	Input  io.Reader // CSV content
}

// ValidateRosterResponse contains the result of validating a roster.
type ValidateRosterResponse struct {
	Report  models.ValidationReport
	Message string // formatted report
}

// CheckIdentifierResponse contains the result of checking one identifier.
type CheckIdentifierResponse struct {
	ID     string
	Valid  bool
	Reason string // empty when valid
}
