// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle output formatting, but delegate
// business logic to services.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/example/roster/internal/ports/primary"
)

// ErrInvalidIdentifier is returned by Check when the identifier is invalid.
var ErrInvalidIdentifier = errors.New("invalid player identifier")

// ErrInvalidRoster is returned by Validate in strict mode when the roster has
// invalid entries.
var ErrInvalidRoster = errors.New("roster contains invalid player identifiers")

// RosterAdapter is a thin adapter that translates CLI operations to RosterService calls.
type RosterAdapter struct {
	service primary.RosterService
	out     io.Writer
}

// NewRosterAdapter creates a new RosterAdapter with the given service.
func NewRosterAdapter(service primary.RosterService, out io.Writer) *RosterAdapter {
	return &RosterAdapter{
		service: service,
		out:     out,
	}
}

// Check validates a single identifier and prints a status line.
// Returns ErrInvalidIdentifier when the identifier fails validation.
func (a *RosterAdapter) Check(ctx context.Context, id string) error {
	resp := a.service.CheckIdentifier(ctx, id)

	if resp.Valid {
		fmt.Fprintf(a.out, "%s %s is a valid player identifier\n", glyph(true), resp.ID)
		return nil
	}

	fmt.Fprintf(a.out, "%s %s is not a valid player identifier: %s\n", glyph(false), resp.ID, resp.Reason)
	return ErrInvalidIdentifier
}

// Validate validates a roster file and prints the formatted report.
// In strict mode a roster with invalid entries returns ErrInvalidRoster.
func (a *RosterAdapter) Validate(ctx context.Context, path string, strict bool) error {
	resp, err := a.service.ValidateRosterFile(ctx, path)
	if err != nil {
		return err
	}

	fmt.Fprint(a.out, resp.Message)

	if strict && !resp.Report.IsClean() {
		return fmt.Errorf("%w: %d of %d", ErrInvalidRoster, resp.Report.InvalidCount(), resp.Report.TotalCount())
	}
	return nil
}

func glyph(valid bool) string {
	if valid {
		return color.New(color.FgGreen, color.Bold).Sprint("✓")
	}
	return color.New(color.FgRed, color.Bold).Sprint("✗")
}
