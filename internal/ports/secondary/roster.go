// Package secondary defines the secondary ports (driven adapters) for the application.
package secondary

import (
	"context"
	"io"

	"github.com/example/roster/internal/models"
)

// RosterReader defines the secondary port for turning tabular input into players.
type RosterReader interface {
	// ReadPlayers parses a roster with a header row into players, in input order.
	// Missing required columns must be reported as an error.
	ReadPlayers(ctx context.Context, r io.Reader) ([]models.Player, error)

	// ReadFile parses the roster stored at path.
	ReadFile(ctx context.Context, path string) ([]models.Player, error)
}

// AttachmentFetcher defines the secondary port for downloading chat attachments.
type AttachmentFetcher interface {
	// Fetch downloads the attachment at url, refusing bodies larger than maxBytes.
	Fetch(ctx context.Context, url string, maxBytes int64) ([]byte, error)
}
