// Package bot handles chat commands independently of the chat transport.
// A transport adapter resolves the command's attachment and posts back the
// message returned by the Handler.
package bot

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/example/roster/internal/adapters/httpfetch"
	"github.com/example/roster/internal/ports/primary"
	"github.com/example/roster/internal/ports/secondary"
)

// MaxMessageLength is the longest message a chat response may carry.
const MaxMessageLength = 2000

const truncationMarker = "\n…"

// Attachment is a file attached to a chat command.
type Attachment struct {
	Filename string
	URL      string
	Size     int64
}

// Handler runs the roster validation command for chat transports.
type Handler struct {
	service  primary.RosterService
	fetcher  secondary.AttachmentFetcher
	maxBytes int64
	timeout  time.Duration
	logger   *slog.Logger
}

// NewHandler creates a Handler. maxBytes caps attachment downloads and
// timeout bounds each download.
func NewHandler(service primary.RosterService, fetcher secondary.AttachmentFetcher, maxBytes int64, timeout time.Duration, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		service:  service,
		fetcher:  fetcher,
		maxBytes: maxBytes,
		timeout:  timeout,
		logger:   logger,
	}
}

// HandleValidate validates the attached roster and returns the message to post.
// Problems with the attachment are reported in the message, never as errors.
func (h *Handler) HandleValidate(ctx context.Context, att *Attachment) string {
	if att == nil || att.URL == "" {
		return "❌ Please attach a CSV roster file."
	}
	if !strings.EqualFold(path.Ext(att.Filename), ".csv") {
		return fmt.Sprintf("❌ `%s` is not a CSV file.", att.Filename)
	}
	if h.maxBytes > 0 && att.Size > h.maxBytes {
		return tooLarge(att.Filename, h.maxBytes)
	}

	logger := h.logger.With("attachment", att.Filename)

	fetchCtx := ctx
	if h.timeout > 0 {
		var cancel context.CancelFunc
		fetchCtx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	logger.Debug("fetching attachment", "size", att.Size)
	data, err := h.fetcher.Fetch(fetchCtx, att.URL, h.maxBytes)
	if err != nil {
		logger.Warn("attachment download failed", "error", err)
		if errors.Is(err, httpfetch.ErrAttachmentTooLarge) {
			return tooLarge(att.Filename, h.maxBytes)
		}
		return fmt.Sprintf("❌ Could not download `%s`. Please try again.", att.Filename)
	}

	resp, err := h.service.ValidateRoster(ctx, primary.ValidateRosterRequest{
		Source: att.Filename,
		Input:  bytes.NewReader(data),
	})
	if err != nil {
		return fmt.Sprintf("❌ Could not read `%s`: %v", att.Filename, err)
	}

	return Truncate(resp.Message, MaxMessageLength)
}

// Truncate shortens msg to at most limit characters, marking the cut.
func Truncate(msg string, limit int) string {
	if utf8.RuneCountInString(msg) <= limit {
		return msg
	}
	keep := limit - utf8.RuneCountInString(truncationMarker)
	if keep < 0 {
		keep = 0
	}
	runes := []rune(msg)
	return string(runes[:keep]) + truncationMarker
}

func tooLarge(name string, limit int64) string {
	if limit < 1024 {
		return fmt.Sprintf("❌ `%s` is too large (limit %d bytes).", name, limit)
	}
	return fmt.Sprintf("❌ `%s` is too large (limit %d KiB).", name, limit/1024)
}
