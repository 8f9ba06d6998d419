package bot

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/example/roster/internal/adapters/httpfetch"
	"github.com/example/roster/internal/models"
	"github.com/example/roster/internal/ports/primary"
)

// ============================================================================
// Mock Implementations
// ============================================================================

type mockFetcher struct {
	data      []byte
	err       error
	calls     int
	lastURL   string
	lastLimit int64
}

func (m *mockFetcher) Fetch(ctx context.Context, url string, maxBytes int64) ([]byte, error) {
	m.calls++
	m.lastURL = url
	m.lastLimit = maxBytes
	if m.err != nil {
		return nil, m.err
	}
	return m.data, nil
}

type mockRosterService struct {
	message    string
	err        error
	lastSource string
	lastInput  string
}

func (m *mockRosterService) CheckIdentifier(ctx context.Context, id string) primary.CheckIdentifierResponse {
	return primary.CheckIdentifierResponse{ID: id}
}

func (m *mockRosterService) ValidateRoster(ctx context.Context, req primary.ValidateRosterRequest) (*primary.ValidateRosterResponse, error) {
	m.lastSource = req.Source
	data, _ := io.ReadAll(req.Input)
	m.lastInput = string(data)
	if m.err != nil {
		return nil, m.err
	}
	return &primary.ValidateRosterResponse{
		Report:  models.NewValidationReport(1, nil),
		Message: m.message,
	}, nil
}

func (m *mockRosterService) ValidateRosterFile(ctx context.Context, path string) (*primary.ValidateRosterResponse, error) {
	return nil, errors.New("not implemented in bot")
}

func newTestHandler(service *mockRosterService, fetcher *mockFetcher) *Handler {
	return NewHandler(service, fetcher, 1024, time.Second, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// ============================================================================
// HandleValidate Tests
// ============================================================================

func TestHandleValidate_Success(t *testing.T) {
	service := &mockRosterService{message: "ROSTER VALIDATION COMPLETE"}
	fetcher := &mockFetcher{data: []byte("player_name,player_id\n")}
	h := newTestHandler(service, fetcher)

	msg := h.HandleValidate(context.Background(), &Attachment{
		Filename: "Roster.CSV",
		URL:      "https://cdn.example.com/roster.csv",
		Size:     22,
	})

	if msg != "ROSTER VALIDATION COMPLETE" {
		t.Errorf("expected report message, got %q", msg)
	}
	if fetcher.lastURL != "https://cdn.example.com/roster.csv" {
		t.Errorf("unexpected URL %q", fetcher.lastURL)
	}
	if fetcher.lastLimit != 1024 {
		t.Errorf("expected size limit passed to fetcher, got %d", fetcher.lastLimit)
	}
	if service.lastSource != "Roster.CSV" {
		t.Errorf("expected source to be the file name, got %q", service.lastSource)
	}
	if service.lastInput != "player_name,player_id\n" {
		t.Errorf("expected downloaded content to reach the service, got %q", service.lastInput)
	}
}

func TestHandleValidate_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		att        *Attachment
		fetchErr   error
		serviceErr error
		wantFetch  bool
		wantMsg    string
	}{
		{
			name:    "no attachment",
			att:     nil,
			wantMsg: "Please attach a CSV roster file",
		},
		{
			name:    "not a csv",
			att:     &Attachment{Filename: "roster.xlsx", URL: "https://x/roster.xlsx", Size: 10},
			wantMsg: "`roster.xlsx` is not a CSV file",
		},
		{
			name:    "declared size over limit",
			att:     &Attachment{Filename: "roster.csv", URL: "https://x/roster.csv", Size: 4096},
			wantMsg: "is too large",
		},
		{
			name:      "download over limit",
			att:       &Attachment{Filename: "roster.csv", URL: "https://x/roster.csv", Size: 10},
			fetchErr:  fmt.Errorf("%w: more than 1024 bytes", httpfetch.ErrAttachmentTooLarge),
			wantFetch: true,
			wantMsg:   "is too large",
		},
		{
			name:      "download failure",
			att:       &Attachment{Filename: "roster.csv", URL: "https://x/roster.csv", Size: 10},
			fetchErr:  errors.New("connection reset"),
			wantFetch: true,
			wantMsg:   "Could not download `roster.csv`",
		},
		{
			name:       "reader failure",
			att:        &Attachment{Filename: "roster.csv", URL: "https://x/roster.csv", Size: 10},
			serviceErr: errors.New("failed to read roster: missing required column: player_id"),
			wantFetch:  true,
			wantMsg:    "missing required column: player_id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &mockRosterService{err: tt.serviceErr}
			fetcher := &mockFetcher{err: tt.fetchErr}
			h := newTestHandler(service, fetcher)

			msg := h.HandleValidate(context.Background(), tt.att)

			if !strings.Contains(msg, tt.wantMsg) {
				t.Errorf("expected message to contain %q, got %q", tt.wantMsg, msg)
			}
			if (fetcher.calls > 0) != tt.wantFetch {
				t.Errorf("fetch called %d times, wantFetch=%v", fetcher.calls, tt.wantFetch)
			}
		})
	}
}

func TestHandleValidate_TruncatesLongReports(t *testing.T) {
	service := &mockRosterService{message: strings.Repeat("❌ `bad` – Player\n", 500)}
	h := newTestHandler(service, &mockFetcher{data: []byte("x")})

	msg := h.HandleValidate(context.Background(), &Attachment{Filename: "r.csv", URL: "https://x/r.csv"})

	if n := utf8.RuneCountInString(msg); n > MaxMessageLength {
		t.Errorf("message has %d characters, limit %d", n, MaxMessageLength)
	}
	if !strings.HasSuffix(msg, "…") {
		t.Errorf("expected truncation marker, got suffix %q", msg[len(msg)-10:])
	}
}

func TestTooLarge(t *testing.T) {
	tests := []struct {
		name  string
		limit int64
		want  string
	}{
		{name: "under one KiB", limit: 512, want: "limit 512 bytes"},
		{name: "exactly one KiB", limit: 1024, want: "limit 1 KiB"},
		{name: "one MiB", limit: 1 << 20, want: "limit 1024 KiB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tooLarge("roster.csv", tt.limit); !strings.Contains(got, tt.want) {
				t.Errorf("tooLarge(%d) = %q, want it to contain %q", tt.limit, got, tt.want)
			}
		})
	}
}

// ============================================================================
// Truncate Tests
// ============================================================================

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		msg   string
		limit int
		want  string
	}{
		{name: "short message unchanged", msg: "hello", limit: 10, want: "hello"},
		{name: "exact limit unchanged", msg: "hello", limit: 5, want: "hello"},
		{name: "cut with marker", msg: "abcdefghij", limit: 6, want: "abcd\n…"},
		{name: "counts runes not bytes", msg: "✅✅✅✅", limit: 4, want: "✅✅✅✅"},
		{name: "tiny limit", msg: "abcdef", limit: 1, want: "\n…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.msg, tt.limit); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.msg, tt.limit, got, tt.want)
			}
		})
	}
}
