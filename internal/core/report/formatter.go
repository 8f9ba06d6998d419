// Package report renders a ValidationReport as a chat-ready message.
// There are exactly two templates: one for a clean roster and one listing
// the invalid identifiers.
package report

import (
	"fmt"
	"strings"

	"github.com/example/roster/internal/models"
)

// Markers that identify each template. Callers may rely on them to tell
// which branch was rendered.
const (
	SuccessHeader      = "✅ **ROSTER VALIDATION COMPLETE**"
	SuccessFooter      = "Your roster is ready to submit."
	FailureHeader      = "📊 **ROSTER VALIDATION REPORT**"
	InvalidListHeading = "**Invalid Player identifiers:**"
	FailureFooter      = "⚠️ Please fix these identifiers before submitting your roster."
)

// Format renders the report. A report with no invalid players uses the
// success template; anything else uses the failure template.
func Format(r models.ValidationReport) string {
	if r.InvalidCount() == 0 {
		return formatSuccess(r.TotalCount())
	}
	return formatFailure(r.TotalCount(), r.ValidCount(), r.InvalidCount(), r.InvalidPlayers())
}

func formatSuccess(total int) string {
	var b strings.Builder
	b.WriteString(SuccessHeader + "\n")
	fmt.Fprintf(&b, "All **%d** player identifiers are valid!\n", total)
	b.WriteString(SuccessFooter + "\n")
	return b.String()
}

func formatFailure(total, valid, invalid int, players []models.Player) string {
	var b strings.Builder
	b.WriteString(FailureHeader + "\n\n")
	fmt.Fprintf(&b, "📝 Total players: %d\n", total)
	fmt.Fprintf(&b, "✅ Valid: %d\n", valid)
	fmt.Fprintf(&b, "❌ Invalid: %d\n\n", invalid)
	b.WriteString(InvalidListHeading + "\n\n")
	for _, p := range players {
		b.WriteString(PlayerLine(p) + "\n")
	}
	b.WriteString("\n" + FailureFooter + "\n")
	return b.String()
}

// PlayerLine renders one invalid player entry.
func PlayerLine(p models.Player) string {
	return fmt.Sprintf("❌ `%s` – %s", p.ID, p.Name)
}
