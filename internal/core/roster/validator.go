// Package roster contains the aggregate validation pass over a roster.
package roster

import (
	"github.com/example/roster/internal/core/identifier"
	"github.com/example/roster/internal/models"
)

// Validate checks every player's identifier and builds a report.
// Every player is checked; invalid players keep their roster order.
func Validate(players []models.Player) models.ValidationReport {
	var invalid []models.Player
	for _, p := range players {
		if !identifier.IsValid(p.ID) {
			invalid = append(invalid, p)
		}
	}
	return models.NewValidationReport(len(players), invalid)
}
