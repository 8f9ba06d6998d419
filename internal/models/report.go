package models

// ValidationReport is the aggregate result of checking every player in a roster.
// It is immutable once built: the invalid player list is copied on the way in
// and on the way out.
type ValidationReport struct {
	totalCount     int
	invalidPlayers []Player
}

// NewValidationReport builds a report for a roster of totalCount players.
// invalidPlayers must be a subset of the validated roster, in roster order.
func NewValidationReport(totalCount int, invalidPlayers []Player) ValidationReport {
	if totalCount < len(invalidPlayers) {
		totalCount = len(invalidPlayers)
	}
	invalid := make([]Player, len(invalidPlayers))
	copy(invalid, invalidPlayers)
	return ValidationReport{
		totalCount:     totalCount,
		invalidPlayers: invalid,
	}
}

// TotalCount returns the number of players that were validated.
func (r ValidationReport) TotalCount() int {
	return r.totalCount
}

// InvalidPlayers returns the players whose identifiers failed validation,
// in the order they appeared in the roster.
func (r ValidationReport) InvalidPlayers() []Player {
	out := make([]Player, len(r.invalidPlayers))
	copy(out, r.invalidPlayers)
	return out
}

// InvalidCount returns the number of invalid players.
func (r ValidationReport) InvalidCount() int {
	return len(r.invalidPlayers)
}

// ValidCount returns the number of players with a valid identifier.
func (r ValidationReport) ValidCount() int {
	return r.totalCount - len(r.invalidPlayers)
}

// IsClean reports whether every identifier in the roster was valid.
func (r ValidationReport) IsClean() bool {
	return len(r.invalidPlayers) == 0
}
