// Package supply keeps the lifetime and calendar-year issuance counters.
package supply

import (
	"time"

	"github.com/feral-file/rustaceans/internal/domain"
)

// YearStart returns 00:00 UTC on January 1 of t's UTC year
func YearStart(t time.Time) time.Time {
	return time.Date(t.UTC().Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
}

// Rollover resets the yearly counter when now falls in a later calendar year than the anchor
func Rollover(s domain.Supply, now time.Time) domain.Supply {
	start := YearStart(now)
	if start.After(s.YearAnchor) {
		s.YearIssued = 0
		s.YearAnchor = start
	}
	return s
}

// Next assigns the id for a new token and returns the advanced counters.
// The caller persists the result only if the issuance commits.
func Next(s domain.Supply, now time.Time) (domain.TokenID, domain.Supply) {
	s = Rollover(s, now)
	id := domain.TokenID(s.TotalIssued)
	s.TotalIssued++
	s.YearIssued++
	return id, s
}

// Total returns the number of tokens ever issued
func Total(s domain.Supply) uint64 {
	return s.TotalIssued
}

// CurrentYearTotal returns the stored yearly counter. A rollover is only
// applied by the next issuance, so this may still report the previous year.
func CurrentYearTotal(s domain.Supply) uint64 {
	return s.YearIssued
}
