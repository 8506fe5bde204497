package domain

// Range is one period in a seeker's history, reduced to comparable units.
// Work experience uses Unix days, education uses calendar years; the
// comparison semantics are identical, only the unit differs.
type Range struct {
	ID    int64
	Start int64
	End   *int64 // nil means ongoing
}

// CheckRange decides whether candidate may join the owner's existing ranges.
// candidate.ID is excluded from the comparison set so updates do not collide
// with themselves (zero on create). now is "today" in the same unit as the
// ranges and acts as the effective end of an open candidate.
//
// Two rules, checked in order:
//  1. at most one open range per owner (ErrDuplicateOpenRange),
//  2. no interval intersection, where an open existing range extends to
//     infinity (ErrRangeOverlap).
func CheckRange(existing []Range, candidate Range, now int64) error {
	if candidate.End == nil {
		for _, r := range existing {
			if r.ID == candidate.ID {
				continue
			}
			if r.End == nil {
				return ErrDuplicateOpenRange
			}
		}
	}

	effectiveEnd := now
	if candidate.End != nil {
		effectiveEnd = *candidate.End
	}

	for _, r := range existing {
		if r.ID == candidate.ID {
			continue
		}
		if r.Start <= effectiveEnd && (r.End == nil || *r.End >= candidate.Start) {
			return ErrRangeOverlap
		}
	}
	return nil
}
