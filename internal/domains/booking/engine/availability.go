package engine

// Stay is the projection of an existing reservation that availability
// decisions need: its date range and its lifecycle status.
type Stay struct {
	Range  DateRange
	Status string
}

// IsAvailable reports whether the candidate range can be booked against the
// given reservation set. Cancelled stays never block a candidate. The
// function is pure: it never touches storage and is safe to call
// concurrently with the same inputs.
func IsAvailable(existing []Stay, candidate DateRange) (bool, error) {
	if err := candidate.Validate(); err != nil {
		return false, err
	}

	for _, stay := range existing {
		if stay.Status == StatusCancelled {
			continue
		}

		if candidate.Overlaps(stay.Range) {
			return false, nil
		}
	}

	return true, nil
}
