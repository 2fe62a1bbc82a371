package scum

// roleForRank maps a finish rank to the role carried into the next round.
// Middle finishers have no role. The conventional card exchange between
// President and Scum is not implemented; roles are labels only.
func roleForRank(rank, seats int) string {
	switch {
	case rank == 1:
		return "President"
	case rank == seats:
		return "Scum"
	case rank == 2 && seats >= 4:
		return "Vice President"
	case rank == seats-1 && seats >= 5:
		return "Vice Scum"
	}

	return ""
}
