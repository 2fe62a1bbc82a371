package scum

// nextPlayerIndex walks the seats circularly from the seat after current and
// returns the first one still holding cards. It probes at most len(seats)
// positions; if every seat has finished it returns ErrNoEligiblePlayer.
func nextPlayerIndex(current int, seats []*Seat) (int, error) {
	n := len(seats)
	for probe := 1; probe <= n; probe++ {
		index := (current + probe) % n
		if len(seats[index].hand) > 0 {
			return index, nil
		}
	}

	return -1, ErrNoEligiblePlayer
}
