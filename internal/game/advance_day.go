package game

// AdvanceDay moves to the next day and rolls a fresh unit price, so no trade
// after the advance can see the previous day's price.
func (s *State) AdvanceDay() {
	s.Day++
	s.UnitPrice = s.prices.roll(s.rng)
}
