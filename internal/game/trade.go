package game

// Buy purchases amount units at the current price. The trade is applied whole
// or not at all; it reports whether it was applied.
func (s *State) Buy(amount int) bool {
	if amount < 0 || !s.canAfford(amount) {
		return false
	}
	s.Cash -= amount * s.UnitPrice
	s.Inventory += amount
	return true
}

// Sell disposes of amount units at the current price, all or nothing.
func (s *State) Sell(amount int) bool {
	if amount < 0 || amount > s.Inventory {
		return false
	}
	s.Cash += amount * s.UnitPrice
	s.Inventory -= amount
	return true
}

// MaxAffordable returns the largest amount Buy would accept right now.
// A zero price would make that unbounded, so it reports 0 instead.
func (s *State) MaxAffordable() int {
	if s.UnitPrice <= 0 || s.Cash <= 0 {
		return 0
	}
	return s.Cash / s.UnitPrice
}

// canAfford checks amount*UnitPrice <= Cash without forming the product.
func (s *State) canAfford(amount int) bool {
	if s.Cash < 0 {
		return false
	}
	if amount == 0 || s.UnitPrice <= 0 {
		return true
	}
	return amount <= s.Cash/s.UnitPrice
}
