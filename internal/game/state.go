package game

const (
	StartingCash      = 2000
	StartingDebt      = 5000
	StartingInventory = 0
	StartingUnitPrice = 0
	StartingDay       = 1
)

// State is the whole simulation. It is owned by a single session and mutated
// only through its methods.
type State struct {
	Cash      int
	Debt      int
	Inventory int
	UnitPrice int
	Day       int

	rng    RandomSource
	prices PriceRange
}

// Snapshot is a read-only copy of State used for rendering and logging.
type Snapshot struct {
	Cash      int
	Debt      int
	Inventory int
	UnitPrice int
	Day       int
}

func New(rng RandomSource, prices PriceRange) *State {
	if rng == nil {
		rng = NewSeededRandom(0)
	}
	return &State{
		Cash:      StartingCash,
		Debt:      StartingDebt,
		Inventory: StartingInventory,
		UnitPrice: StartingUnitPrice,
		Day:       StartingDay,
		rng:       rng,
		prices:    prices,
	}
}

func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Cash:      s.Cash,
		Debt:      s.Debt,
		Inventory: s.Inventory,
		UnitPrice: s.UnitPrice,
		Day:       s.Day,
	}
}
