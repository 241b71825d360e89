package parser

type QuantityUnit string

const (
	UnitCount QuantityUnit = "count"
	UnitAll   QuantityUnit = "all"
	UnitMax   QuantityUnit = "max"
)

type Quantity struct {
	Raw  string
	N    int
	Unit QuantityUnit
}

type Intent struct {
	Raw        string
	Normalised string
	Verb       string
	Args       []string
	Quantity   *Quantity
	Confidence float64
	Clarify    *ClarifyQuestion
}

// Amount resolves the intent quantity against the largest amount that makes
// sense for the verb. A missing quantity means one unit.
func (i Intent) Amount(max int) int {
	if i.Quantity == nil {
		return 1
	}
	switch i.Quantity.Unit {
	case UnitAll, UnitMax:
		return max
	default:
		return i.Quantity.N
	}
}

type ClarifyQuestion struct {
	Prompt  string
	Options []string
}

type CommandDef struct {
	Canonical string
	Aliases   []string
	MaxArgs   int
}
