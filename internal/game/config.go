package game

import (
	"fmt"
)

const (
	DefaultMinPrice = 1000
	DefaultMaxPrice = 5000
)

// PriceRange is the closed interval a daily unit price is drawn from.
type PriceRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

func DefaultPriceRange() PriceRange {
	return PriceRange{Min: DefaultMinPrice, Max: DefaultMaxPrice}
}

func (r PriceRange) Validate() error {
	if r.Min < 0 {
		return fmt.Errorf("price range min must not be negative, got %d", r.Min)
	}
	if r.Max < r.Min {
		return fmt.Errorf("price range max %d is below min %d", r.Max, r.Min)
	}
	return nil
}

func (r PriceRange) Contains(price int) bool {
	return price >= r.Min && price <= r.Max
}

func (r PriceRange) roll(rng RandomSource) int {
	return r.Min + rng.IntN(r.Max-r.Min+1)
}
