package game

import "testing"

type sequenceSource struct {
	values []int
	calls  []int
}

func (s *sequenceSource) IntN(n int) int {
	s.calls = append(s.calls, n)
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[0]
	s.values = s.values[1:]
	return v % n
}

func TestSeededRNGDeterministic(t *testing.T) {
	rngA := seededRNG(12345)
	rngB := seededRNG(12345)

	for i := 0; i < 20; i++ {
		gotA := rngA.IntN(100000)
		gotB := rngB.IntN(100000)
		if gotA != gotB {
			t.Fatalf("expected deterministic sequence, mismatch at %d: %d != %d", i, gotA, gotB)
		}
	}
}

func TestSeedWordChangesWithSalt(t *testing.T) {
	a := seedWord(99, "a")
	b := seedWord(99, "b")
	if a == b {
		t.Fatalf("expected different seed words for different salts")
	}
}

func TestSeededStatesRollSamePrices(t *testing.T) {
	a := New(NewSeededRandom(7), DefaultPriceRange())
	b := New(NewSeededRandom(7), DefaultPriceRange())
	for day := 0; day < 30; day++ {
		a.AdvanceDay()
		b.AdvanceDay()
		if a.UnitPrice != b.UnitPrice {
			t.Fatalf("day %d: price mismatch %d != %d", a.Day, a.UnitPrice, b.UnitPrice)
		}
	}
}
