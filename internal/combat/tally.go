package combat

import "sort"

// Tally aggregates outcomes of repeated duels.
type Tally struct {
	Duels      int
	Wins       map[string]int
	Upsets     int
	SpeedTiers map[Tier]int
	PowerTiers map[Tier]int
	totalWear  float64
}

// NewTally returns an empty tally.
func NewTally() *Tally {
	return &Tally{
		Wins:       map[string]int{},
		SpeedTiers: map[Tier]int{},
		PowerTiers: map[Tier]int{},
	}
}

// Add records one outcome.
func (t *Tally) Add(o Outcome) {
	t.Duels++
	t.Wins[o.Winner.Name]++
	if o.Speed.Upset {
		t.Upsets++
	}
	t.SpeedTiers[o.SpeedTier]++
	t.PowerTiers[o.PowerTier]++
	t.totalWear += o.Wear
}

// MeanWear is the average durability loss per duel.
func (t *Tally) MeanWear() float64 {
	if t.Duels == 0 {
		return 0
	}
	return t.totalWear / float64(t.Duels)
}

// Share is count over the number of duels.
func (t *Tally) Share(count int) float64 {
	if t.Duels == 0 {
		return 0
	}
	return float64(count) / float64(t.Duels)
}

// Names returns the winners seen, sorted.
func (t *Tally) Names() []string {
	names := make([]string, 0, len(t.Wins))
	for n := range t.Wins {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
