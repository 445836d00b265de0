package combat

// Thresholds are the per-level bucket boundaries shared by both stages.
// A valid set is strictly ascending.
type Thresholds struct {
	Faveur       float64 `json:"faveur" yaml:"faveur"`
	Avantage     float64 `json:"avantage" yaml:"avantage"`
	Efficace     float64 `json:"efficace" yaml:"efficace"`
	Surpuissance float64 `json:"surpuissance" yaml:"surpuissance"`
	Domination   float64 `json:"domination" yaml:"domination"`
}

// ConfigProvider supplies the current threshold set. It is queried on every
// resolver stage, so an edit to the backing store is seen by the next stage.
type ConfigProvider interface {
	Thresholds() (Thresholds, error)
}

// Scale multiplies every boundary by level.
func (t Thresholds) Scale(level int) Thresholds {
	l := float64(level)
	return Thresholds{
		Faveur:       t.Faveur * l,
		Avantage:     t.Avantage * l,
		Efficace:     t.Efficace * l,
		Surpuissance: t.Surpuissance * l,
		Domination:   t.Domination * l,
	}
}

// Levels returns the boundaries in ascending order.
func (t Thresholds) Levels() [5]float64 {
	return [5]float64{t.Faveur, t.Avantage, t.Efficace, t.Surpuissance, t.Domination}
}

// bucket returns the index of the first boundary strictly above v, or 5 when
// v reaches past the last one.
func bucket(v float64, levels [5]float64) int {
	for i, limit := range levels {
		if v < limit {
			return i
		}
	}
	return len(levels)
}

func (t Thresholds) values() map[string]any {
	return map[string]any{
		"faveur":       t.Faveur,
		"avantage":     t.Avantage,
		"efficace":     t.Efficace,
		"surpuissance": t.Surpuissance,
		"domination":   t.Domination,
	}
}
