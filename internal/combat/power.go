package combat

// PowerResult is the outcome of the power stage.
type PowerResult struct {
	Tier Tier
	// Wear is the durability lost by the winner's weapon.
	Wear  float64
	Delta float64
}

type grade struct {
	tier Tier
	wear float64
}

var (
	strongerGrades = [6]grade{
		{Neutre, 3}, {Faveur, 2}, {Avantage, 1.5}, {Efficace, 1}, {Surpuissance, 0.5}, {Domination, 0},
	}
	weakerGrades = [6]grade{
		{Neutre, 3}, {SousFaveur, 4}, {SousAvantage, 5}, {SousEfficace, 6}, {Souspuissance, 7}, {SousDomination, 8},
	}
)

// ResolvePower grades the winner's force against the loser's resistance.
// A winner that cannot get past the resistance is graded on the shortfall,
// with thresholds scaled by its own level; otherwise the margin is graded
// with thresholds scaled by the loser's level.
func ResolvePower(winner, loser Entity, th Thresholds) PowerResult {
	delta := winner.Force - loser.Resistance
	if delta <= 0 {
		g := weakerGrades[bucket(-delta, th.Scale(winner.Level).Levels())]
		return PowerResult{Tier: g.tier, Wear: g.wear, Delta: delta}
	}
	g := strongerGrades[bucket(delta, th.Scale(loser.Level).Levels())]
	return PowerResult{Tier: g.tier, Wear: g.wear, Delta: delta}
}
