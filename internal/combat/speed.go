package combat

import "github.com/Guismus/DanjonBot/internal/dice"

// SpeedResult is the outcome of the speed contest.
type SpeedResult struct {
	Winner Entity
	Loser  Entity
	Tier   Tier
	// Upset is set when the slower side rolled the maximum face.
	Upset bool
	// Sides and Face describe the die thrown; both are 0 when no roll was needed.
	Sides int
	Face  int
	Diff  float64
}

var (
	speedTiers = [5]Tier{Neutre, Faveur, Avantage, Efficace, Surpuissance}
	upsetTiers = [5]Tier{Neutre, SousFaveur, SousAvantage, SousEfficace, Souspuissance}
)

// ResolveSpeed decides who strikes first. Ties go to b. The gap is bucketed
// against thresholds scaled by the slower side's level; below domination a
// die with one more face per bucket is thrown and its maximum face hands the
// win to the slower side.
func ResolveSpeed(a, b Entity, th Thresholds, rng dice.RandomSource) SpeedResult {
	faster, slower := b, a
	if a.Speed > b.Speed {
		faster, slower = a, b
	}

	scaled := th.Scale(slower.Level)
	diff := faster.Speed - slower.Speed
	res := SpeedResult{Winner: faster, Loser: slower, Tier: Neutre, Diff: diff}

	i := bucket(diff, scaled.Levels())
	if i == len(speedTiers) {
		// Exactly on the domination boundary falls through every bucket
		// without reaching the strict "above" case.
		if diff > scaled.Domination {
			res.Tier = Domination
		}
		return res
	}

	res.Sides = i + 2
	res.Face = rng.Roll(res.Sides)
	if res.Face == res.Sides {
		res.Winner, res.Loser = slower, faster
		res.Tier = upsetTiers[i]
		res.Upset = true
		return res
	}
	res.Tier = speedTiers[i]
	return res
}
