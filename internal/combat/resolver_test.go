package combat

import (
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guismus/DanjonBot/internal/dice"
	"github.com/Guismus/DanjonBot/internal/stats"
)

type fakeCharacters struct {
	byName map[string]Character
	err    error
	calls  atomic.Int32
}

func (f *fakeCharacters) FindCharacter(name string) (Character, bool, error) {
	f.calls.Add(1)
	if f.err != nil {
		return Character{}, false, f.err
	}
	c, ok := f.byName[name]
	return c, ok, nil
}

type fakeBaselines map[string]stats.Baseline

func (f fakeBaselines) Baseline(race string) (stats.Baseline, error) {
	return f[race], nil
}

type fakeConfig struct {
	th    Thresholds
	err   error
	calls atomic.Int32
}

func (f *fakeConfig) Thresholds() (Thresholds, error) {
	f.calls.Add(1)
	return f.th, f.err
}

// Both characters are level 10 with zero variance, so every attribute is
// base*0.16 + 5 before rounding.
func fixture() (*fakeCharacters, fakeBaselines, *fakeConfig) {
	chars := &fakeCharacters{byName: map[string]Character{
		"Kael": {Name: "Kael", Level: 10, Race: "Humain"},
		"Mira": {Name: "Mira", Level: 10, Race: "Elfe"},
		"Nul":  {Name: "Nul", Level: 10, Race: "Inconnu"},
	}}
	bases := fakeBaselines{
		"Humain": {Force: 100, Resistance: 50, Speed: 50},
		"Elfe":   {Force: 50, Resistance: 50, Speed: 100},
	}
	return chars, bases, &fakeConfig{th: reference}
}

func attack(s string) []string { return strings.Fields(s) }

func TestResolveAttack(t *testing.T) {
	chars, bases, cfg := fixture()
	r, err := NewResolver(chars, bases, cfg, WithRandomSource(dice.NewSequence(1)))
	require.NoError(t, err)

	out, err := r.ResolveAttack(attack("attaque Kael Mira"))
	require.NoError(t, err)

	// Speeds 13.5 vs 21.5 after normalisation: diff 8 against {5, 10, ...}
	// is a d3; face 1 keeps the faster Mira ahead.
	assert.Equal(t, "Mira", out.Winner.Name)
	assert.Equal(t, "Kael", out.Loser.Name)
	assert.Equal(t, Faveur, out.SpeedTier)
	assert.Equal(t, 3, out.Speed.Sides)
	assert.Equal(t, 21.5, out.Winner.Speed)
	assert.Equal(t, 13.25, out.Loser.Resistance)

	// 13.5 - 13.25 is well under the first boundary.
	assert.Equal(t, Neutre, out.PowerTier)
	assert.Equal(t, 3.0, out.Wear)

	assert.Equal(t, int32(2), cfg.calls.Load(), "thresholds are fetched once per stage")
}

func TestResolveAttackUpset(t *testing.T) {
	chars, bases, cfg := fixture()
	r, err := NewResolver(chars, bases, cfg, WithRandomSource(dice.NewSequence(3)))
	require.NoError(t, err)

	out, err := r.ResolveAttack(attack("attaque Kael Mira"))
	require.NoError(t, err)

	assert.Equal(t, "Kael", out.Winner.Name)
	assert.True(t, out.Speed.Upset)
	assert.Equal(t, SousFaveur, out.SpeedTier)
	// Kael hits with 21.5 against 13.25: 8.25 is a faveur.
	assert.Equal(t, Faveur, out.PowerTier)
	assert.Equal(t, 2.0, out.Wear)
}

func TestResolveAttackWeapons(t *testing.T) {
	chars, bases, cfg := fixture()
	r, err := NewResolver(chars, bases, cfg, WithRandomSource(dice.NewSequence()))
	require.NoError(t, err)

	bare, err := r.Prepare(attack("attaque Kael Mira"))
	require.NoError(t, err)
	armed, err := r.Prepare(attack("attaque Kael -weapon Lourd Mira -weapon Leger"))
	require.NoError(t, err)

	assert.Greater(t, armed.Attacker.Force, bare.Attacker.Force)
	assert.Less(t, armed.Attacker.Speed, bare.Attacker.Speed)
	assert.Less(t, armed.Defender.Force, bare.Defender.Force)
	assert.Greater(t, armed.Defender.Speed, bare.Defender.Speed)

	for _, e := range []Entity{armed.Attacker, armed.Defender} {
		assert.Zero(t, mod(e.Force), "%s force off the grid", e.Name)
		assert.Zero(t, mod(e.Speed), "%s speed off the grid", e.Name)
	}
}

func TestResolveAttackImprovisedMarkerWeapon(t *testing.T) {
	chars, bases, cfg := fixture()
	r, err := NewResolver(chars, bases, cfg, WithRandomSource(dice.NewSequence()))
	require.NoError(t, err)

	dashed, err := r.Prepare(attack("attaque Kael -weapon -lame Mira"))
	require.NoError(t, err)
	named, err := r.Prepare(attack("attaque Kael -weapon Baton Mira"))
	require.NoError(t, err)

	// 21.25 * 0.85 = 18.0625, back on the grid at 18.25.
	assert.InDelta(t, 18.25, dashed.Attacker.Force, 1e-9)
	assert.Equal(t, named.Attacker, dashed.Attacker)
	assert.Equal(t, "Mira", dashed.Defender.Name)
}

func mod(x float64) float64 {
	return x - float64(int(x/stats.Quarter))*stats.Quarter
}

func TestResolveAttackUnknownRaceUsesZeroBaseline(t *testing.T) {
	chars, bases, cfg := fixture()
	r, err := NewResolver(chars, bases, cfg, WithRandomSource(dice.NewSequence()))
	require.NoError(t, err)

	m, err := r.Prepare(attack("attaque Nul Kael"))
	require.NoError(t, err)
	// 5.25 from the formula, then one more quarter from normalisation.
	assert.Equal(t, 5.5, m.Attacker.Force)
	assert.Equal(t, 5.25, m.Attacker.Resistance)
}

func TestResolveAttackErrors(t *testing.T) {
	t.Run("one token is rejected before any lookup", func(t *testing.T) {
		chars, bases, cfg := fixture()
		r, err := NewResolver(chars, bases, cfg)
		require.NoError(t, err)

		_, err = r.ResolveAttack(attack("attaque"))
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Equal(t, CodeInvalidInput, CodeOf(err))
		assert.Zero(t, chars.calls.Load())
	})

	t.Run("trailing weapon marker", func(t *testing.T) {
		chars, bases, cfg := fixture()
		r, err := NewResolver(chars, bases, cfg)
		require.NoError(t, err)

		_, err = r.ResolveAttack(attack("attaque Kael Mira -weapon"))
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("unknown character", func(t *testing.T) {
		chars, bases, cfg := fixture()
		r, err := NewResolver(chars, bases, cfg)
		require.NoError(t, err)

		_, err = r.ResolveAttack(attack("attaque Kael Personne"))
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Contains(t, err.Error(), "Personne")
	})

	t.Run("character store failure", func(t *testing.T) {
		chars, bases, cfg := fixture()
		chars.err = errors.New("disk gone")
		r, err := NewResolver(chars, bases, cfg)
		require.NoError(t, err)

		_, err = r.ResolveAttack(attack("attaque Kael Mira"))
		assert.ErrorIs(t, err, ErrConfig)
		assert.ErrorContains(t, err, "disk gone")
	})

	t.Run("thresholds unavailable", func(t *testing.T) {
		chars, bases, cfg := fixture()
		cfg.err = errors.New("no such file")
		r, err := NewResolver(chars, bases, cfg)
		require.NoError(t, err)

		_, err = r.ResolveAttack(attack("attaque Kael Mira"))
		assert.Equal(t, CodeConfig, CodeOf(err))
	})

	t.Run("thresholds out of order", func(t *testing.T) {
		chars, bases, cfg := fixture()
		cfg.th = Thresholds{Faveur: 1, Avantage: 0.5, Efficace: 2, Surpuissance: 4, Domination: 8}
		r, err := NewResolver(chars, bases, cfg)
		require.NoError(t, err)

		_, err = r.ResolveAttack(attack("attaque Kael Mira"))
		assert.ErrorIs(t, err, ErrConfig)
	})
}

func TestResolveAttackReproducible(t *testing.T) {
	chars, bases, cfg := fixture()
	first, err := NewResolver(chars, bases, cfg, WithRandomSource(dice.NewSeeded(5)))
	require.NoError(t, err)
	second, err := NewResolver(chars, bases, cfg, WithRandomSource(dice.NewSeeded(5)))
	require.NoError(t, err)

	for i := 0; i < 30; i++ {
		a, err := first.ResolveAttack(attack("attaque Kael -weapon Hache Mira"))
		require.NoError(t, err)
		b, err := second.ResolveAttack(attack("attaque Kael -weapon Hache Mira"))
		require.NoError(t, err)
		assert.Equal(t, a, b)
	}
}

func TestResolverSharedAcrossGoroutines(t *testing.T) {
	chars, bases, cfg := fixture()
	r, err := NewResolver(chars, bases, cfg, WithRandomSource(dice.NewSeeded(11)))
	require.NoError(t, err)

	const workers, rounds = 16, 50
	var wg sync.WaitGroup
	errs := make(chan error, workers*rounds)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < rounds; i++ {
				out, err := r.ResolveAttack(attack("attaque Kael -weapon Lourd Mira"))
				if err != nil {
					errs <- err
					continue
				}
				if out.Winner.Name == out.Loser.Name || out.Wear < 0 || out.Wear > 8 {
					errs <- errors.New("inconsistent outcome " + out.Winner.Name)
				}
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
	assert.Equal(t, int32(2*workers*rounds), chars.calls.Load())
	assert.Equal(t, int32(2*workers*rounds), cfg.calls.Load())
}

func TestTally(t *testing.T) {
	chars, bases, cfg := fixture()
	r, err := NewResolver(chars, bases, cfg, WithRandomSource(dice.NewSequence(1, 3, 1, 1)))
	require.NoError(t, err)

	m, err := r.Prepare(attack("attaque Kael Mira"))
	require.NoError(t, err)

	tally := NewTally()
	for i := 0; i < 4; i++ {
		out, err := r.Duel(m)
		require.NoError(t, err)
		tally.Add(out)
	}

	assert.Equal(t, 4, tally.Duels)
	assert.Equal(t, 3, tally.Wins["Mira"])
	assert.Equal(t, 1, tally.Wins["Kael"])
	assert.Equal(t, 1, tally.Upsets)
	assert.Equal(t, []string{"Kael", "Mira"}, tally.Names())
	assert.Equal(t, 0.75, tally.Share(tally.Wins["Mira"]))
	assert.InDelta(t, (3*3.0+2.0)/4, tally.MeanWear(), 1e-9)
	assert.Equal(t, 3, tally.SpeedTiers[Faveur])
	assert.Equal(t, 1, tally.SpeedTiers[SousFaveur])
}

func TestErrorMatching(t *testing.T) {
	err := NotFound("Kael")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrConfig)
	assert.Equal(t, CodeNotFound, CodeOf(err))
	assert.Equal(t, Code(""), CodeOf(errors.New("plain")))

	wrapped := ConfigError("load", errors.New("boom"))
	assert.Equal(t, "CONFIG_ERROR: load: boom", wrapped.Error())
}
