package combat

import (
	"go.uber.org/zap"

	"github.com/Guismus/DanjonBot/internal/dice"
	"github.com/Guismus/DanjonBot/internal/parser"
	"github.com/Guismus/DanjonBot/internal/rules"
	"github.com/Guismus/DanjonBot/internal/stats"
)

// RuleSet validates a threshold set before a stage uses it.
type RuleSet interface {
	Validate(values map[string]any) error
}

// Outcome is the result of one attack exchange.
type Outcome struct {
	Winner    Entity
	Loser     Entity
	SpeedTier Tier
	PowerTier Tier
	// Wear is the durability the winner's weapon loses, from 0 to 8.
	Wear  float64
	Speed SpeedResult
	Power PowerResult
}

// Matchup is a parsed command with both combatants ready to fight.
type Matchup struct {
	Attacker Entity
	Defender Entity
}

// Resolver runs attack commands against the configured data sources.
// It keeps no state between calls.
type Resolver struct {
	characters CharacterFinder
	baselines  BaselineProvider
	config     ConfigProvider
	rng        dice.RandomSource
	rules      RuleSet
	logger     *zap.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithRandomSource replaces the crypto/rand default.
func WithRandomSource(src dice.RandomSource) Option {
	return func(r *Resolver) { r.rng = src }
}

// WithLogger sets the logger; the default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(r *Resolver) { r.logger = l }
}

// WithRules replaces the threshold ordering checks.
func WithRules(rs RuleSet) Option {
	return func(r *Resolver) { r.rules = rs }
}

// NewResolver wires a resolver to its collaborators.
func NewResolver(characters CharacterFinder, baselines BaselineProvider, config ConfigProvider, opts ...Option) (*Resolver, error) {
	r := &Resolver{
		characters: characters,
		baselines:  baselines,
		config:     config,
		rng:        dice.Default(),
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.rules == nil {
		v, err := rules.NewThresholdValidator()
		if err != nil {
			return nil, err
		}
		r.rules = v
	}
	return r, nil
}

// ResolveAttack parses tokens, e.g. ["attaque", "Kael", "-weapon", "Lourd",
// "Mira"], and resolves one exchange between the two named characters.
func (r *Resolver) ResolveAttack(tokens []string) (Outcome, error) {
	m, err := r.Prepare(tokens)
	if err != nil {
		return Outcome{}, err
	}
	return r.Duel(m)
}

// Prepare parses tokens and builds both combatants with their weapons
// applied and their stats normalised.
func (r *Resolver) Prepare(tokens []string) (Matchup, error) {
	cmd, err := parser.ParseAttack(tokens)
	if err != nil {
		return Matchup{}, &Error{Code: CodeInvalidInput, Message: "attack command", Err: err}
	}

	attacker, err := r.entity(cmd.Attacker)
	if err != nil {
		return Matchup{}, err
	}
	defender, err := r.entity(cmd.Defender)
	if err != nil {
		return Matchup{}, err
	}

	return Matchup{Attacker: Normalize(attacker), Defender: Normalize(defender)}, nil
}

func (r *Resolver) entity(side *parser.Side) (Entity, error) {
	c, found, err := r.characters.FindCharacter(side.Name)
	if err != nil {
		return Entity{}, ConfigError("load characters", err)
	}
	if !found {
		return Entity{}, NotFound(side.Name)
	}
	base, err := r.baselines.Baseline(c.Race)
	if err != nil {
		return Entity{}, ConfigError("load race baselines", err)
	}

	e := NewEntity(c.Name, c.Level, stats.Derive(c.Variance, c.Level, base, nil))
	for _, w := range side.Weapons() {
		e = ApplyWeapon(e, w)
	}
	return e, nil
}

// Duel resolves the speed then the power stage for a prepared matchup.
func (r *Resolver) Duel(m Matchup) (Outcome, error) {
	th, err := r.thresholds()
	if err != nil {
		return Outcome{}, err
	}
	sp := ResolveSpeed(m.Attacker, m.Defender, th, r.rng)
	r.logger.Debug("speed resolved",
		zap.String("winner", sp.Winner.Name),
		zap.String("tier", sp.Tier.Tag()),
		zap.Float64("diff", sp.Diff),
		zap.Int("die", sp.Sides),
		zap.Int("face", sp.Face),
	)

	th, err = r.thresholds()
	if err != nil {
		return Outcome{}, err
	}
	pw := ResolvePower(sp.Winner, sp.Loser, th)
	r.logger.Debug("power resolved",
		zap.String("tier", pw.Tier.Tag()),
		zap.Float64("delta", pw.Delta),
		zap.Float64("wear", pw.Wear),
	)

	return Outcome{
		Winner:    sp.Winner,
		Loser:     sp.Loser,
		SpeedTier: sp.Tier,
		PowerTier: pw.Tier,
		Wear:      pw.Wear,
		Speed:     sp,
		Power:     pw,
	}, nil
}

func (r *Resolver) thresholds() (Thresholds, error) {
	th, err := r.config.Thresholds()
	if err != nil {
		return Thresholds{}, ConfigError("load thresholds", err)
	}
	if err := r.rules.Validate(th.values()); err != nil {
		return Thresholds{}, ConfigError("invalid thresholds", err)
	}
	return th, nil
}
