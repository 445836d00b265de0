// Package session routes chat commands to the combat resolver and the
// adventurer roster and renders localised replies.
package session

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/message"

	"github.com/Guismus/DanjonBot/internal/combat"
	"github.com/Guismus/DanjonBot/internal/data"
	"github.com/Guismus/DanjonBot/internal/i18n"
	"github.com/Guismus/DanjonBot/internal/parser"
	"github.com/Guismus/DanjonBot/internal/stats"
)

// ErrUnknownCommand is returned for lines that are not commands of this bot.
// Chat front ends ignore it silently.
var ErrUnknownCommand = errors.New("unknown command")

// Attacker resolves an attack command.
type Attacker interface {
	ResolveAttack(tokens []string) (combat.Outcome, error)
}

// Roster gives access to adventurer records and race baselines.
type Roster interface {
	FindAdventurer(name string) (data.Adventurer, bool, error)
	Baseline(race string) (stats.Baseline, error)
}

// Result holds the reply messages of one command.
type Result struct {
	Messages []string
}

// Session handles chat commands. It keeps no state between commands.
type Session struct {
	attacker Attacker
	roster   Roster
	locale   string
	logger   *zap.Logger
}

// New builds a session replying in locale.
func New(attacker Attacker, roster Roster, locale string, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{attacker: attacker, roster: roster, locale: locale, logger: logger}
}

// Execute runs one chat line. Player mistakes and missing data are reported
// in the reply rather than as errors.
func (s *Session) Execute(input string) (*Result, error) {
	in := ParseInput(input)
	switch in.Command {
	case "attaque", "attack", "roll":
		return s.attack(in.Tokens), nil
	case "stats":
		return s.stats(in.Tokens), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, in.Command)
}

func (s *Session) printer() *message.Printer { return i18n.Printer(s.locale) }

func (s *Session) attack(tokens []string) *Result {
	out, err := s.attacker.ResolveAttack(tokens)
	if err != nil {
		return s.failure(err)
	}
	s.logger.Info("attack resolved",
		zap.String("winner", out.Winner.Name),
		zap.String("loser", out.Loser.Name),
		zap.String("speed", out.SpeedTier.Tag()),
		zap.String("power", out.PowerTier.Tag()),
		zap.Float64("wear", out.Wear),
	)
	return &Result{Messages: []string{codeBlock(s.Outcome(out))}}
}

// Outcome renders the reply sentence of an attack.
func (s *Session) Outcome(o combat.Outcome) string {
	p := s.printer()
	return p.Sprintf("outcome",
		o.Winner.Name,
		o.Loser.Name,
		o.SpeedTier.Label(s.locale),
		o.PowerTier.Label(s.locale),
		o.Wear,
	)
}

func (s *Session) stats(tokens []string) *Result {
	// Without a name there is nothing to show.
	if len(tokens) < 2 {
		return &Result{}
	}
	name := tokens[1]
	a, ok, err := s.roster.FindAdventurer(name)
	if err != nil {
		return s.failure(combat.ConfigError("load adventurers", err))
	}
	if !ok {
		return s.failure(combat.NotFound(name))
	}
	sheet, err := s.Sheet(a)
	if err != nil {
		return s.failure(combat.ConfigError("load race baselines", err))
	}
	return &Result{Messages: []string{codeBlock(sheet)}}
}

// Sheet renders the stat sheet of an adventurer. Jiaodan get one stat line
// per form.
func (s *Session) Sheet(a data.Adventurer) (string, error) {
	p := s.printer()
	lines := []string{
		p.Sprintf("sheet.adventurer", a.Name),
		p.Sprintf("sheet.race", a.Race.String()),
		p.Sprintf("sheet.rank", a.Rank),
		p.Sprintf("sheet.level", a.Level),
	}

	forms := a.Race.Forms()
	for i, form := range forms {
		base, err := s.roster.Baseline(form)
		if err != nil {
			return "", err
		}
		derived := stats.Derive(a.IV, a.Level, base, nil).String()
		switch {
		case len(forms) == 1:
			lines = append(lines, p.Sprintf("sheet.stats", derived))
		case i == 0:
			lines = append(lines, p.Sprintf("sheet.stats_human", derived))
		default:
			lines = append(lines, p.Sprintf("sheet.stats_dragon", derived))
		}
	}

	lines = append(lines, p.Sprintf("sheet.health", a.Health.Description, a.Health.State.String()))
	if jobs := a.Jobs.Summary(); jobs != "" {
		lines = append(lines, p.Sprintf("sheet.jobs", jobs))
	} else {
		lines = append(lines, p.Sprintf("sheet.jobs", p.Sprintf("sheet.no_jobs")))
	}
	phys := a.Energy.Physical
	lines = append(lines, p.Sprintf("sheet.physical", phys.ActualEnergy, phys.Energy))
	if len(a.Energy.Magical) > 0 {
		line := p.Sprintf("sheet.magical")
		for _, m := range a.Energy.Magical {
			line += " " + m.String()
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n"), nil
}

// failure turns a classified error into a reply.
func (s *Session) failure(err error) *Result {
	p := s.printer()
	var msg string
	var cerr *combat.Error
	switch {
	case errors.As(err, &cerr) && cerr.Code == combat.CodeNotFound:
		msg = p.Sprintf("error.not_found", cerr.Subject)
	case errors.As(err, &cerr) && cerr.Code == combat.CodeInvalidInput:
		var syn *parser.SyntaxError
		if errors.As(err, &syn) {
			msg = syn.Message
		} else {
			msg = cerr.Message
		}
	default:
		s.logger.Error("command failed", zap.Error(err))
		msg = p.Sprintf("error.config")
	}
	s.logger.Debug("command rejected", zap.String("code", string(combat.CodeOf(err))), zap.Error(err))
	return &Result{Messages: []string{msg}}
}

func codeBlock(s string) string { return "```\n" + s + "\n```" }
