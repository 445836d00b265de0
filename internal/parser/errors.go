package parser

import (
	"fmt"
	"strings"
)

// Usage is the expected shape of an attack command.
const Usage = "attaque <attaquant> [-weapon <type>] <défenseur> [-weapon <type>]"

// SyntaxError reports a command that does not fit the grammar.
type SyntaxError struct {
	Message string
	Err     error
}

func (e *SyntaxError) Error() string { return e.Message }

func (e *SyntaxError) Unwrap() error { return e.Err }

// MapError turns a raw participle failure into a message a player can act on.
func MapError(tokens []string, err error) error {
	if m, ok := danglingMarker(tokens); ok {
		return &SyntaxError{
			Message: fmt.Sprintf("le marqueur %s attend une valeur: %s", m, Usage),
			Err:     err,
		}
	}
	if n := countWords(tokens); n > 3 {
		return &SyntaxError{Message: fmt.Sprintf("trop d'arguments: %s", Usage), Err: err}
	}
	return &SyntaxError{Message: fmt.Sprintf("commande invalide: %s", Usage), Err: err}
}

func isMarker(tok string) bool {
	return len(tok) > 1 && tok[0] == '-' && isLetter(tok[1])
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// danglingMarker reports the last marker when nothing is left to be its
// value. A marker consumes the next token whatever it looks like.
func danglingMarker(tokens []string) (string, bool) {
	for i := 1; i < len(tokens); i++ {
		if !isMarker(tokens[i]) {
			continue
		}
		if i == len(tokens)-1 {
			return tokens[i], true
		}
		i++
	}
	return "", false
}

// countWords counts tokens that are neither markers nor marker values.
func countWords(tokens []string) int {
	n := 0
	for i := 0; i < len(tokens); i++ {
		if isMarker(tokens[i]) {
			i++
			continue
		}
		n++
	}
	return n
}

// ParseAttack parses an already tokenised attack command.
func ParseAttack(tokens []string) (*AttackCmd, error) {
	if len(tokens) < 3 {
		return nil, &SyntaxError{Message: fmt.Sprintf("il faut deux combattants: %s", Usage)}
	}
	if _, ok := danglingMarker(tokens); ok {
		return nil, MapError(tokens, nil)
	}
	cmd, err := attackParser.ParseString("", strings.Join(tokens, " "))
	if err != nil {
		return nil, MapError(tokens, err)
	}
	return cmd, nil
}

var attackParser = Build()
