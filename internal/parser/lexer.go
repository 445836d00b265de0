package parser

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Lexer splits a command into markers (-name) and plain words. A token only
// counts as a marker when a letter follows the dash, so "-3" stays a word.
var Lexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Marker", Pattern: `-[A-Za-z][^\s]*`},
	{Name: "Word", Pattern: `[^\s]+`},
	{Name: "Whitespace", Pattern: `\s+`},
})

// Build creates the attack command parser from the struct tags in ast.go.
func Build() *participle.Parser[AttackCmd] {
	return participle.MustBuild[AttackCmd](
		participle.Lexer(Lexer),
		participle.Elide("Whitespace"),
	)
}
