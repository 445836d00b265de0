package session

import (
	"strings"
)

// Prefixes that mark a chat message as a command.
const prefixes = "?/"

// ParsedInput is a raw chat line split into its verb and tokens.
type ParsedInput struct {
	// Command is the lower-cased verb without prefix or @botname suffix.
	Command string
	// Tokens is the whole line split on whitespace, verb included.
	Tokens []string
}

// ParseInput splits a chat line. A single leading "?" or "/" is dropped and
// so is a Telegram "@botname" suffix on the verb ("/attaque@danjon_bot").
//
//	"?attaque Kael Mira"       → Command="attaque", Tokens=["attaque" "Kael" "Mira"]
//	"/stats@danjon_bot Kael"   → Command="stats", Tokens=["stats" "Kael"]
func ParseInput(input string) ParsedInput {
	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		return ParsedInput{}
	}

	verb := tokens[0]
	if strings.ContainsAny(verb[:1], prefixes) {
		verb = verb[1:]
	}
	if i := strings.IndexByte(verb, '@'); i >= 0 {
		verb = verb[:i]
	}
	tokens[0] = verb

	return ParsedInput{Command: strings.ToLower(verb), Tokens: tokens}
}
