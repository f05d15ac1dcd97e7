package domain

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Prefix marks a message as a command candidate.
const Prefix = '!'

// Definition is the immutable metadata of a registered command.
type Definition struct {
	// Aliases select the command, case-sensitive. The first one is the canonical name.
	Aliases []string
	// MinArgs and MaxArgs bound the argument token count, both inclusive.
	MinArgs int
	MaxArgs int
	// RequiredRoles are role display names. Empty means unrestricted.
	RequiredRoles []string
	Summary       string
	Usage         string
}

// Name returns the canonical alias.
func (d Definition) Name() string {
	if len(d.Aliases) == 0 {
		return ""
	}
	return d.Aliases[0]
}

// AcceptsArgCount reports whether n lies within [MinArgs, MaxArgs].
func (d Definition) AcceptsArgCount(n int) bool {
	return n >= d.MinArgs && n <= d.MaxArgs
}

func (d Definition) Validate() error {
	if len(d.Aliases) == 0 {
		return fmt.Errorf("%w: no aliases", ErrInvalidDefinition)
	}
	for _, alias := range d.Aliases {
		if alias == "" || strings.IndexFunc(alias, unicode.IsSpace) >= 0 {
			return fmt.Errorf("%w: alias %q is empty or contains whitespace", ErrInvalidDefinition, alias)
		}
	}
	if d.MinArgs < 0 || d.MinArgs > d.MaxArgs {
		return fmt.Errorf("%w: argument range [%d, %d] for %s", ErrInvalidDefinition, d.MinArgs, d.MaxArgs, d.Name())
	}
	return nil
}

// Invocation is a parsed and validated command call, built once per message.
type Invocation struct {
	Definition Definition
	// Command is the alias exactly as typed.
	Command string
	Args    string
	Message *Message
}

// Fields splits the raw arguments on whitespace runs.
func (i *Invocation) Fields() []string {
	return strings.Fields(i.Args)
}

// ParseCommand extracts the command token and the raw argument string from text.
// ok is false when text does not start with Prefix. The token ends at the first
// whitespace character; args is everything after that single separator, untrimmed.
func ParseCommand(text string) (command string, args string, ok bool) {
	first, size := utf8.DecodeRuneInString(text)
	if size == 0 || first != Prefix {
		return "", "", false
	}

	rest := text[size:]
	end := strings.IndexFunc(rest, unicode.IsSpace)
	if end < 0 {
		return rest, "", true
	}

	_, sepSize := utf8.DecodeRuneInString(rest[end:])
	return rest[:end], rest[end+sepSize:], true
}

// CountArgs returns the number of non-empty whitespace-delimited tokens in args.
func CountArgs(args string) int {
	return len(strings.Fields(args))
}
